// Package prompts embeds the prompt templates sent to text-generation APIs.
package prompts

import _ "embed"

//go:embed summary/system.md
var SummarySystemPrompt string

//go:embed summary/request.md.tmpl
var SummaryRequestTemplate string
