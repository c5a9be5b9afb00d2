// Package summarize turns a finished set of answers into keywords and a short
// prose summary using an external text-generation API.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/goccy/go-json"

	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/prompts"
)

// Keyword bounds of a valid result.
const (
	MinKeywords = 3
	MaxKeywords = 5
)

var (
	// ErrNoAnswers is returned when there is nothing to summarize.
	ErrNoAnswers = errors.New("no answers to summarize")
	// ErrMalformed is returned when the service reply does not fit the contract.
	ErrMalformed = errors.New("malformed summary response")
	// ErrDisabled is returned by the no-op provider.
	ErrDisabled = errors.New("summarization disabled")
)

// Pair is one question and its answer, in answering order.
type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Result is what the service returns.
type Result struct {
	Keywords []string `json:"keywords"`
	Summary  string   `json:"summary"`
}

// Summarizer is the summarization service contract.
type Summarizer interface {
	Summarize(ctx context.Context, pairs []Pair) (*Result, error)
	Name() string
}

// PairsFrom converts recorded answers into request pairs.
func PairsFrom(answers []session.UserAnswer) []Pair {
	pairs := make([]Pair, len(answers))
	for i, a := range answers {
		pairs[i] = Pair{Question: a.QuestionText, Answer: a.Answer}
	}
	return pairs
}

// Validate checks a result against the contract: 3 to 5 non-blank keywords
// and a non-blank summary. Keywords and summary are trimmed in place.
func Validate(r *Result) error {
	if r == nil {
		return fmt.Errorf("%w: empty response", ErrMalformed)
	}
	r.Summary = strings.TrimSpace(r.Summary)
	if r.Summary == "" {
		return fmt.Errorf("%w: missing summary", ErrMalformed)
	}
	kws := make([]string, 0, len(r.Keywords))
	for _, k := range r.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			kws = append(kws, k)
		}
	}
	if len(kws) < MinKeywords || len(kws) > MaxKeywords {
		return fmt.Errorf("%w: got %d keywords, want %d-%d", ErrMalformed, len(kws), MinKeywords, MaxKeywords)
	}
	r.Keywords = kws
	return nil
}

// ParseResponse decodes and validates a model reply. The reply may wrap the
// JSON object in prose or a markdown code fence.
func ParseResponse(text string) (*Result, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in reply", ErrMalformed)
	}

	var r Result
	if err := json.Unmarshal([]byte(text[start:end+1]), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := Validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

var requestTemplate = template.Must(
	template.New("summary_request").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		Parse(prompts.SummaryRequestTemplate),
)

// BuildPrompt renders the user message for pairs.
func BuildPrompt(pairs []Pair) (string, error) {
	if len(pairs) == 0 {
		return "", ErrNoAnswers
	}
	var b strings.Builder
	if err := requestTemplate.Execute(&b, struct{ Pairs []Pair }{pairs}); err != nil {
		return "", fmt.Errorf("render summary prompt: %w", err)
	}
	return b.String(), nil
}

// Disabled is the provider used when no service is configured.
type Disabled struct{}

// Summarize always fails with ErrDisabled.
func (Disabled) Summarize(context.Context, []Pair) (*Result, error) {
	return nil, ErrDisabled
}

// Name returns "none".
func (Disabled) Name() string { return "none" }
