// Package share formats answers for the share card and the clipboard.
package share

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-runewidth"

	"github.com/leafecho/leafecho/internal/session"
)

// DefaultTag is appended to every exported answer.
const DefaultTag = "#2024YearEndReflection"

// PreviewWidth is the card preview limit for answer text, in cells.
const PreviewWidth = 180

// Format renders one answer as plain text for sharing:
//
//	【topic】
//	Q: question
//	A: answer
//
//	#tag
func Format(a session.UserAnswer, tag string) string {
	if tag == "" {
		tag = DefaultTag
	}
	var b strings.Builder
	fmt.Fprintf(&b, "【%s】\n", a.TopicTitle)
	fmt.Fprintf(&b, "Q: %s\n", a.QuestionText)
	fmt.Fprintf(&b, "A: %s\n\n", a.Answer)
	b.WriteString(tag)
	return b.String()
}

// Preview truncates text to width display cells, adding "..." when cut.
// Wide (CJK) characters count as two cells.
func Preview(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "...")
}

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the OS clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

// Copier formats answers and writes them to a clipboard.
type Copier struct {
	clip Clipboard
	tag  string
}

// NewCopier returns a Copier appending tag to every export.
func NewCopier(clip Clipboard, tag string) *Copier {
	if clip == nil {
		clip = SystemClipboard{}
	}
	return &Copier{clip: clip, tag: tag}
}

// Copy writes the formatted answer and returns the text written.
func (c *Copier) Copy(a session.UserAnswer) (string, error) {
	text := Format(a, c.tag)
	if err := c.clip.WriteAll(text); err != nil {
		return "", fmt.Errorf("write clipboard: %w", err)
	}
	return text, nil
}
