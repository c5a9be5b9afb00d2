package tui

import (
	"fmt"
	"io"
)

// FallbackRunner handles non-TTY execution by guiding users to CLI commands.
type FallbackRunner struct {
	out io.Writer
}

// NewFallbackRunner creates a new FallbackRunner writing to out.
func NewFallbackRunner(out io.Writer) *FallbackRunner {
	return &FallbackRunner{out: out}
}

// Run prints the non-interactive alternatives.
func (f *FallbackRunner) Run() error {
	_, err := fmt.Fprint(f.out,
		"Non-TTY environment detected.\n",
		"The reflection ritual needs an interactive terminal.\n",
		"Try 'leafecho topics' to list the topics or 'leafecho draw' to draw questions.\n",
	)
	return err
}
