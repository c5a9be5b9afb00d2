package summarize

import (
	"context"
	"fmt"

	"github.com/leafecho/leafecho/internal/config"
)

// New builds the summarizer selected by cfg. Provider "none" returns
// Disabled.
func New(ctx context.Context, cfg config.SummarizerConfig) (Summarizer, error) {
	switch cfg.Provider {
	case "", "none":
		return Disabled{}, nil
	case "gemini":
		return NewGemini(ctx, cfg.APIKey(), cfg.Model)
	case "deepseek":
		return NewDeepSeek(cfg.APIKey(), cfg.Model, cfg.Endpoint, cfg.Timeout())
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Provider)
	}
}

// Enabled reports whether s talks to a real service.
func Enabled(s Summarizer) bool {
	_, off := s.(Disabled)
	return s != nil && !off
}
