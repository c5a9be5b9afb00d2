package tui

import (
	"github.com/leafecho/leafecho/internal/config"
	"github.com/leafecho/leafecho/internal/session"
)

// Model holds the application-wide TUI state shared by every view.
type Model struct {
	// Session state owned by the state machine
	State session.State

	// Configuration
	Cfg *config.Config

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // True when waiting for second Ctrl+C press
}

// NewModel creates a new Model in the initial session state.
func NewModel(cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Model{
		State: session.NewState(),
		Cfg:   cfg,

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}
