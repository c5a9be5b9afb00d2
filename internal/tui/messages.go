package tui

import (
	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/summarize"
)

// ============================================================================
// Intent Messages
// ============================================================================

// StartMsg leaves the welcome screen.
type StartMsg struct{}

// ChooseModeMsg picks quick or deep mode.
type ChooseModeMsg struct {
	Mode session.Mode
}

// SelectTopicMsg picks a topic from the table of contents.
type SelectTopicMsg struct {
	TopicID string
}

// ExitTOCMsg leaves the table of contents.
type ExitTOCMsg struct{}

// FinishTOCMsg ends a deep session.
type FinishTOCMsg struct{}

// DrawCompleteMsg signals that the ritual animation has finished.
type DrawCompleteMsg struct{}

// ReflectionCompleteMsg carries the answers of a finished editor run.
type ReflectionCompleteMsg struct {
	Answers []session.UserAnswer
}

// ExitEditorMsg abandons the editor.
type ExitEditorMsg struct{}

// RestartMsg starts another round in the same mode.
type RestartMsg struct{}

// GoHomeMsg returns to mode selection.
type GoHomeMsg struct{}

// ============================================================================
// Summary Messages
// ============================================================================

// CopyMsg asks to copy an answer to the clipboard.
type CopyMsg struct {
	Answer session.UserAnswer
}

// CopyResultMsg reports the outcome of a copy.
type CopyResultMsg struct {
	Text string
	Err  error
}

// SummarizeMsg asks for a keyword summary of all answers.
type SummarizeMsg struct{}

// SummaryResultMsg carries the outcome of summary request Token.
type SummaryResultMsg struct {
	Token  uint64
	Result *summarize.Result
	Err    error
}

// ============================================================================
// Utility Messages
// ============================================================================

// RitualStepMsg advances the draw ritual identified by Seq.
type RitualStepMsg struct {
	Seq int
}

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
