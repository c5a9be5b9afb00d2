package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/tui"
	"github.com/leafecho/leafecho/internal/tui/commands"
)

// ============================================================================
// ShakeModel
// ============================================================================

// RitualPhase is the step of the draw ritual.
type RitualPhase int

const (
	PhaseIdle      RitualPhase = iota // waiting for the user to ring
	PhaseRinging                      // chime swinging; input ignored
	PhaseRevealing                    // echo revealed; input ignored
	PhaseDone                         // DrawCompleteMsg emitted
)

// ShakeModel is the view model for the draw ritual.
type ShakeModel struct {
	seq          int
	mode         session.Mode
	topicTitle   string
	ring         time.Duration
	reveal       time.Duration
	phase        RitualPhase
	spinner      spinner.Model
	width        int
	ctrlCPending bool
}

// NewShakeModel creates a ShakeModel for ritual seq. topicTitle is empty in
// quick mode.
func NewShakeModel(seq int, mode session.Mode, topicTitle string, ring, reveal time.Duration, width int) ShakeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Moon
	sp.Style = tui.SelectedStyle

	return ShakeModel{
		seq:        seq,
		mode:       mode,
		topicTitle: topicTitle,
		ring:       ring,
		reveal:     reveal,
		spinner:    sp,
		width:      width,
	}
}

// Init returns the initial command for the shake view.
func (m ShakeModel) Init() tea.Cmd {
	return nil
}

// SetCtrlCPending mirrors the app-level exit confirmation.
func (m *ShakeModel) SetCtrlCPending(p bool) { m.ctrlCPending = p }

// Phase returns the current ritual phase.
func (m ShakeModel) Phase() RitualPhase { return m.phase }

// Update handles messages for the shake view.
func (m ShakeModel) Update(msg tea.Msg) (ShakeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase != PhaseIdle {
			return m, nil
		}
		if key.Matches(msg, tui.DefaultKeyMap.Ring) {
			m.phase = PhaseRinging
			return m, tea.Batch(m.spinner.Tick, commands.RitualStepCmd(m.seq, m.ring))
		}

	case tui.RitualStepMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		switch m.phase {
		case PhaseRinging:
			m.phase = PhaseRevealing
			return m, commands.RitualStepCmd(m.seq, m.reveal)
		case PhaseRevealing:
			m.phase = PhaseDone
			return m, func() tea.Msg { return tui.DrawCompleteMsg{} }
		}

	case spinner.TickMsg:
		if m.phase != PhaseRinging {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the shake view.
func (m ShakeModel) View() string {
	var b strings.Builder
	b.WriteString(heading("风铃", "The wind chime"))
	b.WriteString("\n\n")

	if m.topicTitle != "" {
		b.WriteString(tui.DimStyle.Render("主题 · " + m.topicTitle))
		b.WriteString("\n\n")
	}

	var footer string
	switch m.phase {
	case PhaseIdle:
		b.WriteString("        🎐\n\n")
		b.WriteString("深呼吸，然后摇响风铃。")
		footer = "enter/space: 摇响风铃"
	case PhaseRinging:
		b.WriteString("      " + m.spinner.View() + " 🎐 " + m.spinner.View() + "\n\n")
		b.WriteString(tui.DimStyle.Render("叮……铃……"))
	case PhaseRevealing, PhaseDone:
		b.WriteString("        🍂\n\n")
		if m.mode == session.ModeDeep {
			b.WriteString("回声落下，问题已经展开。")
		} else {
			b.WriteString("一片叶子落下，带来了你的问题。")
		}
	}

	return card(m.width, b.String(), ctrlCFooter(m.ctrlCPending, footer))
}
