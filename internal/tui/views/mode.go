package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/tui"
)

// ============================================================================
// ModeModel
// ============================================================================

type modeOption struct {
	mode  session.Mode
	title string
	blurb string
}

var modeOptions = []modeOption{
	{session.ModeQuick, "随机抽取 Quick", fmt.Sprintf("随机一个主题，%d 道问题", session.QuickDrawSize)},
	{session.ModeDeep, "深度回顾 Deep", "逐个主题，回答全部问题"},
}

// ModeModel is the view model for the mode selection screen.
type ModeModel struct {
	selected     int
	width        int
	ctrlCPending bool
}

// NewModeModel creates a ModeModel with current preselected.
func NewModeModel(current session.Mode, width int) ModeModel {
	m := ModeModel{width: width}
	for i, o := range modeOptions {
		if o.mode == current {
			m.selected = i
		}
	}
	return m
}

// Init returns the initial command for the mode view.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// SetCtrlCPending mirrors the app-level exit confirmation.
func (m *ModeModel) SetCtrlCPending(p bool) { m.ctrlCPending = p }

// Selected returns the highlighted mode.
func (m ModeModel) Selected() session.Mode {
	return modeOptions[m.selected].mode
}

// Update handles messages for the mode view.
func (m ModeModel) Update(msg tea.Msg) (ModeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := tui.DefaultKeyMap
		switch {
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, keys.Down):
			if m.selected < len(modeOptions)-1 {
				m.selected++
			}
		case key.Matches(msg, keys.Quick):
			return m, chooseMode(session.ModeQuick)
		case key.Matches(msg, keys.Deep):
			return m, chooseMode(session.ModeDeep)
		case key.Matches(msg, keys.Enter):
			return m, chooseMode(m.Selected())
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func chooseMode(mode session.Mode) tea.Cmd {
	return func() tea.Msg { return tui.ChooseModeMsg{Mode: mode} }
}

// View renders the mode view.
func (m ModeModel) View() string {
	var b strings.Builder
	b.WriteString(heading("选择方式", "How would you like to reflect?"))
	b.WriteString("\n\n")

	for i, o := range modeOptions {
		line := fmt.Sprintf("  %d. %s", i+1, o.title)
		if i == m.selected {
			line = tui.SelectedStyle.Render(fmt.Sprintf("▸ %d. %s", i+1, o.title))
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("     " + o.blurb))
		b.WriteString("\n\n")
	}

	footer := ctrlCFooter(m.ctrlCPending, "↑/↓: 选择  enter: 确认  1/2: 快速选择")
	return card(m.width, strings.TrimRight(b.String(), "\n"), footer)
}
