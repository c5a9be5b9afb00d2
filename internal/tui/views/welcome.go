package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/tui"
)

// ============================================================================
// WelcomeModel
// ============================================================================

// WelcomeModel is the view model for the welcome screen.
type WelcomeModel struct {
	width        int
	ctrlCPending bool
}

// NewWelcomeModel creates a new WelcomeModel.
func NewWelcomeModel(width int) WelcomeModel {
	return WelcomeModel{width: width}
}

// Init returns the initial command for the welcome view.
func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

// SetCtrlCPending mirrors the app-level exit confirmation.
func (m *WelcomeModel) SetCtrlCPending(p bool) { m.ctrlCPending = p }

// Update handles messages for the welcome view.
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.Ring) {
			return m, func() tea.Msg { return tui.StartMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the welcome view.
func (m WelcomeModel) View() string {
	var b strings.Builder
	b.WriteString(heading("叶 之 回 响", "Leaf Echo · A year-end reflection"))
	b.WriteString("\n\n")
	b.WriteString("一年就要过去了。\n")
	b.WriteString("摇响风铃，抽几道问题，\n")
	b.WriteString("给这一年留一些回声。\n")

	footer := ctrlCFooter(m.ctrlCPending, "enter: 开始 Begin       ctrl+c: 退出")
	return card(m.width, b.String(), footer)
}
