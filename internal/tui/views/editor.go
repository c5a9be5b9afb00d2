package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/tui"
)

// ============================================================================
// EditorModel
// ============================================================================

// EditorModel is the view model for answering the drawn questions.
type EditorModel struct {
	refl         *session.Reflection
	input        textarea.Model
	bar          progress.Model
	notice       string
	width        int
	ctrlCPending bool
}

// NewEditorModel creates an EditorModel over queue. opts configure the
// underlying Reflection.
func NewEditorModel(queue []session.SessionItem, width int, opts ...session.ReflectionOption) EditorModel {
	ta := textarea.New()
	ta.Placeholder = "写下此刻想到的……"
	ta.CharLimit = 5000
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.SetWidth(cardWidth(width) - 8)
	ta.Focus()

	bar := progress.New(
		progress.WithSolidFill(catalog.ColorMocha),
		progress.WithoutPercentage(),
	)
	bar.Width = cardWidth(width) - 8

	return EditorModel{
		refl:  session.NewReflection(queue, opts...),
		input: ta,
		bar:   bar,
		width: width,
	}
}

// Init returns the initial command for the editor view.
func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// SetCtrlCPending mirrors the app-level exit confirmation.
func (m *EditorModel) SetCtrlCPending(p bool) { m.ctrlCPending = p }

// Reflection exposes the run being edited.
func (m EditorModel) Reflection() *session.Reflection { return m.refl }

// Update handles messages for the editor view.
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := tui.DefaultKeyMap
		switch {
		case key.Matches(msg, keys.Escape):
			return m, func() tea.Msg { return tui.ExitEditorMsg{} }

		case key.Matches(msg, keys.Hint):
			m.refl.ToggleHint()
			return m, nil

		case key.Matches(msg, keys.Skip):
			m.notice = ""
			return m.advance(m.refl.Skip())

		case key.Matches(msg, keys.Submit):
			m.refl.SetDraft(m.input.Value())
			done, ok := m.refl.Submit()
			if !ok {
				m.notice = "写点什么再继续，或按 ctrl+s 跳过"
				return m, nil
			}
			m.notice = ""
			return m.advance(done)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(cardWidth(msg.Width) - 8)
		m.bar.Width = cardWidth(msg.Width) - 8
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refl.SetDraft(m.input.Value())
	return m, cmd
}

// advance clears the input for the next question or hands the answers over.
func (m EditorModel) advance(done bool) (EditorModel, tea.Cmd) {
	m.input.Reset()
	if !done {
		return m, nil
	}
	answers := m.refl.Answers()
	return m, func() tea.Msg { return tui.ReflectionCompleteMsg{Answers: answers} }
}

// View renders the editor view.
func (m EditorModel) View() string {
	if m.refl == nil {
		return card(m.width, "", "")
	}
	item, ok := m.refl.Current()
	if !ok {
		return card(m.width, tui.DimStyle.Render("正在整理你的回答……"), "")
	}

	var b strings.Builder
	b.WriteString(heading(item.Topic.TitleCn, item.Topic.TitleEn))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.refl.Progress()))
	b.WriteString(" ")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%d/%d", m.refl.Index()+1, m.refl.Len())))
	b.WriteString("\n\n")

	b.WriteString(tui.TitleStyle.Render(item.Question.Text))
	b.WriteString("\n")
	if m.refl.ShowHint() {
		b.WriteString(tui.HintStyle.Render("💡 " + item.Question.HintOr(catalog.DefaultHint)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(m.notice))
	}

	submit := "ctrl+d: 下一题"
	if m.refl.IsLast() {
		submit = "ctrl+d: 完成"
	}
	help := submit + "  ctrl+s: 跳过  ctrl+g: 灵感  esc: 返回"
	return card(m.width, b.String(), ctrlCFooter(m.ctrlCPending, help))
}
