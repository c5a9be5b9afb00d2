package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/tui"
)

// ============================================================================
// TOCModel
// ============================================================================

// tocColumns is the number of tiles per grid row.
const tocColumns = 3

// TOCModel is the view model for the deep-mode table of contents.
type TOCModel struct {
	topics       []catalog.Topic
	completed    map[string]bool
	answered     int
	selected     int
	notice       string
	width        int
	ctrlCPending bool
}

// NewTOCModel creates a TOCModel over topics. The cursor starts on the first
// topic that is not yet completed.
func NewTOCModel(topics []catalog.Topic, state session.State, width int) TOCModel {
	m := TOCModel{
		topics:    topics,
		completed: make(map[string]bool, len(state.CompletedTopicIDs)),
		answered:  len(state.Answers),
		width:     width,
	}
	for _, id := range state.CompletedTopicIDs {
		m.completed[id] = true
	}
	for i, t := range topics {
		if !m.completed[t.ID] {
			m.selected = i
			break
		}
	}
	return m
}

// Init returns the initial command for the TOC view.
func (m TOCModel) Init() tea.Cmd {
	return nil
}

// SetCtrlCPending mirrors the app-level exit confirmation.
func (m *TOCModel) SetCtrlCPending(p bool) { m.ctrlCPending = p }

// Selected returns the index of the focused tile.
func (m TOCModel) Selected() int { return m.selected }

// Update handles messages for the TOC view.
func (m TOCModel) Update(msg tea.Msg) (TOCModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.notice = ""
		keys := tui.DefaultKeyMap
		n := len(m.topics)
		switch {
		case key.Matches(msg, keys.Left):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, keys.Right):
			if m.selected < n-1 {
				m.selected++
			}
		case key.Matches(msg, keys.Up):
			if m.selected-tocColumns >= 0 {
				m.selected -= tocColumns
			}
		case key.Matches(msg, keys.Down):
			if m.selected+tocColumns < n {
				m.selected += tocColumns
			}
		case key.Matches(msg, keys.Enter):
			if n == 0 {
				return m, nil
			}
			t := m.topics[m.selected]
			if m.completed[t.ID] {
				m.notice = "这个主题已经回顾过了"
				return m, nil
			}
			return m, func() tea.Msg { return tui.SelectTopicMsg{TopicID: t.ID} }
		case key.Matches(msg, keys.Finish):
			if m.answered == 0 {
				m.notice = "还没有回答，先选一个主题吧"
				return m, nil
			}
			return m, func() tea.Msg { return tui.FinishTOCMsg{} }
		case key.Matches(msg, keys.Escape):
			return m, func() tea.Msg { return tui.ExitTOCMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the TOC view.
func (m TOCModel) View() string {
	var b strings.Builder
	b.WriteString(heading("目录", "Contents"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("已完成 %d/%d 个主题 · %d 个回答", len(m.completed), len(m.topics), m.answered)))
	b.WriteString("\n\n")

	rows := make([]string, 0, (len(m.topics)+tocColumns-1)/tocColumns)
	for start := 0; start < len(m.topics); start += tocColumns {
		end := min(start+tocColumns, len(m.topics))
		tiles := make([]string, 0, tocColumns)
		for i := start; i < end; i++ {
			tiles = append(tiles, m.renderTile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(m.notice))
	}

	help := "←/→/↑/↓: 移动  enter: 进入  esc: 返回"
	if m.answered > 0 {
		help += "  f: 完成回顾"
	}
	return card(m.width, b.String(), ctrlCFooter(m.ctrlCPending, help))
}

func (m TOCModel) renderTile(i int) string {
	t := m.topics[i]
	done := m.completed[t.ID]
	number := t.Number
	if done {
		number += " " + tui.IconDone
	}
	body := fmt.Sprintf("%s\n%s\n%s", number, t.TitleCn, t.TitleEn)
	return tui.TileStyle(t.Color, i == m.selected, done).Render(body)
}
