package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/leafecho/leafecho/internal/catalog"
	"github.com/leafecho/leafecho/internal/session"
	"github.com/leafecho/leafecho/internal/share"
	"github.com/leafecho/leafecho/internal/summarize"
	"github.com/leafecho/leafecho/internal/tui"
)

// ============================================================================
// SummaryModel
// ============================================================================

// SummaryModel is the view model for browsing the collected answers.
type SummaryModel struct {
	catalog      *catalog.Catalog
	answers      []session.UserAnswer
	cursor       session.Cursor
	canSummarize bool
	status       summarize.Status
	result       *summarize.Result
	err          error
	notice       string
	renderer     *glamour.TermRenderer
	width        int
	ctrlCPending bool
}

// NewSummaryModel creates a SummaryModel over answers. cat resolves each
// answer's topic title back to its topic; canSummarize reports whether a
// summarization service is configured.
func NewSummaryModel(cat *catalog.Catalog, answers []session.UserAnswer, canSummarize bool, width int) SummaryModel {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithStylePath("light"),
		glamour.WithWordWrap(cardWidth(width)-8),
	)
	return SummaryModel{
		catalog:      cat,
		answers:      answers,
		cursor:       session.NewCursor(len(answers)),
		canSummarize: canSummarize,
		renderer:     renderer,
		width:        width,
	}
}

// Init returns the initial command for the summary view.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// SetCtrlCPending mirrors the app-level exit confirmation.
func (m *SummaryModel) SetCtrlCPending(p bool) { m.ctrlCPending = p }

// SetSummary mirrors the summary request tracker.
func (m *SummaryModel) SetSummary(status summarize.Status, result *summarize.Result, err error) {
	m.status = status
	m.result = result
	m.err = err
}

// SetNotice shows a one-line status such as a copy confirmation.
func (m *SummaryModel) SetNotice(notice string) { m.notice = notice }

// Cursor returns the browsing position.
func (m SummaryModel) Cursor() session.Cursor { return m.cursor }

// Update handles messages for the summary view.
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := tui.DefaultKeyMap
		switch {
		case key.Matches(msg, keys.Left):
			m.cursor = m.cursor.Prev()
			m.notice = ""
		case key.Matches(msg, keys.Right):
			m.cursor = m.cursor.Next()
			m.notice = ""
		case key.Matches(msg, keys.Copy):
			if a, ok := m.cursor.Current(m.answers); ok {
				return m, func() tea.Msg { return tui.CopyMsg{Answer: a} }
			}
		case key.Matches(msg, keys.Summarize):
			if !m.canSummarize {
				m.notice = "未配置总结服务 (summarizer.provider)"
				return m, nil
			}
			if len(m.answers) == 0 {
				return m, nil
			}
			return m, func() tea.Msg { return tui.SummarizeMsg{} }
		case key.Matches(msg, keys.Restart):
			return m, func() tea.Msg { return tui.RestartMsg{} }
		case key.Matches(msg, keys.Home):
			return m, func() tea.Msg { return tui.GoHomeMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(cardWidth(msg.Width)-8),
		)
	}
	return m, nil
}

// View renders the summary view.
func (m SummaryModel) View() string {
	var b strings.Builder
	b.WriteString(heading("回响", "Your echoes"))
	b.WriteString("\n\n")

	a, ok := m.cursor.Current(m.answers)
	if !ok {
		b.WriteString(tui.DimStyle.Render("暂无回答"))
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("No answers yet. Ring the chime again."))
		return card(m.width, b.String(), ctrlCFooter(m.ctrlCPending, "r: 再来一次  h: 返回首页"))
	}

	b.WriteString(m.topicLabel(a))
	b.WriteString(" ")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%d/%d · %s", m.cursor.Index()+1, m.cursor.Len(), a.Date.Local().Format("2006-01-02"))))
	b.WriteString("\n\n")
	b.WriteString(tui.TitleStyle.Render(a.QuestionText))
	b.WriteString("\n\n")
	if a.Skipped() {
		b.WriteString(tui.IconSkipped + " " + tui.DimStyle.Render(a.Answer))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(cardWidth(m.width) - 8).Render(share.Preview(a.Answer, share.PreviewWidth)))
	}
	b.WriteString("\n")

	if s := m.renderSummary(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
	}

	help := "←/→: 翻阅  c: 复制  r: 再来一次  h: 返回首页"
	if m.canSummarize && m.status != summarize.StatusDone && m.status != summarize.StatusPending {
		help = "←/→: 翻阅  c: 复制  s: 年度总结  r: 再来一次  h: 返回首页"
	}
	return card(m.width, b.String(), ctrlCFooter(m.ctrlCPending, help))
}

// topicLabel renders the answer's topic. Answers carry only the Chinese
// title, so the English title and color come from the catalog when it
// still knows the topic.
func (m SummaryModel) topicLabel(a session.UserAnswer) string {
	label := "【" + a.TopicTitle + "】"
	if m.catalog == nil {
		return tui.DimStyle.Render(label)
	}
	t, ok := m.catalog.TopicByTitle(a.TopicTitle)
	if !ok {
		return tui.DimStyle.Render(label)
	}
	return tui.BadgeStyle(t.Color).Render(t.Number+" "+t.TitleCn) + " " + tui.SubtitleStyle.Render(t.TitleEn)
}

func (m SummaryModel) renderSummary() string {
	switch m.status {
	case summarize.StatusPending:
		return tui.DimStyle.Render("正在生成年度总结……")
	case summarize.StatusFailed:
		return tui.ErrorStyle.Render(fmt.Sprintf("总结失败：%v（按 s 重试）", m.err))
	case summarize.StatusDone:
		if m.result == nil {
			return ""
		}
		chips := make([]string, len(m.result.Keywords))
		for i, k := range m.result.Keywords {
			chips[i] = tui.KeywordStyle.Render(k)
		}
		prose := m.result.Summary
		if m.renderer != nil {
			if out, err := m.renderer.Render(prose); err == nil {
				prose = strings.TrimSpace(out)
			}
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n" + prose
	}
	return ""
}
