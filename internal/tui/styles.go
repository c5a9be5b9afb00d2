package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leafecho/leafecho/internal/catalog"
)

// Morandi palette shared by every screen.
const (
	inkColor    = catalog.ColorEspresso
	mutedColor  = catalog.ColorTaupe
	accentColor = "#8C7B6B"
	paperColor  = catalog.ColorPaper
	okColor     = "#7D8F69" // sage
	errorColor  = "#B5656B" // dusty rose
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border card.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(catalog.ColorMocha)).
			Padding(1, 3)

	// TitleStyle renders titles.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(inkColor)).
			Bold(true)

	// SubtitleStyle renders the small English line under a title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(mutedColor)).
			Italic(true)

	// SelectedStyle highlights the focused item.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(mutedColor))

	// SuccessStyle renders confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(okColor))

	// ErrorStyle renders error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// HintStyle renders the inspiration hint in the editor.
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Italic(true).
			PaddingLeft(2)

	// KeywordStyle renders one summary keyword chip.
	KeywordStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(catalog.ColorLatte)).
			Foreground(lipgloss.Color(inkColor)).
			Padding(0, 1).
			MarginRight(1)

	// FooterStyle renders the key help line.
	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(mutedColor)).
			MarginTop(1)
)

// TileStyle returns the style of a topic tile in its own color.
func TileStyle(color string, focused, completed bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(20).
		Height(3).
		Padding(0, 1).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(inkColor)).
		Border(lipgloss.HiddenBorder())
	if focused {
		s = s.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(accentColor))
	}
	if completed {
		s = s.Background(lipgloss.Color(paperColor)).Foreground(lipgloss.Color(mutedColor))
	}
	return s
}

// BadgeStyle returns a one-line label tinted with a topic color.
func BadgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(inkColor))
}

// Answer status icons (pre-rendered strings).
var (
	// IconDone marks a completed topic.
	IconDone = SuccessStyle.Render("✓")

	// IconSkipped marks a skipped answer.
	IconSkipped = DimStyle.Render("⊘")
)
