package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/studiogrid/internal/tui/theme"
)

// Cell width in characters, including padding.
const cellWidth = 7

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg        lipgloss.Color
	colorHighlight lipgloss.Color
	colorSelection lipgloss.Color
	colorFg        lipgloss.Color
	colorMuted     lipgloss.Color
	colorAccent    lipgloss.Color
	colorWarning   lipgloss.Color
	colorError     lipgloss.Color
	colorSuccess   lipgloss.Color

	Title     lipgloss.Style
	DayHeader lipgloss.Style
	HourLabel lipgloss.Style

	EmptyCell    lipgloss.Style
	CursorCell   lipgloss.Style
	ConflictCell lipgloss.Style

	SidebarActive lipgloss.Style
	SidebarEntry  lipgloss.Style

	ModalBox     lipgloss.Style
	ModalTitle   lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style

	FormInput       lipgloss.Style
	FormPlaceholder lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	Footer lipgloss.Style
	Status lipgloss.Style

	// One style per palette slot, used for painted cells.
	paletteCells []lipgloss.Style
	// Foreground-only palette styles for the sidebar swatches.
	paletteText []lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:        theme.Color(t.Bg),
		colorHighlight: theme.Color(t.BgHighlight),
		colorSelection: theme.Color(t.BgSelection),
		colorFg:        theme.Color(t.Fg),
		colorMuted:     theme.Color(t.FgMuted),
		colorAccent:    theme.Color(t.Accent),
		colorWarning:   theme.Color(t.Warning),
		colorError:     theme.Color(t.Error),
		colorSuccess:   theme.Color(t.Success),
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.DayHeader = lipgloss.NewStyle().Bold(true).Foreground(s.colorFg).Width(cellWidth).Align(lipgloss.Center)
	s.HourLabel = lipgloss.NewStyle().Foreground(s.colorMuted).Width(6).Align(lipgloss.Right)

	s.EmptyCell = lipgloss.NewStyle().Foreground(s.colorMuted).Width(cellWidth).Align(lipgloss.Center)
	s.CursorCell = lipgloss.NewStyle().Background(s.colorSelection).Foreground(s.colorFg).Bold(true).Width(cellWidth).Align(lipgloss.Center)
	s.ConflictCell = lipgloss.NewStyle().Background(s.colorError).Foreground(s.colorBg).Bold(true).Width(cellWidth).Align(lipgloss.Center)

	s.SidebarActive = lipgloss.NewStyle().Bold(true).Foreground(s.colorFg)
	s.SidebarEntry = lipgloss.NewStyle().Foreground(s.colorMuted)

	s.ModalBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(s.colorAccent).Padding(1, 2)
	s.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.FieldLabel = lipgloss.NewStyle().Foreground(s.colorMuted).Width(12)
	s.FieldFocused = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent).Width(12)

	s.FormInput = lipgloss.NewStyle().Foreground(s.colorFg)
	s.FormPlaceholder = lipgloss.NewStyle().Foreground(s.colorMuted)

	s.Success = lipgloss.NewStyle().Foreground(s.colorSuccess)
	s.Warning = lipgloss.NewStyle().Foreground(s.colorWarning)
	s.Error = lipgloss.NewStyle().Foreground(s.colorError).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(s.colorMuted)

	s.Footer = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.Status = lipgloss.NewStyle().Foreground(s.colorWarning)

	for i := 0; i < theme.PaletteSize; i++ {
		color := t.PaletteColor(i)
		s.paletteCells = append(s.paletteCells,
			lipgloss.NewStyle().Background(color).Foreground(s.colorBg).Bold(true).Width(cellWidth).Align(lipgloss.Center))
		s.paletteText = append(s.paletteText,
			lipgloss.NewStyle().Foreground(color).Bold(true))
	}

	return s
}

// PaletteCell returns the painted-cell style for a color index.
func (s *Styles) PaletteCell(index int) lipgloss.Style {
	return s.paletteCells[index%len(s.paletteCells)]
}

// PaletteText returns the swatch style for a color index.
func (s *Styles) PaletteText(index int) lipgloss.Style {
	return s.paletteText[index%len(s.paletteText)]
}
