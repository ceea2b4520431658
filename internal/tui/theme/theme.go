// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// PaletteSize is the number of class configuration colors a theme
// carries. Configurations cycle through them in creation order.
const PaletteSize = 5

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Selected cells, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Empty cells, secondary text
	Accent      string `toml:"accent"`       // Title, borders
	Warning     string `toml:"warning"`      // Advisory conflicts
	Error       string `toml:"error"`        // Room conflicts, failures
	Success     string `toml:"success"`      // Submitted groups

	// Class configuration palette, cycled in creation order.
	Palette []string `toml:"palette"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// PaletteColor returns the palette color for a configuration's color
// index, wrapping past the palette end.
func (t *Theme) PaletteColor(index int) lipgloss.Color {
	if len(t.Palette) == 0 {
		return Color(t.Accent)
	}
	if index < 0 {
		index = -index
	}
	return Color(t.Palette[index%len(t.Palette)])
}

// Load loads a theme by name from embedded files. "auto" picks dark
// or light from the terminal background; unknown names fall back to
// dark.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(name)
	if name == "" || name == "auto" {
		name = "dark"
		if !lipgloss.HasDarkBackground() {
			name = "light"
		}
	}

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "dark" {
			return Load("dark")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}

	return &t, nil
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"auto", "dark", "light"}
}

// IsAvailable reports whether name is a known theme.
func IsAvailable(name string) bool {
	for _, n := range Available() {
		if n == strings.ToLower(name) {
			return true
		}
	}
	return false
}
