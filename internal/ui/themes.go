package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for CLI output.
// Each color field holds an ANSI 256-color code consumed by NewStyles.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for selected items.
	Primary string
	// Secondary is used for less prominent elements such as labels.
	Secondary string
	// Error indicates failures.
	Error string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "141", // Purple
		Secondary: "245", // Grey
		Error:     "196", // Red
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "54",  // Dark purple
		Secondary: "240", // Dark grey
		Error:     "124", // Dark red
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme. Defaults to DarkTheme but can be
	// changed via SetTheme or InitTheme.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Current returns the active theme.
func Current() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetTheme activates the named theme. It reports whether the name was known.
func SetTheme(name string) bool {
	var t Theme
	switch name {
	case "dark":
		t = DarkTheme
	case "light":
		t = LightTheme
	case "none":
		t = NoColorTheme
	default:
		return false
	}
	themeMutex.Lock()
	currentTheme = t
	themeMutex.Unlock()
	return true
}

// InitTheme selects the startup theme. Color is disabled when noColor is
// set or the NO_COLOR convention is present in the environment, overriding
// the configured theme; child universes inherit the environment, so the
// whole tree renders alike.
func InitTheme(noColor bool, theme string) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme("none")
		return
	}
	if !SetTheme(theme) {
		SetTheme("dark")
	}
}

// Styles holds the lipgloss styles used for result presentation.
type Styles struct {
	// Item renders the selected item itself.
	Item lipgloss.Style
	// Label renders the descriptive text around the item.
	Label lipgloss.Style
	// Failure renders error lines.
	Failure lipgloss.Style
}

// NewStyles builds the lipgloss styles matching the active theme.
func NewStyles() Styles {
	t := Current()
	if t.Name == "none" {
		return Styles{
			Item:    lipgloss.NewStyle(),
			Label:   lipgloss.NewStyle(),
			Failure: lipgloss.NewStyle(),
		}
	}
	return Styles{
		Item:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
	}
}
