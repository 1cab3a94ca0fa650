package color

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ThemeEnvVar forces the dark or light theme regardless of configuration.
const ThemeEnvVar = "BRANDOS_THEME"

// Initialize fixes lipgloss to a dark or light background so adaptive
// colors resolve consistently for the whole run.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// ResolveDarkMode decides the background for a configured theme ("auto",
// "dark", "light"). BRANDOS_THEME overrides the configured value; "auto"
// asks the terminal.
func ResolveDarkMode(theme string) bool {
	if env := strings.TrimSpace(os.Getenv(ThemeEnvVar)); env != "" {
		theme = env
	}
	switch strings.ToLower(theme) {
	case "dark":
		return true
	case "light":
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}

// NoColor reports whether NO_COLOR is set.
func NoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}

// ApplyNoColor drops lipgloss to plain ASCII output when NO_COLOR is set.
// It reports whether colors were disabled.
func ApplyNoColor() bool {
	if !NoColor() {
		return false
	}
	lipgloss.SetColorProfile(termenv.Ascii)
	return true
}

// Swatch renders a small block in the given hex color. Invalid colors
// render as a plain block.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
}
