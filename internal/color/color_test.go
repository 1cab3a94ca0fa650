package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestResolveDarkMode(t *testing.T) {
	t.Setenv(ThemeEnvVar, "")
	if !ResolveDarkMode("dark") {
		t.Error("expected dark theme to resolve to dark mode")
	}
	if ResolveDarkMode("LIGHT") {
		t.Error("expected light theme to resolve to light mode")
	}

	t.Setenv(ThemeEnvVar, "light")
	if ResolveDarkMode("dark") {
		t.Errorf("expected %s=light to override configured theme", ThemeEnvVar)
	}
}

func TestSwatch(t *testing.T) {
	if got := Swatch("#D97943"); lipgloss.Width(got) != 2 {
		t.Errorf("expected swatch width 2, got %d (%q)", lipgloss.Width(got), got)
	}
}

func TestApplyNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	profile := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(profile)

	if !ApplyNoColor() {
		t.Fatal("ApplyNoColor() = false with NO_COLOR set")
	}
	if got := Swatch("#E4002B"); got != "██" {
		t.Errorf("Swatch() with NO_COLOR = %q, want plain block", got)
	}
}
