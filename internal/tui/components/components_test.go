package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_RenderFitsWidth(t *testing.T) {
	out := NewPanel("Client").
		WithContent("Jenni Kayne\nA line that is certainly much longer than the panel allows").
		WithDimensions(30, 0).
		Render()

	assert.Contains(t, out, "CLIENT")
	assert.Contains(t, out, "Jenni Kayne")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestPanel_FixedHeight(t *testing.T) {
	out := NewPanel("").WithContent("a\nb\nc\nd\ne\nf").WithDimensions(24, 5).Render()
	assert.Equal(t, 5, lipgloss.Height(out))
	assert.NotContains(t, out, "f")
}

func TestStatusBar_MessageReplacesLeftText(t *testing.T) {
	bar := NewStatusBar(60).WithLeftText("Agency Overview").WithRightText("h help")
	assert.Contains(t, bar.Render(), "Agency Overview")
	assert.Contains(t, bar.Render(), "h help")

	bar.WithMessage("URL copied", MessageSuccess)
	out := bar.Render()
	assert.Contains(t, out, "URL copied")
	assert.NotContains(t, out, "Agency Overview")
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("BrandStudios.AI Operating System").
		WithSubtitle("Session view: Jenni Kayne").
		WithChips("Governance: Active").
		WithWidth(120).
		Render()

	assert.Contains(t, out, "BrandStudios.AI Operating System")
	assert.Contains(t, out, "Session view: Jenni Kayne")
	assert.Contains(t, out, "GOVERNANCE: ACTIVE")
}
