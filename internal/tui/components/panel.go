package components

import (
	"strings"

	"brandos/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with a section label, the terminal analogue of
// the console's section cards.
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
	// Accent overrides the border color, e.g. with a tenant tint.
	Accent string
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions. A height of 0 fits the content.
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithAccent sets the border color.
func (p *Panel) WithAccent(hex string) *Panel {
	p.Accent = hex
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}

	style := design.PanelStyle
	if p.Focused {
		style = design.PanelFocusedStyle
	}
	if p.Accent != "" {
		style = style.BorderForeground(lipgloss.Color(p.Accent))
	}

	innerWidth := p.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, ThemeLabel(p.Title, innerWidth))
	}
	if p.Content != "" {
		for _, line := range strings.Split(p.Content, "\n") {
			if lipgloss.Width(line) > innerWidth {
				line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
			}
			lines = append(lines, line)
		}
	}

	if p.Height > 0 {
		innerHeight := p.Height - style.GetVerticalFrameSize()
		if innerHeight < 1 {
			innerHeight = 1
		}
		if len(lines) > innerHeight {
			lines = lines[:innerHeight]
		}
		for len(lines) < innerHeight {
			lines = append(lines, "")
		}
	}

	return style.Width(p.Width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

// ThemeLabel renders an uppercase section label followed by a rule.
func ThemeLabel(title string, width int) string {
	label := design.ThemeLabelStyle.Render(strings.ToUpper(title))
	rest := width - lipgloss.Width(label) - 1
	if rest <= 0 {
		return label
	}
	return label + " " + lipgloss.NewStyle().Foreground(design.ColorBorder).Render(strings.Repeat("─", rest))
}
