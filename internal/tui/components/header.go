package components

import (
	"strings"

	"brandos/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Header is the console title row with status chips on the right.
type Header struct {
	Title    string
	Subtitle string
	Chips    []string
	Width    int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithChips adds status chips to the right side
func (h *Header) WithChips(chips ...string) *Header {
	h.Chips = chips
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	left := design.HeaderTitleStyle.Render(h.Title)
	if h.Subtitle != "" {
		left += "\n" + design.TextSecondaryStyle.Render(h.Subtitle)
	}

	var chips []string
	for _, c := range h.Chips {
		chips = append(chips, design.ChipStyle.Render(strings.ToUpper(c)))
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top, chips...)

	if right == "" || lipgloss.Width(left)+lipgloss.Width(right)+1 > h.Width {
		if right == "" {
			return left
		}
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
