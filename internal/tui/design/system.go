package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	SpaceXS = 1
	SpaceSM = 2

	MinPanelWidth = 20
)

// Color Palette - the console's warm neutrals with a dark-terminal variant.
var (
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#D97943",
		Dark:  "#E8935F",
	}
	ColorAccentStrong = lipgloss.AdaptiveColor{
		Light: "#b96232",
		Dark:  "#D97943",
	}
	ColorNavy = lipgloss.AdaptiveColor{
		Light: "#1a2b4d",
		Dark:  "#C9D4EA",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#2f9a63",
		Dark:  "#4CC38A",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#C8632B",
		Dark:  "#F0A070",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#F5F1EB",
		Dark:  "#141414",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E8DDD1",
		Dark:  "#3A3530",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#1a2b4d",
		Dark:  "#F5F1EB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextWarningStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	TextAccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// Component Styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorAccent)

	// ThemeLabelStyle renders the small uppercase section labels.
	ThemeLabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	ChipStyle = lipgloss.NewStyle().
			Foreground(ColorNavy).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(ColorSuccess)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(ColorError)

	StatusBarWarningStyle = StatusBarStyle.
				Foreground(ColorWarning)

	ListItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(SpaceXS, SpaceSM)

	OverlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorText).
				MarginBottom(1)
)

// Icons used across the dashboard.
const (
	IconSelected = "▸"
	IconCheck    = "✓"
	IconDot      = "•"
	IconWarn     = "●"
	IconLink     = "↗"
)
