// Package color resolves the terminal background and color profile for
// brandos.
//
// The dashboard uses lipgloss adaptive colors, so the only decision made
// here is whether the background is dark. The configured ui.theme value
// ("auto", "dark", "light") is consulted first; BRANDOS_THEME overrides it,
// and "auto" asks the terminal.
//
//	color.Initialize(color.ResolveDarkMode(cfg.UI.Theme))
//
// NO_COLOR is honored through ApplyNoColor, which switches lipgloss to the
// ASCII profile. Swatch renders a tenant DNA color as a small block.
package color
