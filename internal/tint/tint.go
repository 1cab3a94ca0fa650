// Package tint derives display tints from a tenant's DNA colors.
package tint

import (
	"fmt"
	"strconv"
	"strings"

	"brandos/internal/tenant"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB holds 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

var white = RGB{R: 255, G: 255, B: 255}

// ParseHex decodes a 3- or 6-digit hex color, with or without a leading '#'.
func ParseHex(hex string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 3 && len(s) != 6 {
		return RGB{}, false
	}
	for _, c := range s {
		if !isHexDigit(c) {
			return RGB{}, false
		}
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// HexToRgba renders hex as a css rgba() string with the given alpha.
// Empty or malformed input falls back to white.
func HexToRgba(hex string, alpha float64) string {
	c, ok := ParseHex(hex)
	if !ok {
		c = white
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatAlpha(alpha))
}

// Tint is the pair of accent colors derived for a tenant.
type Tint struct {
	PrimaryHex   string
	SecondaryHex string
	Primary      string
	Secondary    string
	Alpha        float64
}

// Derive picks the tenant's second and third DNA colors as primary and
// secondary tints. Each falls back to the first DNA color, then to
// tenant.DefaultColor.
func Derive(rec tenant.Record, alpha float64) Tint {
	primary := pick(rec.DNA.Colors, 1)
	secondary := pick(rec.DNA.Colors, 2)
	return Tint{
		PrimaryHex:   primary,
		SecondaryHex: secondary,
		Primary:      HexToRgba(primary, alpha),
		Secondary:    HexToRgba(secondary, alpha),
		Alpha:        alpha,
	}
}

func pick(colors []string, i int) string {
	if i < len(colors) && colors[i] != "" {
		return colors[i]
	}
	if len(colors) > 0 && colors[0] != "" {
		return colors[0]
	}
	return tenant.DefaultColor
}

func formatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', -1, 64)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
