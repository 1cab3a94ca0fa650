package tint

import (
	"fmt"
	"testing"

	"brandos/internal/tenant"

	"github.com/stretchr/testify/assert"
)

func TestHexToRgba(t *testing.T) {
	tests := []struct {
		hex   string
		alpha float64
		want  string
	}{
		{"#D97943", 1, "rgba(217,121,67,1)"},
		{"D97943", 0.2, "rgba(217,121,67,0.2)"},
		{"fff", 0.5, "rgba(255,255,255,0.5)"},
		{"#0a3", 1, "rgba(0,170,51,1)"},
		{"#000000", 0, "rgba(0,0,0,0)"},
		{"", 0.3, "rgba(255,255,255,0.3)"},
		{"#", 1, "rgba(255,255,255,1)"},
		{"#zzzzzz", 1, "rgba(255,255,255,1)"},
		{"#12345", 1, "rgba(255,255,255,1)"},
		{"#1234567", 1, "rgba(255,255,255,1)"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q@%v", tt.hex, tt.alpha), func(t *testing.T) {
			assert.Equal(t, tt.want, HexToRgba(tt.hex, tt.alpha))
		})
	}
}

func TestParseHex_MatchesManualDecoding(t *testing.T) {
	for _, v := range []uint32{0x000000, 0xFFFFFF, 0xD97943, 0x2F9A63, 0x010203, 0x800080} {
		hex := fmt.Sprintf("#%06X", v)
		got, ok := ParseHex(hex)
		assert.True(t, ok, hex)
		assert.Equal(t, RGB{R: uint8(v >> 16), G: uint8(v >> 8 & 0xFF), B: uint8(v & 0xFF)}, got, hex)
	}
}

func TestParseHex_ShortFormDuplicatesDigits(t *testing.T) {
	short, ok := ParseHex("#abc")
	assert.True(t, ok)
	long, _ := ParseHex("#aabbcc")
	assert.Equal(t, long, short)
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name          string
		colors        []string
		wantPrimary   string
		wantSecondary string
	}{
		{"three colors", []string{"#111111", "#222222", "#333333"}, "#222222", "#333333"},
		{"two colors", []string{"#111111", "#222222"}, "#222222", "#111111"},
		{"one color", []string{"#111111"}, "#111111", "#111111"},
		{"no colors", nil, tenant.DefaultColor, tenant.DefaultColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tenant.Record{ID: "x", DNA: tenant.DNA{Colors: tt.colors}}
			got := Derive(rec, 0.5)
			assert.Equal(t, tt.wantPrimary, got.PrimaryHex)
			assert.Equal(t, tt.wantSecondary, got.SecondaryHex)
			assert.Equal(t, HexToRgba(tt.wantPrimary, 0.5), got.Primary)
			assert.Equal(t, HexToRgba(tt.wantSecondary, 0.5), got.Secondary)
		})
	}
}

func TestDerive_IsDeterministic(t *testing.T) {
	rec := tenant.Builtin().Resolve("cylndr")
	assert.Equal(t, Derive(rec, 0.12), Derive(rec, 0.12))
}
