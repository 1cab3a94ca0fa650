// Package viewmodel derives the display fields of the dashboard from the
// tenant registry and a session snapshot. Derive is pure and cheap enough to
// call on every render.
package viewmodel

import (
	"fmt"
	"math"

	"brandos/internal/session"
	"brandos/internal/tenant"
	"brandos/internal/tint"
)

// DefaultTintAlpha is the alpha used for tenant tints when none is configured.
const DefaultTintAlpha = 0.12

// Options tunes derivations that are not part of the session state.
type Options struct {
	TintAlpha float64
}

// Badge is the rendered status badge of a tenant.
type Badge struct {
	Label      string
	Foreground string
	Background string
	Border     string
}

// ClientCard is one entry of the overview client list.
type ClientCard struct {
	ID          string
	Name        string
	Description string
	Badge       Badge
	Selected    bool
}

// Signal is one line of the brand fidelity card.
type Signal struct {
	Label  string
	Status string
	Warn   bool
}

// Lane is one step of the core services strip.
type Lane struct {
	Step        string
	Title       string
	Description string
}

// ViewModel is everything the presentation layer needs for one frame.
type ViewModel struct {
	Mode       session.ViewMode
	ModeLabel  string
	Breadcrumb string

	TenantID    string
	TenantName  string
	Description string
	Campaign    string
	URL         string
	Fidelity    string
	Asks        []string
	Insights    []string
	Solutions   []tenant.Solution
	Colors      []string
	Fonts       []string
	Tone        string

	Badge        Badge
	Tint         tint.Tint
	AccentBorder string

	VariationCount   int
	VariationLabel   string
	Threshold        float64
	ThresholdPercent int
	ShipGateLabel    string

	AutomationEnabled bool
	AutomationLabel   string

	Clients         []ClientCard
	ActivePilots    int
	StatusChips     []string
	FidelitySignals []Signal
	Lanes           []Lane
}

var badgeColors = map[tenant.Status][2]string{
	tenant.StatusRunning:   {"#2f9a63", "#e3f6ea"},
	tenant.StatusReview:    {"#D97943", "#FFF5F0"},
	tenant.StatusAttention: {"#C8632B", "#FFF0E6"},
}

// BadgeFor returns the badge for a status. Unknown statuses use the
// Running colors.
func BadgeFor(status tenant.Status) Badge {
	colors, ok := badgeColors[status]
	if !ok {
		colors = badgeColors[tenant.StatusRunning]
	}
	return Badge{
		Label:      status.String(),
		Foreground: colors[0],
		Background: colors[1],
		Border:     tint.HexToRgba(colors[0], 0.2),
	}
}

// ModeLabel names a view mode for headers.
func ModeLabel(mode session.ViewMode) string {
	switch mode {
	case session.AgencyDetail:
		return "Agency Detail"
	case session.BrandDetail:
		return "Brand View"
	default:
		return "Agency Overview"
	}
}

// Derive builds the view model for st. The tenant is resolved through reg,
// so a stale id shows the first tenant.
func Derive(reg *tenant.Registry, st session.State, opts Options) ViewModel {
	alpha := opts.TintAlpha
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultTintAlpha
	}

	rec := reg.Resolve(st.TenantID)
	vm := ViewModel{
		Mode:       st.Mode,
		ModeLabel:  ModeLabel(st.Mode),
		Breadcrumb: breadcrumb(st.Mode, rec.Name),

		TenantID:    rec.ID,
		TenantName:  rec.Name,
		Description: rec.Description,
		Campaign:    rec.Campaign,
		URL:         rec.URL,
		Fidelity:    rec.Fidelity,
		Asks:        rec.Asks,
		Insights:    rec.Insights,
		Solutions:   rec.Solutions,
		Colors:      rec.DNA.Colors,
		Fonts:       rec.DNA.Fonts,
		Tone:        rec.DNA.Tone,

		Badge: BadgeFor(rec.Status),
		Tint:  tint.Derive(rec, alpha),

		VariationCount:    st.VariationCount,
		VariationLabel:    variationLabel(st.VariationCount),
		Threshold:         st.ConsistencyThreshold,
		ThresholdPercent:  thresholdPercent(st.ConsistencyThreshold),
		AutomationEnabled: st.AutomationEnabled,
		AutomationLabel:   automationLabel(st.AutomationEnabled),

		ActivePilots:    reg.Len(),
		StatusChips:     []string{"Governance: Active", "HITL: Required", "Build: v2.0"},
		FidelitySignals: append([]Signal(nil), fidelitySignals...),
		Lanes:           append([]Lane(nil), lanes...),
	}
	vm.AccentBorder = tint.HexToRgba(vm.Tint.PrimaryHex, 0.3)
	vm.ShipGateLabel = fmt.Sprintf("Ship-Gate: auto-pass ≥ %d%%", vm.ThresholdPercent)

	for _, r := range reg.Records() {
		vm.Clients = append(vm.Clients, ClientCard{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Badge:       BadgeFor(r.Status),
			Selected:    r.ID == rec.ID,
		})
	}
	return vm
}

func breadcrumb(mode session.ViewMode, name string) string {
	switch mode {
	case session.AgencyDetail:
		return "Agency / Clients / " + name
	case session.BrandDetail:
		return "Brand / " + name
	default:
		return "Agency / Clients"
	}
}

func variationLabel(n int) string {
	if n == 1 {
		return "1 variation"
	}
	return fmt.Sprintf("%d variations", n)
}

func thresholdPercent(t float64) int {
	return int(math.Round(t * 100))
}

func automationLabel(on bool) string {
	if on {
		return "Automation: On"
	}
	return "Automation: Off"
}
