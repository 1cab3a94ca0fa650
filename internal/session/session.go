package session

import (
	"brandos/internal/tenant"
)

// Session is the mutable selection state of one dashboard run.
type Session struct {
	registry *tenant.Registry

	tenantID   string
	mode       ViewMode
	variations int
	threshold  float64
	automation bool
}

// Option configures a new Session.
type Option func(*Session)

// WithTenant selects the initial tenant. Unknown ids resolve to the first one.
func WithTenant(id string) Option {
	return func(s *Session) { s.SelectTenant(id) }
}

// WithVariationCount sets the initial variation count, clamped.
func WithVariationCount(n int) Option {
	return func(s *Session) { s.SetVariationCount(n) }
}

// WithThreshold sets the initial consistency threshold, clamped.
func WithThreshold(t float64) Option {
	return func(s *Session) { s.SetThreshold(t) }
}

// WithAutomation sets whether automation starts enabled.
func WithAutomation(enabled bool) Option {
	return func(s *Session) { s.automation = enabled }
}

// WithMode sets the initial view mode. AgencyDetail starts on the selected
// tenant.
func WithMode(mode ViewMode) Option {
	return func(s *Session) {
		switch mode {
		case AgencyDetail, BrandDetail:
			s.mode = mode
		default:
			s.mode = AgencyOverview
		}
	}
}

// New creates a session over reg, starting on the agency overview with the
// first tenant selected.
func New(reg *tenant.Registry, opts ...Option) *Session {
	s := &Session{
		registry:   reg,
		tenantID:   reg.First().ID,
		mode:       AgencyOverview,
		variations: DefaultVariations,
		threshold:  DefaultThreshold,
		automation: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry the session resolves against.
func (s *Session) Registry() *tenant.Registry {
	return s.registry
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	return State{
		TenantID:             s.tenantID,
		Mode:                 s.mode,
		VariationCount:       s.variations,
		ConsistencyThreshold: s.threshold,
		AutomationEnabled:    s.automation,
	}
}

// Mode returns the current view mode.
func (s *Session) Mode() ViewMode {
	return s.mode
}

// TenantID returns the selected tenant id. It always names a registry entry.
func (s *Session) TenantID() string {
	return s.tenantID
}

// Tenant returns the selected tenant record.
func (s *Session) Tenant() tenant.Record {
	return s.registry.Resolve(s.tenantID)
}

// SelectTenant changes the selected tenant without changing the mode.
func (s *Session) SelectTenant(id string) string {
	s.tenantID = s.registry.Resolve(id).ID
	return s.tenantID
}

// SelectClientFromOverview opens the agency detail view for id. In brand
// mode only the selection changes.
func (s *Session) SelectClientFromOverview(id string) {
	s.SelectTenant(id)
	if s.mode.IsAgency() {
		s.mode = AgencyDetail
	}
}

// BackToOverview returns from the agency detail view. It does nothing in
// any other mode.
func (s *Session) BackToOverview() {
	if s.mode == AgencyDetail {
		s.mode = AgencyOverview
	}
}

// ToggleBrandMode switches between the agency side and brand mode.
func (s *Session) ToggleBrandMode() ViewMode {
	if s.mode == BrandDetail {
		s.mode = AgencyOverview
	} else {
		s.mode = BrandDetail
	}
	return s.mode
}

// SetVariationCount stores n clamped to bounds and returns the stored value.
func (s *Session) SetVariationCount(n int) int {
	s.variations = ClampVariationCount(n)
	return s.variations
}

// SetThreshold stores t clamped to bounds and returns the stored value.
// NaN leaves the threshold unchanged.
func (s *Session) SetThreshold(t float64) float64 {
	if v, ok := ClampThreshold(t); ok {
		s.threshold = v
	}
	return s.threshold
}

// ToggleAutomation flips automation and returns the new value.
func (s *Session) ToggleAutomation() bool {
	s.automation = !s.automation
	return s.automation
}
