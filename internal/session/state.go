package session

import (
	"math"
	"strings"
)

// ViewMode is the dashboard's current view.
type ViewMode int

const (
	AgencyOverview ViewMode = iota
	AgencyDetail
	BrandDetail
)

// String provides a human-readable representation of the ViewMode.
func (m ViewMode) String() string {
	switch m {
	case AgencyDetail:
		return "AgencyDetail"
	case BrandDetail:
		return "BrandDetail"
	default:
		return "AgencyOverview"
	}
}

// IsAgency reports whether the mode is on the agency side.
func (m ViewMode) IsAgency() bool {
	return m != BrandDetail
}

// ParseViewMode maps a configuration value to a mode. It accepts "agency",
// "overview", "detail" and "brand"; anything else yields AgencyOverview.
func ParseViewMode(s string) ViewMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brand", "branddetail":
		return BrandDetail
	case "detail", "agencydetail":
		return AgencyDetail
	default:
		return AgencyOverview
	}
}

const (
	MinVariationCount = 1
	MaxVariationCount = 24
	DefaultVariations = 12

	MinThreshold     = 0.60
	MaxThreshold     = 0.95
	DefaultThreshold = 0.90
)

// ClampVariationCount bounds n to [MinVariationCount, MaxVariationCount].
func ClampVariationCount(n int) int {
	if n < MinVariationCount {
		return MinVariationCount
	}
	if n > MaxVariationCount {
		return MaxVariationCount
	}
	return n
}

// ClampThreshold bounds t to [MinThreshold, MaxThreshold]. NaN is reported
// as not ok.
func ClampThreshold(t float64) (float64, bool) {
	if math.IsNaN(t) {
		return 0, false
	}
	if t < MinThreshold {
		return MinThreshold, true
	}
	if t > MaxThreshold {
		return MaxThreshold, true
	}
	return t, true
}

// State is a snapshot of a session.
type State struct {
	TenantID             string
	Mode                 ViewMode
	VariationCount       int
	ConsistencyThreshold float64
	AutomationEnabled    bool
}
