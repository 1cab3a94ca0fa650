package tenant

import "strings"

// DefaultColor is used whenever a tenant carries no DNA colors.
const DefaultColor = "#D97943"

// Status drives the badge shown next to a tenant.
type Status int

const (
	StatusRunning Status = iota
	StatusReview
	StatusAttention
)

// String provides the badge label for the status.
func (s Status) String() string {
	switch s {
	case StatusReview:
		return "Review"
	case StatusAttention:
		return "Attention"
	default:
		return "Running"
	}
}

// ParseStatus maps a label to a Status. Unknown labels map to StatusRunning,
// which is also the badge used for anything unrecognised.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "review":
		return StatusReview
	case "attention":
		return StatusAttention
	default:
		return StatusRunning
	}
}

// MarshalYAML renders the status by label.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// DNA is the descriptive bundle attached to a tenant.
type DNA struct {
	Colors []string `yaml:"colors"`
	Fonts  []string `yaml:"fonts,omitempty"`
	Tone   string   `yaml:"tone,omitempty"`
}

// Solution is one installed module of a tenant's client pack.
type Solution struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// Record is a single tenant entry. Everything except ID and Name is optional.
type Record struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Status      Status     `yaml:"status"`
	Description string     `yaml:"description,omitempty"`
	DNA         DNA        `yaml:"dna"`
	Campaign    string     `yaml:"campaign,omitempty"`
	URL         string     `yaml:"url,omitempty"`
	Fidelity    string     `yaml:"fidelity,omitempty"`
	Asks        []string   `yaml:"asks,omitempty"`
	Insights    []string   `yaml:"insights,omitempty"`
	Solutions   []Solution `yaml:"solutions,omitempty"`
}

// PrimaryColor returns the first DNA color.
func (r Record) PrimaryColor() string {
	if len(r.DNA.Colors) == 0 {
		return DefaultColor
	}
	return r.DNA.Colors[0]
}

// withDefaults returns a deep copy of r with optional fields defaulted.
func (r Record) withDefaults() Record {
	out := r
	out.ID = strings.TrimSpace(r.ID)
	if out.Name == "" {
		out.Name = out.ID
	}
	out.DNA.Colors = nonEmpty(r.DNA.Colors)
	if len(out.DNA.Colors) == 0 {
		out.DNA.Colors = []string{DefaultColor}
	}
	out.DNA.Fonts = cloneStrings(r.DNA.Fonts)
	out.Asks = cloneStrings(r.Asks)
	out.Insights = cloneStrings(r.Insights)
	if r.Solutions != nil {
		out.Solutions = append([]Solution(nil), r.Solutions...)
	}
	return out
}

// clone copies the slices of an already defaulted record.
func (r Record) clone() Record {
	out := r
	out.DNA.Colors = cloneStrings(r.DNA.Colors)
	out.DNA.Fonts = cloneStrings(r.DNA.Fonts)
	out.Asks = cloneStrings(r.Asks)
	out.Insights = cloneStrings(r.Insights)
	if r.Solutions != nil {
		out.Solutions = append([]Solution(nil), r.Solutions...)
	}
	return out
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
