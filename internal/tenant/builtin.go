package tenant

import "fmt"

var builtinRecords = []Record{
	{
		ID:          "jenni-kayne",
		Name:        "Jenni Kayne",
		Status:      StatusReview,
		Description: "Consistency without sameness.",
		Campaign:    "California Minimal: Fall Edit",
		URL:         "https://jkbrandstudiosai-vis.vercel.app",
		Fidelity:    "98.2%",
		DNA: DNA{
			Colors: []string{"#F5F1EB", "#C8B8A6", "#8A7560"},
			Fonts:  []string{"Canela", "Suisse Int'l"},
			Tone:   "Quiet, warm, effortless",
		},
		Asks: []string{
			"Prove AI can deliver model and clothing realness at brand quality.",
			"Maintain exact model likeness across all generated assets.",
			"Extend photo shoots and create video from stills while preserving tone.",
		},
		Insights: []string{
			"Texture fidelity drives approval more than composition.",
			"Warm neutrals drift first under generative upscaling.",
		},
		Solutions: []Solution{
			{Title: "Visual DNA Archive", Description: "Living archive of 'California Minimal'."},
			{Title: "Campaign Generator", Description: "Seasonal asset creation studio."},
			{Title: "Drift Guard", Description: "Automated texture and tone protection."},
			{Title: "Executive Approval", Description: "Creative Director sign-off workflow."},
		},
	},
	{
		ID:          "cylndr",
		Name:        "CYLNDR",
		Status:      StatusRunning,
		Description: "Coherence under compression.",
		Campaign:    "48-Hour Merch Drop",
		URL:         "https://cyndr-dysply.vercel.app",
		Fidelity:    "96.9%",
		DNA: DNA{
			Colors: []string{"#111111", "#E4FF3A", "#3A3AFF"},
			Fonts:  []string{"Druk Wide", "JetBrains Mono"},
			Tone:   "Loud, kinetic, precise",
		},
		Asks: []string{
			"60 AI-generated images for rapid merch drop deployment.",
			"40 AI-generated videos with consistent brand styling.",
			"48-hour turnaround for on-brand asset delivery.",
		},
		Insights: []string{
			"Video variants hold styling better when seeded from approved stills.",
		},
		Solutions: []Solution{
			{Title: "Concept Creation", Description: "Initial ideation and direction setting."},
			{Title: "Asset Adaptation", Description: "Tailoring assets to local or brand-specific needs."},
			{Title: "Creative Studio", Description: "Production and refinement of creative outputs."},
			{Title: "Compliance Check", Description: "Final legal and brand governance review."},
		},
	},
	{
		ID:          "bazooka",
		Name:        "Bazooka",
		Status:      StatusAttention,
		Description: "Nostalgia at retail speed.",
		Campaign:    "Candy Aisle Refresh",
		Fidelity:    "91.4%",
		DNA: DNA{
			Colors: []string{"#E4002B", "#FFD100"},
			Fonts:  []string{"Cooper Black"},
			Tone:   "Playful, bold, retro",
		},
		Asks: []string{
			"Refresh packaging imagery across 12 retail SKUs.",
			"Keep the mascot on-model across every variation.",
		},
		Solutions: []Solution{
			{Title: "Character Lock", Description: "Mascot likeness guard."},
			{Title: "Pack Shot Studio", Description: "Retail-ready packaging renders."},
		},
	},
}

var builtin = mustRegistry(builtinRecords...)

// Builtin returns the compiled-in registry.
func Builtin() *Registry {
	return builtin
}

func mustRegistry(records ...Record) *Registry {
	reg, err := NewRegistry(records...)
	if err != nil {
		panic(fmt.Sprintf("invalid compiled-in tenant registry: %v", err))
	}
	return reg
}
