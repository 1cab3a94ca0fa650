package viewmodel

var fidelitySignals = []Signal{
	{Label: "Brand Similarity", Status: "Strong"},
	{Label: "Color Alignment", Status: "Strong"},
	{Label: "Visual Consistency", Status: "Strong"},
	{Label: "Composition", Status: "Review", Warn: true},
}

var lanes = []Lane{
	{Step: "01", Title: "Brand Memory", Description: "Your brand's living truth, captured as Brand DNA, strengthened by use."},
	{Step: "02", Title: "Creative Studio", Description: "Connected environment where AI accelerates and humans decide."},
	{Step: "03", Title: "Brand Grade + Drift Control", Description: "Moves work forward when thresholds are met, or routes to HITL."},
	{Step: "04", Title: "Human Intelligence", Description: "Judgment embedded as system logic. Decisions train the system."},
	{Step: "05", Title: "Insight Loop", Description: "Turns outcomes into learning. Updates Brand Memory."},
}
