package models

// BusinessInsight is the AI consultant's answer for a business idea.
type BusinessInsight struct {
	BusinessName  string   `json:"businessName"`
	Slogan        string   `json:"slogan"`
	StrategySteps []string `json:"strategySteps"`
}

// Recommendation points a visitor to one catalog item that serves their goal.
type Recommendation struct {
	ItemID string   `json:"itemId"`
	Type   ItemKind `json:"type"`
	Reason string   `json:"reason"`
}
