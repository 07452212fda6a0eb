package models

// LegalAnalysis is the structured assessment every generation path must
// produce: the AI-generated triage answer and the offline fallback both
// resolve to this shape.
type LegalAnalysis struct {
	Category             string `json:"category"`
	ApplicableSections   string `json:"applicable_sections"`
	PenaltiesFinesTenure string `json:"penalties_fines_tenure"`
	Advice               string `json:"advice"`
	RequiredDocuments    string `json:"required_documents"`
	RiskScore            int    `json:"risk_score"` // 1 = low risk, 10 = seek immediate counsel
}

// EverydayLaw is one commonly neglected everyday law for a jurisdiction
type EverydayLaw struct {
	Symbol      string `json:"symbol"`
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Fine        string `json:"fine"`
}

// LegalUpdate is one recent legal change (amendment, ruling, code change)
// for a jurisdiction
type LegalUpdate struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Summary     string `json:"summary"`
	ImpactLevel string `json:"impact_level"`
}
