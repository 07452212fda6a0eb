package models

import (
	"time"

	"github.com/google/uuid"
)

// LegalQuery is one entry in a user's append-only query history: the prompt
// they submitted plus the assessment they received.
type LegalQuery struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	UserPrompt           string    `json:"user_prompt"`
	Country              string    `json:"country"`
	Category             string    `json:"category"`
	ApplicableSections   string    `json:"applicable_sections"`
	PenaltiesFinesTenure string    `json:"penalties_fines_tenure"`
	Advice               string    `json:"advice"`
	RequiredDocuments    string    `json:"required_documents"`
	RiskScore            int       `json:"risk_score"`
	Degraded             bool      `json:"degraded"`
	CreatedAt            time.Time `json:"created_at"`
}
