package models

// LegalTopic is a catalogued legal subject area used by the offline
// classifier. Keywords are lowercase and matched as whole words; the Answer
// is the pre-written assessment returned when the topic is selected.
type LegalTopic struct {
	Keywords []string
	Answer   LegalAnalysis
}
