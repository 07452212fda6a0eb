package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"legalaid-backend/models"
)

var fenceOpenRe = regexp.MustCompile("(?i)```json")

// sanitizeJSON strips the markdown code fences the model sometimes wraps
// around its output despite being asked for raw JSON.
func sanitizeJSON(raw string) string {
	cleaned := fenceOpenRe.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// decodeAnalysis parses model output into a LegalAnalysis, checking every
// required field for presence and type explicitly. A payload that parses but
// is missing or mistypes a required field is a schema failure, not a valid
// partial answer.
func decodeAnalysis(raw string) (*models.LegalAnalysis, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(sanitizeJSON(raw)), &payload); err != nil {
		return nil, parseError(fmt.Errorf("response is not valid JSON: %w", err))
	}

	analysis := &models.LegalAnalysis{}
	var err error

	if analysis.Category, err = requiredString(payload, "category"); err != nil {
		return nil, schemaError(err)
	}
	if analysis.ApplicableSections, err = requiredString(payload, "applicable_sections"); err != nil {
		return nil, schemaError(err)
	}
	if analysis.Advice, err = requiredString(payload, "advice"); err != nil {
		return nil, schemaError(err)
	}
	if analysis.RequiredDocuments, err = requiredString(payload, "required_documents"); err != nil {
		return nil, schemaError(err)
	}
	if analysis.PenaltiesFinesTenure, err = optionalString(payload, "penalties_fines_tenure"); err != nil {
		return nil, schemaError(err)
	}

	score, err := requiredInt(payload, "risk_score")
	if err != nil {
		return nil, schemaError(err)
	}
	if score < 1 || score > 10 {
		return nil, schemaError(fmt.Errorf("risk_score %d outside range 1-10", score))
	}
	analysis.RiskScore = score

	return analysis, nil
}

// decodeEverydayLaws parses a {"laws":[...]} payload. An empty list is a
// schema failure, not a valid empty result.
func decodeEverydayLaws(raw string) ([]models.EverydayLaw, error) {
	var payload struct {
		Laws []models.EverydayLaw `json:"laws"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSON(raw)), &payload); err != nil {
		return nil, parseError(fmt.Errorf("response is not valid JSON: %w", err))
	}
	if len(payload.Laws) == 0 {
		return nil, schemaError(fmt.Errorf("laws list is missing or empty"))
	}
	for i, law := range payload.Laws {
		if strings.TrimSpace(law.Rule) == "" {
			return nil, schemaError(fmt.Errorf("laws[%d] has an empty rule", i))
		}
	}
	return payload.Laws, nil
}

// decodeLegalUpdates parses an {"updates":[...]} payload with the same
// non-empty requirements as decodeEverydayLaws.
func decodeLegalUpdates(raw string) ([]models.LegalUpdate, error) {
	var payload struct {
		Updates []models.LegalUpdate `json:"updates"`
	}
	if err := json.Unmarshal([]byte(sanitizeJSON(raw)), &payload); err != nil {
		return nil, parseError(fmt.Errorf("response is not valid JSON: %w", err))
	}
	if len(payload.Updates) == 0 {
		return nil, schemaError(fmt.Errorf("updates list is missing or empty"))
	}
	for i, update := range payload.Updates {
		if strings.TrimSpace(update.Title) == "" {
			return nil, schemaError(fmt.Errorf("updates[%d] has an empty title", i))
		}
	}
	return payload.Updates, nil
}

// requiredString returns the named field as a non-empty string. Presence is
// checked explicitly rather than through truthiness so that shape problems
// and missing fields produce distinct messages.
func requiredString(payload map[string]interface{}, key string) (string, error) {
	value, ok := payload[key]
	if !ok {
		return "", fmt.Errorf("missing required field %q", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("field %q is empty", key)
	}
	return s, nil
}

// optionalString returns the named field if present, rejecting non-string
// values rather than coercing them.
func optionalString(payload map[string]interface{}, key string) (string, error) {
	value, ok := payload[key]
	if !ok {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return s, nil
}

// requiredInt returns the named field as an integer. JSON numbers decode to
// float64, so integrality is checked explicitly; a present-but-fractional
// score is rejected rather than truncated.
func requiredInt(payload map[string]interface{}, key string) (int, error) {
	value, ok := payload[key]
	if !ok {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	f, ok := value.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", key)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("field %q is not an integer", key)
	}
	return int(f), nil
}
