package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysisJSON = `{
	"category": "Employment & Labor Law",
	"applicable_sections": "Payment of Wages Act",
	"penalties_fines_tenure": "Fines and wage arrears with interest",
	"advice": "Collect all evidence of your employment.",
	"required_documents": "- Offer letter\n- Payslips",
	"risk_score": 5
}`

func stageOf(t *testing.T, err error) Stage {
	t.Helper()
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	return genErr.Stage
}

func TestSanitizeJSONStripsCodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"uppercase fence", "```JSON\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeJSON(tt.raw))
		})
	}
}

func TestDecodeAnalysisValid(t *testing.T) {
	analysis, err := decodeAnalysis(validAnalysisJSON)
	require.NoError(t, err)

	assert.Equal(t, "Employment & Labor Law", analysis.Category)
	assert.Equal(t, 5, analysis.RiskScore)
	assert.Equal(t, "- Offer letter\n- Payslips", analysis.RequiredDocuments)
}

func TestDecodeAnalysisAcceptsFencedPayload(t *testing.T) {
	analysis, err := decodeAnalysis("```json\n" + validAnalysisJSON + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "Employment & Labor Law", analysis.Category)
}

func TestDecodeAnalysisRejectsInvalidJSON(t *testing.T) {
	_, err := decodeAnalysis("the model refused to answer")
	assert.Equal(t, StageParse, stageOf(t, err))
}

func TestDecodeAnalysisRejectsMissingRiskScore(t *testing.T) {
	payload := `{
		"category": "Criminal Law",
		"applicable_sections": "IPC",
		"advice": "Seek counsel.",
		"required_documents": "- FIR copy"
	}`

	_, err := decodeAnalysis(payload)
	assert.Equal(t, StageSchema, stageOf(t, err))
	assert.Contains(t, err.Error(), "risk_score")
}

func TestDecodeAnalysisRejectsOutOfRangeRiskScore(t *testing.T) {
	for _, score := range []string{"0", "11"} {
		payload := `{
			"category": "Criminal Law",
			"applicable_sections": "IPC",
			"advice": "Seek counsel.",
			"required_documents": "- FIR copy",
			"risk_score": ` + score + `
		}`

		_, err := decodeAnalysis(payload)
		assert.Equal(t, StageSchema, stageOf(t, err))
	}
}

func TestDecodeAnalysisRejectsFractionalRiskScore(t *testing.T) {
	payload := `{
		"category": "Criminal Law",
		"applicable_sections": "IPC",
		"advice": "Seek counsel.",
		"required_documents": "- FIR copy",
		"risk_score": 5.5
	}`

	_, err := decodeAnalysis(payload)
	assert.Equal(t, StageSchema, stageOf(t, err))
}

func TestDecodeAnalysisRejectsMistypedField(t *testing.T) {
	payload := `{
		"category": 7,
		"applicable_sections": "IPC",
		"advice": "Seek counsel.",
		"required_documents": "- FIR copy",
		"risk_score": 5
	}`

	_, err := decodeAnalysis(payload)
	assert.Equal(t, StageSchema, stageOf(t, err))
}

func TestDecodeAnalysisAllowsMissingPenalties(t *testing.T) {
	payload := `{
		"category": "Criminal Law",
		"applicable_sections": "IPC",
		"advice": "Seek counsel.",
		"required_documents": "- FIR copy",
		"risk_score": 9
	}`

	analysis, err := decodeAnalysis(payload)
	require.NoError(t, err)
	assert.Empty(t, analysis.PenaltiesFinesTenure)
}

func TestDecodeEverydayLaws(t *testing.T) {
	payload := `{"laws":[
		{"symbol":"🐕","rule":"Leash Laws","description":"Off-leash walking","fine":"$25 to $250"},
		{"symbol":"📱","rule":"Recording Consent","description":"Two-party consent","fine":"Varies"}
	]}`

	laws, err := decodeEverydayLaws(payload)
	require.NoError(t, err)
	require.Len(t, laws, 2)
	assert.Equal(t, "Leash Laws", laws[0].Rule)
}

func TestDecodeEverydayLawsRejectsEmptyList(t *testing.T) {
	_, err := decodeEverydayLaws(`{"laws":[]}`)
	assert.Equal(t, StageSchema, stageOf(t, err))

	_, err = decodeEverydayLaws(`{}`)
	assert.Equal(t, StageSchema, stageOf(t, err))
}

func TestDecodeEverydayLawsRejectsEmptyRule(t *testing.T) {
	payload := `{"laws":[{"symbol":"🐕","rule":"  ","description":"x","fine":"y"}]}`

	_, err := decodeEverydayLaws(payload)
	assert.Equal(t, StageSchema, stageOf(t, err))
}

func TestDecodeLegalUpdates(t *testing.T) {
	payload := "```json\n" + `{"updates":[
		{"title":"New Criminal Laws Act","date":"2024","summary":"Penal code overhaul.","impact_level":"High"}
	]}` + "\n```"

	updates, err := decodeLegalUpdates(payload)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "New Criminal Laws Act", updates[0].Title)
	assert.Equal(t, "High", updates[0].ImpactLevel)
}

func TestDecodeLegalUpdatesRejectsEmptyTitle(t *testing.T) {
	payload := `{"updates":[{"title":"","date":"2024","summary":"x","impact_level":"Low"}]}`

	_, err := decodeLegalUpdates(payload)
	assert.Equal(t, StageSchema, stageOf(t, err))
}

func TestGenerationErrorUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	err := transportError(inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, StageTransport, stageOf(t, err))
}
