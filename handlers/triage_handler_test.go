package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legalaid-backend/manual"
	"legalaid-backend/models"
	"legalaid-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator implements service.Generator for handler tests.
type stubGenerator struct {
	analysis *models.LegalAnalysis
	err      error
}

func (s *stubGenerator) GenerateAnalysis(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
	return s.analysis, s.err
}

func (s *stubGenerator) GenerateEverydayLaws(ctx context.Context, country string) ([]models.EverydayLaw, error) {
	return nil, s.err
}

func (s *stubGenerator) GenerateLegalUpdates(ctx context.Context, country string) ([]models.LegalUpdate, error) {
	return nil, s.err
}

func newTriageRouter(gen service.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	opts := []service.TriageServiceOption{service.TriageWithManual(manual.New())}
	if gen != nil {
		opts = append(opts, service.TriageWithGenerator(gen))
	}
	handler := NewTriageHandler(service.NewTriageService(opts...))

	r := gin.New()
	r.POST("/api/analyze", handler.Analyze)
	r.POST("/api/laws", handler.EverydayLaws)
	r.POST("/api/updates", handler.LegalUpdates)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAnalyzeReturnsLiveAnalysis(t *testing.T) {
	gen := &stubGenerator{analysis: &models.LegalAnalysis{
		Category:  "Employment & Labor Law",
		Advice:    "Document every unpaid pay period.",
		RiskScore: 5,
	}}
	r := newTriageRouter(gen)

	w := postJSON(t, r, "/api/analyze", `{"prompt":"my employer withheld my salary","country":"India"}`)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data struct {
		Analysis models.LegalAnalysis `json:"analysis"`
		Degraded bool                 `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Degraded)
	assert.Equal(t, "Employment & Labor Law", data.Analysis.Category)
}

func TestAnalyzeServesDegradedResultWhenGenerationFails(t *testing.T) {
	gen := &stubGenerator{err: errors.New("service unavailable")}
	r := newTriageRouter(gen)

	w := postJSON(t, r, "/api/analyze", `{"prompt":"my landlord is evicting me","country":"India"}`)

	require.Equal(t, http.StatusOK, w.Code, "generation failures degrade, they do not error")
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data struct {
		Analysis models.LegalAnalysis `json:"analysis"`
		Degraded bool                 `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Degraded)
	assert.Equal(t, "Property & Tenant Law", data.Analysis.Category)
	assert.True(t, strings.HasPrefix(data.Analysis.Advice, "[OFFLINE ANALYSIS]: "))
}

func TestAnalyzeRejectsMissingPrompt(t *testing.T) {
	r := newTriageRouter(&stubGenerator{})

	w := postJSON(t, r, "/api/analyze", `{"prompt":"","country":"India"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "PROMPT_REQUIRED", env.Error.Code)
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	r := newTriageRouter(&stubGenerator{})

	w := postJSON(t, r, "/api/analyze", `{"prompt": 42}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
}

func TestAnalyzeWithoutGeneratorReportsConfigError(t *testing.T) {
	r := newTriageRouter(nil)

	w := postJSON(t, r, "/api/analyze", `{"prompt":"my landlord is evicting me"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "MISSING_API_KEY", env.Error.Code)
}

func TestEverydayLawsServesFallbackCollection(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	r := newTriageRouter(gen)

	w := postJSON(t, r, "/api/laws", `{"country":"India"}`)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data struct {
		Laws     []models.EverydayLaw `json:"laws"`
		Degraded bool                 `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Degraded)
	assert.Len(t, data.Laws, 5)
}

func TestEverydayLawsRequiresCountry(t *testing.T) {
	r := newTriageRouter(&stubGenerator{})

	w := postJSON(t, r, "/api/laws", `{"country":""}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "COUNTRY_REQUIRED", env.Error.Code)
}

func TestLegalUpdatesServesFallbackCollection(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	r := newTriageRouter(gen)

	w := postJSON(t, r, "/api/updates", `{"country":"India"}`)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data struct {
		Updates  []models.LegalUpdate `json:"updates"`
		Degraded bool                 `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Degraded)
	assert.Len(t, data.Updates, 4)
}
