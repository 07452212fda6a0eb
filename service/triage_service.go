package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"legalaid-backend/manual"
	"legalaid-backend/models"
	"legalaid-backend/repository"

	"github.com/google/uuid"
)

// Generator abstracts the structured generation client for testability.
// *llm.Client is the production implementation.
type Generator interface {
	GenerateAnalysis(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error)
	GenerateEverydayLaws(ctx context.Context, country string) ([]models.EverydayLaw, error)
	GenerateLegalUpdates(ctx context.Context, country string) ([]models.LegalUpdate, error)
}

// TriageService coordinates the generation client across a bounded number of
// attempts and substitutes offline data when every attempt fails. Generation
// failures never escape this service; only precondition failures do.
type TriageService struct {
	generator Generator
	manual    *manual.Manual
	queryRepo *repository.LegalQueryRepository
}

// TriageServiceOption is a functional option for TriageService
type TriageServiceOption func(*TriageService)

// TriageWithGenerator sets the structured generation client
func TriageWithGenerator(g Generator) TriageServiceOption {
	return func(s *TriageService) {
		s.generator = g
	}
}

// TriageWithManual sets the offline legal manual
func TriageWithManual(m *manual.Manual) TriageServiceOption {
	return func(s *TriageService) {
		s.manual = m
	}
}

// TriageWithQueryRepository sets the query history repository
func TriageWithQueryRepository(repo *repository.LegalQueryRepository) TriageServiceOption {
	return func(s *TriageService) {
		s.queryRepo = repo
	}
}

// NewTriageService creates a new triage service
func NewTriageService(opts ...TriageServiceOption) *TriageService {
	s := &TriageService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrPromptRequired         = errors.New("prompt is required")
	ErrCountryRequired        = errors.New("country is required")
	ErrGeneratorNotConfigured = errors.New("generation client not configured")
)

const (
	// maxAttempts bounds the retry loop. Retries are immediate: the original
	// behavior is re-querying with identical input and no backoff.
	maxAttempts = 2

	// offlinePrefix marks advice produced by the offline manual instead of
	// the generation service.
	offlinePrefix = "[OFFLINE ANALYSIS]: "
)

// generateWithFallback drives the bounded retry loop shared by all three
// generation paths. It runs generate up to maxAttempts times sequentially
// and, on exhaustion or caller cancellation, substitutes fallback(). The
// returned bool reports whether the result is degraded.
func generateWithFallback[T any](
	ctx context.Context,
	name string,
	generate func(context.Context) (T, error),
	fallback func() T,
) (T, bool) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := generate(ctx)
		if err == nil {
			return result, false
		}
		log.Printf("%s generation attempt %d/%d failed: %v", name, attempt, maxAttempts, err)

		if ctx.Err() != nil {
			// Caller abandoned the request; don't start another attempt.
			break
		}
	}

	log.Printf("%s generation exhausted, serving offline fallback", name)
	return fallback(), true
}

// AnalyzeRequest represents a request to triage a legal situation
type AnalyzeRequest struct {
	UserID  uuid.UUID // optional; history is recorded when set
	Prompt  string
	Country string
}

// AnalyzeResult represents the result of a triage analysis
type AnalyzeResult struct {
	Analysis *models.LegalAnalysis
	Degraded bool
}

// Analyze produces a structured assessment for a free-text legal situation.
// Live answers come from the generation client; after maxAttempts failures
// the offline manual classifies the text instead and the advice is prefixed
// with the offline marker. This method fails only on preconditions.
func (s *TriageService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrPromptRequired
	}
	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}
	if s.manual == nil {
		return nil, errors.New("legal manual not set")
	}

	analysis, degraded := generateWithFallback(ctx, "analysis",
		func(ctx context.Context) (*models.LegalAnalysis, error) {
			return s.generator.GenerateAnalysis(ctx, req.Prompt, req.Country)
		},
		func() *models.LegalAnalysis {
			topic := s.manual.Classify(req.Prompt)
			// The keyword list is internal to the manual; only the canned
			// answer leaves this service.
			answer := topic.Answer
			answer.Advice = offlinePrefix + answer.Advice
			return &answer
		},
	)

	s.recordQuery(ctx, req, analysis, degraded)

	return &AnalyzeResult{Analysis: analysis, Degraded: degraded}, nil
}

// recordQuery appends the assessment to the user's query history. History is
// best-effort: a storage failure is logged, never surfaced.
func (s *TriageService) recordQuery(ctx context.Context, req AnalyzeRequest, analysis *models.LegalAnalysis, degraded bool) {
	if s.queryRepo == nil || req.UserID == uuid.Nil {
		return
	}

	query := &models.LegalQuery{
		UserID:               req.UserID,
		UserPrompt:           req.Prompt,
		Country:              req.Country,
		Category:             analysis.Category,
		ApplicableSections:   analysis.ApplicableSections,
		PenaltiesFinesTenure: analysis.PenaltiesFinesTenure,
		Advice:               analysis.Advice,
		RequiredDocuments:    analysis.RequiredDocuments,
		RiskScore:            analysis.RiskScore,
		Degraded:             degraded,
	}

	if err := s.queryRepo.Create(ctx, query); err != nil {
		log.Printf("Warning: failed to record legal query: %v", err)
	}
}

// EverydayLawsRequest represents a request for everyday laws
type EverydayLawsRequest struct {
	Country string
}

// EverydayLawsResult represents the result of an everyday-laws listing
type EverydayLawsResult struct {
	Laws     []models.EverydayLaw
	Degraded bool
}

// EverydayLaws lists commonly neglected laws for a country, falling back to
// a fixed default collection when generation is exhausted.
func (s *TriageService) EverydayLaws(ctx context.Context, req EverydayLawsRequest) (*EverydayLawsResult, error) {
	if strings.TrimSpace(req.Country) == "" {
		return nil, ErrCountryRequired
	}
	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}

	laws, degraded := generateWithFallback(ctx, "everyday laws",
		func(ctx context.Context) ([]models.EverydayLaw, error) {
			return s.generator.GenerateEverydayLaws(ctx, req.Country)
		},
		fallbackEverydayLaws,
	)

	return &EverydayLawsResult{Laws: laws, Degraded: degraded}, nil
}

// LegalUpdatesRequest represents a request for recent legal updates
type LegalUpdatesRequest struct {
	Country string
}

// LegalUpdatesResult represents the result of a legal-updates listing
type LegalUpdatesResult struct {
	Updates  []models.LegalUpdate
	Degraded bool
}

// LegalUpdates lists recent major legal changes for a country, falling back
// to a fixed default collection when generation is exhausted.
func (s *TriageService) LegalUpdates(ctx context.Context, req LegalUpdatesRequest) (*LegalUpdatesResult, error) {
	if strings.TrimSpace(req.Country) == "" {
		return nil, ErrCountryRequired
	}
	if s.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}

	updates, degraded := generateWithFallback(ctx, "legal updates",
		func(ctx context.Context) ([]models.LegalUpdate, error) {
			return s.generator.GenerateLegalUpdates(ctx, req.Country)
		},
		fallbackLegalUpdates,
	)

	return &LegalUpdatesResult{Updates: updates, Degraded: degraded}, nil
}
