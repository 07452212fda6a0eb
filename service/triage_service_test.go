package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"legalaid-backend/manual"
	"legalaid-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator implements Generator with pluggable behavior and call counts.
type fakeGenerator struct {
	analysisFn func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error)
	lawsFn     func(ctx context.Context, country string) ([]models.EverydayLaw, error)
	updatesFn  func(ctx context.Context, country string) ([]models.LegalUpdate, error)

	analysisCalls int
	lawsCalls     int
	updatesCalls  int
}

func (f *fakeGenerator) GenerateAnalysis(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
	f.analysisCalls++
	return f.analysisFn(ctx, prompt, country)
}

func (f *fakeGenerator) GenerateEverydayLaws(ctx context.Context, country string) ([]models.EverydayLaw, error) {
	f.lawsCalls++
	return f.lawsFn(ctx, country)
}

func (f *fakeGenerator) GenerateLegalUpdates(ctx context.Context, country string) ([]models.LegalUpdate, error) {
	f.updatesCalls++
	return f.updatesFn(ctx, country)
}

func liveAnalysis() *models.LegalAnalysis {
	return &models.LegalAnalysis{
		Category:           "Employment & Labor Law",
		ApplicableSections: "Payment of Wages Act",
		Advice:             "Document every unpaid pay period.",
		RequiredDocuments:  "- Payslips",
		RiskScore:          5,
	}
}

func newTestService(gen Generator) *TriageService {
	return NewTriageService(
		TriageWithGenerator(gen),
		TriageWithManual(manual.New()),
	)
}

func TestAnalyzeReturnsLiveResult(t *testing.T) {
	gen := &fakeGenerator{
		analysisFn: func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
			return liveAnalysis(), nil
		},
	}
	svc := newTestService(gen)

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Prompt:  "my employer withheld my salary",
		Country: "India",
	})
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, "Employment & Labor Law", result.Analysis.Category)
	assert.Equal(t, 1, gen.analysisCalls, "a success on the first attempt must not retry")
}

func TestAnalyzeRetriesOnceThenSucceeds(t *testing.T) {
	gen := &fakeGenerator{}
	gen.analysisFn = func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
		if gen.analysisCalls == 1 {
			return nil, errors.New("malformed model output")
		}
		return liveAnalysis(), nil
	}
	svc := newTestService(gen)

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Prompt: "unpaid wages"})
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, 2, gen.analysisCalls)
}

func TestAnalyzeFallsBackAfterExhaustion(t *testing.T) {
	gen := &fakeGenerator{
		analysisFn: func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
			return nil, errors.New("service unavailable")
		},
	}
	svc := newTestService(gen)

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Prompt: "my landlord is evicting me over a deposit dispute",
	})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, 2, gen.analysisCalls, "exactly two attempts before falling back")
	assert.Equal(t, "Property & Tenant Law", result.Analysis.Category)
	assert.True(t, strings.HasPrefix(result.Analysis.Advice, "[OFFLINE ANALYSIS]: "),
		"offline advice must carry the marker, got %q", result.Analysis.Advice)
}

func TestAnalyzeFallbackUsesGeneralTopicOnNoMatch(t *testing.T) {
	gen := &fakeGenerator{
		analysisFn: func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
			return nil, errors.New("service unavailable")
		},
	}
	svc := newTestService(gen)

	result, err := svc.Analyze(context.Background(), AnalyzeRequest{Prompt: "xyzzy plugh"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, "General Legal Inquiry", result.Analysis.Category)
	assert.Equal(t, 5, result.Analysis.RiskScore)
}

func TestAnalyzeRejectsEmptyPromptBeforeGenerating(t *testing.T) {
	gen := &fakeGenerator{
		analysisFn: func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
			return liveAnalysis(), nil
		},
	}
	svc := newTestService(gen)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Prompt: "   "})

	assert.ErrorIs(t, err, ErrPromptRequired)
	assert.Zero(t, gen.analysisCalls, "validation failures must not reach the generator")
}

func TestAnalyzeWithoutGenerator(t *testing.T) {
	svc := NewTriageService(TriageWithManual(manual.New()))

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{Prompt: "unpaid wages"})

	assert.ErrorIs(t, err, ErrGeneratorNotConfigured)
}

func TestAnalyzeCancelledContextSkipsSecondAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	gen := &fakeGenerator{}
	gen.analysisFn = func(ctx context.Context, prompt, country string) (*models.LegalAnalysis, error) {
		cancel()
		return nil, ctx.Err()
	}
	svc := newTestService(gen)

	result, err := svc.Analyze(ctx, AnalyzeRequest{Prompt: "my landlord kept my deposit"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, 1, gen.analysisCalls, "a cancelled context must not start another attempt")
}

func TestEverydayLawsReturnsLiveResult(t *testing.T) {
	live := []models.EverydayLaw{{Symbol: "🚲", Rule: "Helmet Requirements", Description: "x", Fine: "y"}}
	gen := &fakeGenerator{
		lawsFn: func(ctx context.Context, country string) ([]models.EverydayLaw, error) {
			return live, nil
		},
	}
	svc := newTestService(gen)

	result, err := svc.EverydayLaws(context.Background(), EverydayLawsRequest{Country: "India"})
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, live, result.Laws)
	assert.Equal(t, 1, gen.lawsCalls)
}

func TestEverydayLawsFallsBackToCannedCollection(t *testing.T) {
	gen := &fakeGenerator{
		lawsFn: func(ctx context.Context, country string) ([]models.EverydayLaw, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := newTestService(gen)

	result, err := svc.EverydayLaws(context.Background(), EverydayLawsRequest{Country: "India"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, 2, gen.lawsCalls)
	require.Len(t, result.Laws, 5)
	assert.Equal(t, "Recording Conversations Without Consent", result.Laws[0].Rule)
}

func TestEverydayLawsRequiresCountry(t *testing.T) {
	svc := newTestService(&fakeGenerator{})

	_, err := svc.EverydayLaws(context.Background(), EverydayLawsRequest{Country: ""})

	assert.ErrorIs(t, err, ErrCountryRequired)
}

func TestLegalUpdatesFallsBackToCannedCollection(t *testing.T) {
	gen := &fakeGenerator{
		updatesFn: func(ctx context.Context, country string) ([]models.LegalUpdate, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := newTestService(gen)

	result, err := svc.LegalUpdates(context.Background(), LegalUpdatesRequest{Country: "India"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Equal(t, 2, gen.updatesCalls)
	require.Len(t, result.Updates, 4)
	assert.Equal(t, "Digital Personal Data Protection Act Implementation", result.Updates[0].Title)
	for _, update := range result.Updates {
		assert.Contains(t, []string{"Low", "Medium", "High"}, update.ImpactLevel)
	}
}

func TestLegalUpdatesRequiresCountry(t *testing.T) {
	svc := newTestService(&fakeGenerator{})

	_, err := svc.LegalUpdates(context.Background(), LegalUpdatesRequest{Country: "  "})

	assert.ErrorIs(t, err, ErrCountryRequired)
}
