package handlers

import (
	"errors"
	"net/http"

	"legalaid-backend/service"

	"github.com/gin-gonic/gin"
)

// TriageHandler handles HTTP requests for the triage endpoints
type TriageHandler struct {
	triageService *service.TriageService
}

// NewTriageHandler creates a new triage handler
func NewTriageHandler(triageService *service.TriageService) *TriageHandler {
	return &TriageHandler{triageService: triageService}
}

// AnalyzeRequest represents the request body for an analysis
type AnalyzeRequest struct {
	Prompt  string `json:"prompt"`
	Country string `json:"country"`
}

// Analyze handles POST /api/analyze
func (h *TriageHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	serviceReq := service.AnalyzeRequest{
		UserID:  currentUserID(c),
		Prompt:  req.Prompt,
		Country: req.Country,
	}

	result, err := h.triageService.Analyze(c.Request.Context(), serviceReq)
	if err != nil {
		h.renderTriageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"analysis": result.Analysis,
			"degraded": result.Degraded,
		},
	})
}

// CountryRequest represents the request body for the listing endpoints
type CountryRequest struct {
	Country string `json:"country"`
}

// EverydayLaws handles POST /api/laws
func (h *TriageHandler) EverydayLaws(c *gin.Context) {
	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.triageService.EverydayLaws(c.Request.Context(), service.EverydayLawsRequest{
		Country: req.Country,
	})
	if err != nil {
		h.renderTriageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"laws":     result.Laws,
			"degraded": result.Degraded,
		},
	})
}

// LegalUpdates handles POST /api/updates
func (h *TriageHandler) LegalUpdates(c *gin.Context) {
	var req CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.triageService.LegalUpdates(c.Request.Context(), service.LegalUpdatesRequest{
		Country: req.Country,
	})
	if err != nil {
		h.renderTriageError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"updates":  result.Updates,
			"degraded": result.Degraded,
		},
	})
}

// renderTriageError maps service precondition failures to HTTP responses.
// Generation failures never reach here; the service absorbs them into
// degraded results.
func (h *TriageHandler) renderTriageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPromptRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PROMPT_REQUIRED",
				"message": "Prompt is required",
			},
		})
	case errors.Is(err, service.ErrCountryRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "COUNTRY_REQUIRED",
				"message": "Country is required",
			},
		})
	case errors.Is(err, service.ErrGeneratorNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_API_KEY",
				"message": "GEMINI_API_KEY is missing in server environment",
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": err.Error(),
			},
		})
	}
}
