package handlers

import (
	"net/http"
	"strconv"

	"legalaid-backend/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for profiles and query history
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetProfile handles GET /api/profile
func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.accountService.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// UpdateProfileRequest represents the request body for updating a profile
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Country  string `json:"country"`
	Theme    string `json:"theme"`
}

// UpdateProfile handles PUT /api/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
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

	profile, err := h.accountService.UpdateProfile(c.Request.Context(), service.UpdateProfileRequest{
		UserID:   currentUserID(c),
		FullName: req.FullName,
		Country:  req.Country,
		Theme:    req.Theme,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// QueryHistory handles GET /api/queries
func (h *AccountHandler) QueryHistory(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_LIMIT",
					"message": "limit must be a positive integer",
				},
			})
			return
		}
		limit = parsed
	}

	queries, err := h.accountService.QueryHistory(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    queries,
	})
}
