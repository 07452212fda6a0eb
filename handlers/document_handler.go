package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"legalaid-backend/models"
	"legalaid-backend/repository"
	"legalaid-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for evidence documents
type DocumentHandler struct {
	documentRepo     *repository.DocumentRepository
	store            storage.DocumentStore
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentRepo *repository.DocumentRepository, store storage.DocumentStore) *DocumentHandler {
	return &DocumentHandler{
		documentRepo: documentRepo,
		store:        store,
		maxFileSize:  10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"application/pdf":    true,
			"text/plain":         true,
			"application/msword": true, // .doc
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true, // .docx
			"image/png":  true,
			"image/jpeg": true,
		},
	}
}

// Upload handles POST /api/documents/upload
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID := currentUserID(c)

	var queryID *uuid.UUID
	if queryIDStr := c.PostForm("query_id"); queryIDStr != "" {
		qid, err := uuid.Parse(queryIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_QUERY_ID",
					"message": "Invalid query_id format",
				},
			})
			return
		}
		queryID = &qid
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "File is required",
			},
		})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_TOO_LARGE",
				"message": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize),
			},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FILE_OPEN_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	if !h.allowedMimeTypes[mimeType] && !strings.HasPrefix(mimeType, "text/") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILE_TYPE",
				"message": "File type not allowed. Allowed types: PDF, TXT, DOC, DOCX, PNG, JPEG",
			},
		})
		return
	}

	docID := uuid.New()

	storagePath, err := h.store.Save(c.Request.Context(), docID, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": fmt.Sprintf("Failed to store document: %v", err),
			},
		})
		return
	}

	doc := &models.Document{
		ID:          docID,
		UserID:      userID,
		QueryID:     queryID,
		Filename:    fileHeader.Filename,
		MimeType:    mimeType,
		Size:        fileHeader.Size,
		StoragePath: storagePath,
	}

	if err := h.documentRepo.Create(c.Request.Context(), doc); err != nil {
		// Try to clean up the stored file
		_ = h.store.Remove(c.Request.Context(), storagePath)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    doc,
	})
}

// Get handles GET /api/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	// Documents are private to their owner
	if doc.UserID != currentUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	reader, err := h.store.Open(c.Request.Context(), doc.StoragePath)
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
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.DataFromReader(http.StatusOK, doc.Size, doc.MimeType, reader, nil)
}

// List handles GET /api/documents
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documentRepo.ListByUserID(c.Request.Context(), currentUserID(c))
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
		"data":    docs,
	})
}
