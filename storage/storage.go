package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocumentStore holds uploaded evidence documents (leases, FIR copies,
// payslips and similar supporting files).
type DocumentStore interface {
	// Save stores a document and returns the storage path
	Save(ctx context.Context, docID uuid.UUID, filename string, data io.Reader) (string, error)

	// Open retrieves a document by storage path
	Open(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Remove deletes a document by storage path
	Remove(ctx context.Context, storagePath string) error
}

// StoreType represents the storage backend type
type StoreType string

const (
	StoreTypeLocal StoreType = "local"
	StoreTypeS3    StoreType = "s3"
)

// StoreConfig holds configuration for a document store
type StoreConfig struct {
	Type         StoreType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewDocumentStore creates a document store based on configuration
func NewDocumentStore(cfg StoreConfig) (DocumentStore, error) {
	switch cfg.Type {
	case StoreTypeLocal:
		return NewLocalStore(cfg.LocalPath)
	case StoreTypeS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// NewDocumentStoreFromEnv creates a document store from environment variables
func NewDocumentStoreFromEnv() (DocumentStore, error) {
	storeType := os.Getenv("STORAGE_TYPE")
	if storeType == "" {
		storeType = "local" // Default to local for development
	}

	switch StoreType(storeType) {
	case StoreTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/documents"
		}
		return NewLocalStore(localPath)

	case StoreTypeS3:
		cfg := StoreConfig{
			Type:         StoreTypeS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Store(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storeType)
	}
}

// documentPath generates a unique storage path for a document
func documentPath(docID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	// Sanitize filename
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	// Use docID to ensure uniqueness
	return fmt.Sprintf("%s/%s_%s%s", docID.String()[:2], docID.String(), baseName, ext)
}
