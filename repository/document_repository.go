package repository

import (
	"context"

	"legalaid-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for evidence documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			id, user_id, query_id, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.UserID,
		doc.QueryID,
		doc.Filename,
		doc.MimeType,
		doc.Size,
		doc.StoragePath,
	).Scan(&doc.CreatedAt)
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT id, user_id, query_id, filename, mime_type, size, storage_path, created_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.QueryID,
		&doc.Filename,
		&doc.MimeType,
		&doc.Size,
		&doc.StoragePath,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// ListByUserID retrieves all documents for a user
func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT id, user_id, query_id, filename, mime_type, size, storage_path, created_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.QueryID,
			&doc.Filename,
			&doc.MimeType,
			&doc.Size,
			&doc.StoragePath,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
