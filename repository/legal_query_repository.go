package repository

import (
	"context"

	"legalaid-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LegalQueryRepository handles database operations for the query history.
// The history is append-only: rows are inserted and listed, never updated
// or deleted.
type LegalQueryRepository struct {
	db *pgxpool.Pool
}

// NewLegalQueryRepository creates a new legal query repository
func NewLegalQueryRepository(db *pgxpool.Pool) *LegalQueryRepository {
	return &LegalQueryRepository{db: db}
}

// Create appends a query record
func (r *LegalQueryRepository) Create(ctx context.Context, query *models.LegalQuery) error {
	sql := `
		INSERT INTO legal_queries (
			user_id, user_prompt, country, category, applicable_sections,
			penalties_fines_tenure, advice, required_documents, risk_score, degraded
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, sql,
		query.UserID,
		query.UserPrompt,
		query.Country,
		query.Category,
		query.ApplicableSections,
		query.PenaltiesFinesTenure,
		query.Advice,
		query.RequiredDocuments,
		query.RiskScore,
		query.Degraded,
	).Scan(&query.ID, &query.CreatedAt)
}

// ListByUserID retrieves a user's queries, newest first
func (r *LegalQueryRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.LegalQuery, error) {
	sql := `
		SELECT id, user_id, user_prompt, country, category, applicable_sections,
			penalties_fines_tenure, advice, required_documents, risk_score, degraded, created_at
		FROM legal_queries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, sql, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var queries []*models.LegalQuery
	for rows.Next() {
		query := &models.LegalQuery{}
		err := rows.Scan(
			&query.ID,
			&query.UserID,
			&query.UserPrompt,
			&query.Country,
			&query.Category,
			&query.ApplicableSections,
			&query.PenaltiesFinesTenure,
			&query.Advice,
			&query.RequiredDocuments,
			&query.RiskScore,
			&query.Degraded,
			&query.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		queries = append(queries, query)
	}

	return queries, rows.Err()
}
