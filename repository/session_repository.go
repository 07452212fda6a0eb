package repository

import (
	"context"

	"legalaid-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	return r.db.QueryRow(ctx, query, session.Token, session.UserID, session.ExpiresAt).
		Scan(&session.CreatedAt)
}

// GetByToken retrieves a session by token
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = $1`

	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteExpired removes sessions past their expiry
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	return err
}
