package repository

import (
	"context"

	"legalaid-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get retrieves a profile by user ID
func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT user_id, full_name, country, theme, updated_at
		FROM profiles
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FullName,
		&profile.Country,
		&profile.Theme,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// Upsert creates or replaces a profile
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, country, theme, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			country = EXCLUDED.country,
			theme = EXCLUDED.theme,
			updated_at = now()
		RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		profile.UserID,
		profile.FullName,
		profile.Country,
		profile.Theme,
	).Scan(&profile.UpdatedAt)
}
