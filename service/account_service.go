package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"legalaid-backend/models"
	"legalaid-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles user accounts, sessions, profiles, and the
// append-only query history.
type AccountService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	profileRepo *repository.ProfileRepository
	queryRepo   *repository.LegalQueryRepository
}

// AccountServiceOption is a functional option for AccountService
type AccountServiceOption func(*AccountService)

// AccountWithUserRepository sets the user repository
func AccountWithUserRepository(repo *repository.UserRepository) AccountServiceOption {
	return func(s *AccountService) {
		s.userRepo = repo
	}
}

// AccountWithSessionRepository sets the session repository
func AccountWithSessionRepository(repo *repository.SessionRepository) AccountServiceOption {
	return func(s *AccountService) {
		s.sessionRepo = repo
	}
}

// AccountWithProfileRepository sets the profile repository
func AccountWithProfileRepository(repo *repository.ProfileRepository) AccountServiceOption {
	return func(s *AccountService) {
		s.profileRepo = repo
	}
}

// AccountWithQueryRepository sets the query history repository
func AccountWithQueryRepository(repo *repository.LegalQueryRepository) AccountServiceOption {
	return func(s *AccountService) {
		s.queryRepo = repo
	}
}

// NewAccountService creates a new account service
func NewAccountService(opts ...AccountServiceOption) *AccountService {
	s := &AccountService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionInvalid     = errors.New("session is invalid or expired")
)

const sessionTTL = 7 * 24 * time.Hour

// RegisterRequest represents a request to register an account
type RegisterRequest struct {
	Email    string
	Password string
	FullName string
}

// RegisterResult represents the result of registering an account
type RegisterResult struct {
	User    *models.User
	Session *models.Session
}

// Register creates a user with a bcrypt-hashed password, an empty profile,
// and an initial session.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if s.userRepo == nil || s.sessionRepo == nil {
		return nil, errors.New("account repositories not set")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.profileRepo != nil {
		profile := &models.Profile{
			UserID:   user.ID,
			FullName: req.FullName,
		}
		if err := s.profileRepo.Upsert(ctx, profile); err != nil {
			return nil, err
		}
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &RegisterResult{User: user, Session: session}, nil
}

// LoginRequest represents a request to log in
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult represents the result of logging in
type LoginResult struct {
	User    *models.User
	Session *models.Session
}

// Login verifies credentials and issues a fresh session token.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if s.userRepo == nil || s.sessionRepo == nil {
		return nil, errors.New("account repositories not set")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Session: session}, nil
}

func (s *AccountService) createSession(ctx context.Context, userID uuid.UUID) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Authenticate resolves a bearer token to a user ID, rejecting unknown or
// expired sessions.
func (s *AccountService) Authenticate(ctx context.Context, token string) (uuid.UUID, error) {
	if s.sessionRepo == nil {
		return uuid.Nil, errors.New("session repository not set")
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return uuid.Nil, ErrSessionInvalid
	}
	if time.Now().After(session.ExpiresAt) {
		return uuid.Nil, ErrSessionInvalid
	}
	return session.UserID, nil
}

// GetProfile returns the user's profile, or an empty profile when none has
// been saved yet.
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profile repository not set")
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.Profile{UserID: userID}, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfileRequest represents a request to update a profile
type UpdateProfileRequest struct {
	UserID   uuid.UUID
	FullName string
	Country  string
	Theme    string
}

// UpdateProfile upserts the user's profile.
func (s *AccountService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profile repository not set")
	}

	profile := &models.Profile{
		UserID:   req.UserID,
		FullName: req.FullName,
		Country:  req.Country,
		Theme:    req.Theme,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// QueryHistory lists the user's past queries, newest first. The history is
// append-only; there is no update or delete path.
func (s *AccountService) QueryHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*models.LegalQuery, error) {
	if s.queryRepo == nil {
		return nil, errors.New("query repository not set")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.queryRepo.ListByUserID(ctx, userID, limit)
}
