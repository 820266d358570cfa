package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

// AuthServiceError is a typed service error.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "invalid email or password"
	ErrUnauthenticated    AuthServiceError = "not authenticated"
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 24 * time.Hour

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "auth-session"

// IAuthService handles login, logout and session resolution.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type AuthService struct {
	users    repositories.IUserRepository
	sessions repositories.ISessionRepository
}

// NewAuthService builds an auth service over db.
func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{
		users:    repositories.NewUserRepository(db),
		sessions: repositories.NewSessionRepository(db),
	}
}

// Login verifies the credentials and opens a new session. The returned
// session carries the opaque token to set as the cookie value.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(SessionTTL),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, err
	}
	session.User = *user

	configslog.SLog.Infof("admin login: %s", user.Email)
	return &session, nil
}

// Authenticate resolves a cookie token to its user. Missing, unknown and
// expired tokens all resolve to ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &session.User, nil
}

// Logout invalidates the session behind token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, token)
}

// HashPassword produces the bcrypt hash stored for an admin account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var _ IAuthService = (*AuthService)(nil)
