package repositories

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// ISessionRepository covers login session persistence.
type ISessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}

type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository returns a session repository bound to db.
func NewSessionRepository(db *gorm.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	if session == nil || session.Token == "" {
		return errors.New("session without token cannot be created")
	}
	return r.getDB(ctx).Create(session).Error
}

// FindByToken resolves a cookie token to its session with the owning user
// preloaded. Expired sessions resolve to ErrNotFound and are removed.
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var session models.Session
	err := r.getDB(ctx).Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SessionRepository.FindByToken: DB error", zap.Error(err))
		return nil, err
	}
	if session.Expired() {
		if delErr := r.DeleteByToken(ctx, token); delErr != nil {
			configslog.Log.Warn("expired session cleanup failed", zap.Error(delErr))
		}
		return nil, ErrNotFound
	}
	return &session, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.getDB(ctx).Unscoped().Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes all sessions past their expiry.
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	return r.getDB(ctx).Unscoped().
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&models.Session{}).Error
}

var _ ISessionRepository = (*SessionRepository)(nil)
