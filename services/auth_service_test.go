package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio.site/models"
)

func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	user := models.User{Email: email, Name: "Admin", PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestLoginAndAuthenticate(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	seedUser(t, db, "admin@example.com", "admin123")

	session, err := svc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "admin@example.com", session.User.Email)

	user, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	seedUser(t, db, "admin@example.com", "admin123")

	_, err := svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRejectsExpiredSession(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	user := seedUser(t, db, "admin@example.com", "admin123")

	expired := models.Session{
		Token:     "expired-token",
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&expired).Error)

	_, err := svc.Authenticate(ctx, "expired-token")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Expired row was cleaned up during resolution.
	var count int64
	require.NoError(t, db.Model(&models.Session{}).Where("token = ?", "expired-token").Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	seedUser(t, db, "admin@example.com", "admin123")

	session, err := svc.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))

	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
