package seeders

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio.site/configs"
	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// SeedAdminUser makes sure the back-office account exists. Credentials come
// from ADMIN_EMAIL / ADMIN_PASSWORD; an existing account is left untouched so
// a changed password is never silently reverted.
func SeedAdminUser(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_EMAIL", "admin@example.com")
	password := configs.GetEnv("ADMIN_PASSWORD", "admin123")
	name := configs.GetEnv("ADMIN_NAME", "Admin User")

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("admin user %q already exists, skipping", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("admin user lookup failed", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("admin password hash failed", zap.Error(err))
		return err
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("admin user creation failed", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("admin user %q created (ID: %d)", user.Email, user.ID)
	return nil
}
