package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating users table...")

	if err := db.AutoMigrate(&models.User{}); err != nil {
		errMsg := "users table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("users table migration completed")
	return nil
}
