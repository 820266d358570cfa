package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateSessionsTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating sessions table...")

	if err := db.AutoMigrate(&models.Session{}); err != nil {
		errMsg := "sessions table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("sessions table migration completed")
	return nil
}
