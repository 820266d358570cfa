package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateSettingsTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating settings table...")

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		errMsg := "settings table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("settings table migration completed")
	return nil
}
