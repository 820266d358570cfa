package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateExperiencesTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating experiences table...")

	if err := db.AutoMigrate(&models.Experience{}); err != nil {
		errMsg := "experiences table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("experiences table migration completed")
	return nil
}
