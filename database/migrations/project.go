package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateProjectsTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating projects table...")

	if err := db.AutoMigrate(&models.Project{}); err != nil {
		errMsg := "projects table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("projects table migration completed")
	return nil
}
