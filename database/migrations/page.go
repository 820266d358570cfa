package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigratePagesTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating pages table...")

	if err := db.AutoMigrate(&models.Page{}); err != nil {
		errMsg := "pages table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("pages table migration completed")
	return nil
}
