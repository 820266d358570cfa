package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateBlogsTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating blogs table...")

	if err := db.AutoMigrate(&models.Blog{}); err != nil {
		errMsg := "blogs table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("blogs table migration completed")
	return nil
}
