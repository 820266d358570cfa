package migrations

import (
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

func MigrateSkillsTable(db *gorm.DB) error {
	configslog.SLog.Info("migrating skills table...")

	if err := db.AutoMigrate(&models.Skill{}); err != nil {
		errMsg := "skills table migration failed: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("skills table migration completed")
	return nil
}
