package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/pkg/jsonfield"
)

// SeedDefaultSettings writes the default value under every settings key that
// has no row yet. Existing rows are never overwritten.
func SeedDefaultSettings(db *gorm.DB) error {
	defaults := models.DefaultGlobalSettings()

	rows := []models.Setting{
		{Key: models.SettingKeySiteName, Value: jsonfield.Encode(defaults.SiteName)},
		{Key: models.SettingKeyPrimaryColor, Value: jsonfield.Encode(defaults.PrimaryColor)},
		{Key: models.SettingKeyAccentColor, Value: jsonfield.Encode(defaults.AccentColor)},
		{Key: models.SettingKeyBackgroundColor, Value: jsonfield.Encode(defaults.BackgroundColor)},
		{Key: models.SettingKeyFooterText, Value: jsonfield.Encode(defaults.FooterText)},
		{Key: models.SettingKeySocialLinks, Value: jsonfield.Encode(defaults.SocialLinks)},
	}

	for _, row := range rows {
		var existing models.Setting
		result := db.Where("key = ?", row.Key).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("setting lookup failed",
				zap.String("key", row.Key), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&row).Error; err != nil {
			configslog.Log.Error("setting creation failed",
				zap.String("key", row.Key), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("setting %q seeded", row.Key)
	}
	return nil
}
