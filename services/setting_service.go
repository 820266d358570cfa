package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/pkg/jsonfield"
	"portfolio.site/repositories"
)

// SettingsUpdate carries a partial settings update; nil fields are left
// untouched in storage (no implicit reset to defaults).
type SettingsUpdate struct {
	SiteName        *string             `json:"siteName"`
	Logo            *string             `json:"logo"`
	Favicon         *string             `json:"favicon"`
	PrimaryColor    *string             `json:"primaryColor"`
	AccentColor     *string             `json:"accentColor"`
	BackgroundColor *string             `json:"backgroundColor"`
	FooterText      *string             `json:"footerText"`
	SocialLinks     *models.SocialLinks `json:"socialLinks"`
	DefaultSeoTitle *string             `json:"defaultSeoTitle"`
	DefaultSeoDesc  *string             `json:"defaultSeoDesc"`
}

// ISettingService resolves and updates the global settings.
type ISettingService interface {
	GetSettings(ctx context.Context) models.GlobalSettings
	UpdateSettings(ctx context.Context, update SettingsUpdate) error
}

type SettingService struct {
	repo repositories.ISettingRepository
}

// NewSettingService builds a setting service over db.
func NewSettingService(db *gorm.DB) ISettingService {
	return &SettingService{repo: repositories.NewSettingRepository(db)}
}

// GetSettings merges the persisted key/value rows with the hardcoded defaults
// into a fully-populated object. Every field resolves independently, so a
// single corrupt value degrades to its default without affecting the rest.
// When the store is unreachable the full default object is returned; page
// rendering must never fail because settings are unavailable.
func (s *SettingService) GetSettings(ctx context.Context) models.GlobalSettings {
	defaults := models.DefaultGlobalSettings()

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		configslog.Log.Warn("settings unavailable, serving defaults", zap.Error(err))
		return defaults
	}

	byKey := make(map[string]string, len(rows))
	for _, row := range rows {
		byKey[row.Key] = row.Value
	}

	return models.GlobalSettings{
		SiteName:        jsonfield.Decode(byKey[models.SettingKeySiteName], defaults.SiteName),
		Logo:            jsonfield.Decode(byKey[models.SettingKeyLogo], defaults.Logo),
		Favicon:         jsonfield.Decode(byKey[models.SettingKeyFavicon], defaults.Favicon),
		PrimaryColor:    jsonfield.Decode(byKey[models.SettingKeyPrimaryColor], defaults.PrimaryColor),
		AccentColor:     jsonfield.Decode(byKey[models.SettingKeyAccentColor], defaults.AccentColor),
		BackgroundColor: jsonfield.Decode(byKey[models.SettingKeyBackgroundColor], defaults.BackgroundColor),
		FooterText:      jsonfield.Decode(byKey[models.SettingKeyFooterText], defaults.FooterText),
		SocialLinks:     jsonfield.Decode(byKey[models.SettingKeySocialLinks], defaults.SocialLinks),
		DefaultSeoTitle: jsonfield.Decode(byKey[models.SettingKeyDefaultSeoTitle], defaults.DefaultSeoTitle),
		DefaultSeoDesc:  jsonfield.Decode(byKey[models.SettingKeyDefaultSeoDesc], defaults.DefaultSeoDesc),
	}
}

// UpdateSettings upserts only the provided fields under their keys. Unknown
// keys never reach storage and omitted fields keep their previous values.
func (s *SettingService) UpdateSettings(ctx context.Context, update SettingsUpdate) error {
	if update.SiteName != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeySiteName, jsonfield.Encode(*update.SiteName)); err != nil {
			return err
		}
	}
	if update.Logo != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyLogo, jsonfield.Encode(*update.Logo)); err != nil {
			return err
		}
	}
	if update.Favicon != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyFavicon, jsonfield.Encode(*update.Favicon)); err != nil {
			return err
		}
	}
	if update.PrimaryColor != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyPrimaryColor, jsonfield.Encode(*update.PrimaryColor)); err != nil {
			return err
		}
	}
	if update.AccentColor != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyAccentColor, jsonfield.Encode(*update.AccentColor)); err != nil {
			return err
		}
	}
	if update.BackgroundColor != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyBackgroundColor, jsonfield.Encode(*update.BackgroundColor)); err != nil {
			return err
		}
	}
	if update.FooterText != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyFooterText, jsonfield.Encode(*update.FooterText)); err != nil {
			return err
		}
	}
	if update.SocialLinks != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeySocialLinks, jsonfield.Encode(*update.SocialLinks)); err != nil {
			return err
		}
	}
	if update.DefaultSeoTitle != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyDefaultSeoTitle, jsonfield.Encode(*update.DefaultSeoTitle)); err != nil {
			return err
		}
	}
	if update.DefaultSeoDesc != nil {
		if err := s.repo.Upsert(ctx, models.SettingKeyDefaultSeoDesc, jsonfield.Encode(*update.DefaultSeoDesc)); err != nil {
			return err
		}
	}
	return nil
}

var _ ISettingService = (*SettingService)(nil)
