package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.site/models"
)

func TestGetSettingsOnEmptyStoreReturnsDefaults(t *testing.T) {
	svc := NewSettingService(openTestDB(t))

	got := svc.GetSettings(context.Background())
	assert.Equal(t, "Portfolio", got.SiteName)
	assert.Equal(t, "#3b82f6", got.PrimaryColor)
	assert.Equal(t, "#8b5cf6", got.AccentColor)
	assert.Equal(t, "#ffffff", got.BackgroundColor)
	assert.Equal(t, "© 2024 Portfolio. All rights reserved.", got.FooterText)
	assert.Equal(t, models.SocialLinks{}, got.SocialLinks)
}

func TestPartialUpdateLeavesOtherKeysUntouched(t *testing.T) {
	svc := NewSettingService(openTestDB(t))
	ctx := context.Background()

	name := "My Site"
	primary := "#000000"
	require.NoError(t, svc.UpdateSettings(ctx, SettingsUpdate{SiteName: &name, PrimaryColor: &primary}))

	// Second update only touches the footer.
	footer := "custom footer"
	require.NoError(t, svc.UpdateSettings(ctx, SettingsUpdate{FooterText: &footer}))

	got := svc.GetSettings(ctx)
	assert.Equal(t, "My Site", got.SiteName)
	assert.Equal(t, "#000000", got.PrimaryColor)
	assert.Equal(t, "custom footer", got.FooterText)
	// Never-written keys still resolve to defaults.
	assert.Equal(t, "#8b5cf6", got.AccentColor)
}

func TestUpdateSettingsUpsertsExistingKey(t *testing.T) {
	svc := NewSettingService(openTestDB(t))
	ctx := context.Background()

	first := "First"
	second := "Second"
	require.NoError(t, svc.UpdateSettings(ctx, SettingsUpdate{SiteName: &first}))
	require.NoError(t, svc.UpdateSettings(ctx, SettingsUpdate{SiteName: &second}))

	assert.Equal(t, "Second", svc.GetSettings(ctx).SiteName)
}

func TestCorruptSettingValueDegradesToDefault(t *testing.T) {
	db := openTestDB(t)
	svc := NewSettingService(db)

	require.NoError(t, db.Create(&models.Setting{Key: models.SettingKeySocialLinks, Value: `{"github":`}).Error)

	got := svc.GetSettings(context.Background())
	assert.Equal(t, models.SocialLinks{}, got.SocialLinks)
	assert.Equal(t, "Portfolio", got.SiteName)
}

func TestSocialLinksRoundTrip(t *testing.T) {
	svc := NewSettingService(openTestDB(t))
	ctx := context.Background()

	links := models.SocialLinks{GitHub: "https://github.com/me", Email: "me@example.com"}
	require.NoError(t, svc.UpdateSettings(ctx, SettingsUpdate{SocialLinks: &links}))

	assert.Equal(t, links, svc.GetSettings(ctx).SocialLinks)
}
