package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio.site/models"
)

func seedHomePage(t *testing.T, db *gorm.DB) models.Page {
	t.Helper()
	page := models.Page{Slug: "home", Title: "Home", Enabled: true}
	page.SetSections(models.PageContent{Sections: []models.Section{
		{ID: "hero", Type: models.SectionHero, Enabled: true, Order: 0, Data: json.RawMessage(`{"title":"Hi","subtitles":["One"]}`)},
		{ID: "blogs", Type: models.SectionBlogs, Enabled: true, Order: 1, Data: json.RawMessage(`{}`)},
	}})
	require.NoError(t, db.Create(&page).Error)
	return page
}

func TestUpdatePageReplacesSections(t *testing.T) {
	db := openTestDB(t)
	svc := NewPageService(db)
	ctx := context.Background()
	seedHomePage(t, db)

	content := models.PageContent{Sections: []models.Section{
		{ID: "hero", Type: models.SectionHero, Enabled: true, Order: 0, Data: json.RawMessage(`{"title":"New","subtitles":["A","B"]}`)},
	}}
	updated, err := svc.UpdatePage(ctx, "home", PageUpdate{Content: &content})
	require.NoError(t, err)

	sections := updated.Sections().Sections
	require.Len(t, sections, 1)
	assert.Equal(t, "New", sections[0].Hero().Title)
	assert.Equal(t, []string{"A", "B"}, sections[0].Hero().Subtitles)
}

func TestUpdatePageRejectsDuplicateSectionIDs(t *testing.T) {
	db := openTestDB(t)
	svc := NewPageService(db)
	seedHomePage(t, db)

	content := models.PageContent{Sections: []models.Section{
		{ID: "hero", Type: models.SectionHero, Enabled: true, Order: 0, Data: json.RawMessage(`{}`)},
		{ID: "hero", Type: models.SectionCTA, Enabled: true, Order: 1, Data: json.RawMessage(`{}`)},
	}}
	_, err := svc.UpdatePage(context.Background(), "home", PageUpdate{Content: &content})
	assert.ErrorIs(t, err, ErrPageInvalidContent)
}

func TestUpdatePagePartialFieldsOnly(t *testing.T) {
	db := openTestDB(t)
	svc := NewPageService(db)
	ctx := context.Background()
	seedHomePage(t, db)

	title := "Renamed"
	updated, err := svc.UpdatePage(ctx, "home", PageUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	// Sections untouched by a title-only update.
	assert.Len(t, updated.Sections().Sections, 2)
}

func TestGetPageBySlugNotFound(t *testing.T) {
	svc := NewPageService(openTestDB(t))
	_, err := svc.GetPageBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPageNotFound)
}
