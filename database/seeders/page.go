package seeders

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/pkg/jsonfield"
)

func heroSectionData() json.RawMessage {
	return json.RawMessage(jsonfield.Encode(models.HeroData{
		Title: "Welcome to My Portfolio",
		Subtitles: []string{
			"Geomatics Engineer",
			"Software Engineer",
			"GIS Analyst",
			"Remote Sensing Researcher",
		},
		CTAText: "View My Work",
		CTALink: "/projects",
	}))
}

// SeedHomePage creates the home page with its default section list. An
// existing home page is left alone.
func SeedHomePage(db *gorm.DB) error {
	var existing models.Page
	result := db.Where("slug = ?", "home").First(&existing)
	if result.Error == nil {
		configslog.SLog.Debug("home page already exists, skipping")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("home page lookup failed", zap.Error(result.Error))
		return result.Error
	}

	empty := json.RawMessage(`{}`)
	content := models.PageContent{Sections: []models.Section{
		{ID: "hero", Type: models.SectionHero, Enabled: true, Order: 0, Data: heroSectionData()},
		{ID: "featured-projects", Type: models.SectionFeaturedProjects, Enabled: true, Order: 1, Data: empty},
		{ID: "about-preview", Type: models.SectionAboutPreview, Enabled: true, Order: 2, Data: empty},
		{ID: "skills", Type: models.SectionSkills, Enabled: true, Order: 3, Data: empty},
		{ID: "experience-preview", Type: models.SectionExperiencePreview, Enabled: true, Order: 4, Data: empty},
		{ID: "blogs", Type: models.SectionBlogs, Enabled: true, Order: 5, Data: empty},
	}}

	page := models.Page{
		Slug:    "home",
		Title:   "Home",
		Enabled: true,
		Order:   0,
	}
	page.SetSections(content)

	if err := db.Create(&page).Error; err != nil {
		configslog.Log.Error("home page creation failed", zap.Error(err))
		return err
	}
	configslog.SLog.Info("home page seeded")
	return nil
}
