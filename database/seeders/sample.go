package seeders

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// SeedSampleContent creates one example of each public content type so a
// fresh install has something to render. It only runs against empty tables.
func SeedSampleContent(db *gorm.DB) error {
	if err := seedSampleExperience(db); err != nil {
		return err
	}
	if err := seedSampleProject(db); err != nil {
		return err
	}
	return seedSampleSkills(db)
}

func seedSampleExperience(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Experience{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	experience := models.Experience{
		Role:         "Software Engineer",
		Organization: "Example Company",
		Location:     "Remote",
		StartDate:    time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		Type:         models.ExperienceWork,
		Order:        0,
		Visible:      true,
	}
	experience.SetBullets([]string{
		"Developed full-stack web applications",
		"Collaborated with cross-functional teams",
		"Implemented best practices and code reviews",
	})

	if err := db.Create(&experience).Error; err != nil {
		configslog.Log.Error("sample experience creation failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("sample experience %q seeded", experience.Role)
	return nil
}

func seedSampleProject(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	project := models.Project{
		Title:    "Sample Project",
		Slug:     "sample-project",
		Overview: "This is a sample project to demonstrate the portfolio system.",
		Problem:  "A problem that needed solving.",
		Solution: "An elegant solution was implemented.",
		Result:   "Great results were achieved.",
		Featured: true,
		Order:    0,
	}
	project.SetTechStack([]string{"React", "Next.js", "TypeScript"})
	project.SetGallery(nil)

	if err := db.Create(&project).Error; err != nil {
		configslog.Log.Error("sample project creation failed", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("sample project %q seeded", project.Title)
	return nil
}

func seedSampleSkills(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	skills := []models.Skill{
		{Name: "React", Category: "Frontend", Order: 0},
		{Name: "Next.js", Category: "Frontend", Order: 1},
		{Name: "TypeScript", Category: "Frontend", Order: 2},
		{Name: "Node.js", Category: "Backend", Order: 0},
		{Name: "PostgreSQL", Category: "Database", Order: 0},
	}
	for i := range skills {
		if err := db.Create(&skills[i]).Error; err != nil {
			configslog.Log.Error("sample skill creation failed",
				zap.String("skill", skills[i].Name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Infof("%d sample skills seeded", len(skills))
	return nil
}
