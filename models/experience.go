package models

import (
	"time"

	"portfolio.site/pkg/jsonfield"
)

// ExperienceType categorizes an experience entry.
type ExperienceType string

const (
	ExperienceWork       ExperienceType = "Work"
	ExperienceResearch   ExperienceType = "Research"
	ExperienceInternship ExperienceType = "Internship"
	ExperienceVolunteer  ExperienceType = "Volunteer"
)

// Valid reports whether t is one of the recognized experience types.
func (t ExperienceType) Valid() bool {
	switch t {
	case ExperienceWork, ExperienceResearch, ExperienceInternship, ExperienceVolunteer:
		return true
	}
	return false
}

// Experience is one timeline entry. A nil EndDate means the position is
// ongoing. Description bullets are stored JSON-encoded.
type Experience struct {
	BaseModel
	Role         string         `gorm:"type:varchar(255);not null" json:"role"`
	Organization string         `gorm:"type:varchar(255);not null" json:"organization"`
	Location     string         `gorm:"type:varchar(255)" json:"location,omitempty"`
	StartDate    time.Time      `gorm:"not null" json:"startDate"`
	EndDate      *time.Time     `json:"endDate,omitempty"`
	Description  string         `gorm:"type:text" json:"-"`
	Type         ExperienceType `gorm:"type:varchar(20);not null;default:'Work'" json:"type"`
	Order        int            `gorm:"column:sort_order;default:0" json:"order"`
	Visible      bool           `gorm:"default:true;index" json:"visible"`
}

// Bullets decodes the description column.
func (e Experience) Bullets() []string {
	return jsonfield.Decode(e.Description, []string{})
}

// SetBullets encodes the description bullets into the storage column.
func (e *Experience) SetBullets(bullets []string) {
	if bullets == nil {
		bullets = []string{}
	}
	e.Description = jsonfield.Encode(bullets)
}

// Period formats the entry's time span for display, rendering an open end
// date as "Present".
func (e Experience) Period() string {
	return FormatPeriod(e.StartDate, e.EndDate)
}

// FormatPeriod renders "Jan 2023 – Jun 2024", with "Present" for a nil end.
func FormatPeriod(start time.Time, end *time.Time) string {
	const layout = "Jan 2006"
	endLabel := "Present"
	if end != nil {
		endLabel = end.Format(layout)
	}
	return start.Format(layout) + " – " + endLabel
}
