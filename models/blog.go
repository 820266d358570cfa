package models

import (
	"time"

	"portfolio.site/pkg/jsonfield"
)

// Blog is a post. Tags are stored JSON-encoded in a text column. PublishedAt
// is set exactly once, on the first unpublished→published transition, and
// preserved afterwards.
type Blog struct {
	BaseModel
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Excerpt       string     `gorm:"type:text" json:"excerpt,omitempty"`
	FeaturedImage string     `gorm:"type:varchar(500)" json:"featuredImage,omitempty"`
	Tags          string     `gorm:"type:text" json:"-"`
	Published     bool       `gorm:"default:false;index" json:"published"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	SeoTitle      string     `gorm:"type:varchar(255)" json:"seoTitle,omitempty"`
	SeoDesc       string     `gorm:"type:text" json:"seoDesc,omitempty"`
}

// TagList decodes the tags column, falling back to an empty list.
func (b Blog) TagList() []string {
	return jsonfield.Decode(b.Tags, []string{})
}

// SetTags encodes tags into the storage column.
func (b *Blog) SetTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	b.Tags = jsonfield.Encode(tags)
}
