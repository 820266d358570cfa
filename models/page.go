package models

import "portfolio.site/pkg/jsonfield"

// Page is a public page whose body is an ordered list of sections, stored
// JSON-encoded in Content. Pages are created by seeding or the admin area and
// updated in place; there is no delete flow.
type Page struct {
	BaseModel
	Slug     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Content  string `gorm:"type:text" json:"-"`
	SeoTitle string `gorm:"type:varchar(255)" json:"seoTitle,omitempty"`
	SeoDesc  string `gorm:"type:text" json:"seoDesc,omitempty"`
	Enabled  bool   `gorm:"default:true" json:"enabled"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
}

// Sections decodes the content column, falling back to an empty section list.
func (p Page) Sections() PageContent {
	return jsonfield.Decode(p.Content, EmptyPageContent())
}

// SetSections encodes content back into the storage column.
func (p *Page) SetSections(content PageContent) {
	p.Content = jsonfield.Encode(content)
}
