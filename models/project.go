package models

import "portfolio.site/pkg/jsonfield"

// Project is a portfolio case study. Overview is the only required narrative
// field; problem/process/solution/result are optional. TechStack and
// ImageGallery are stored JSON-encoded; the first gallery entry is the cover.
type Project struct {
	BaseModel
	Title        string `gorm:"type:varchar(255);not null" json:"title"`
	Slug         string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Overview     string `gorm:"type:text;not null" json:"overview"`
	Problem      string `gorm:"type:text" json:"problem,omitempty"`
	Process      string `gorm:"type:text" json:"process,omitempty"`
	Solution     string `gorm:"type:text" json:"solution,omitempty"`
	Result       string `gorm:"type:text" json:"result,omitempty"`
	TechStack    string `gorm:"type:text" json:"-"`
	ImageGallery string `gorm:"type:text" json:"-"`
	Featured     bool   `gorm:"default:false;index" json:"featured"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`
	SeoTitle     string `gorm:"type:varchar(255)" json:"seoTitle,omitempty"`
	SeoDesc      string `gorm:"type:text" json:"seoDesc,omitempty"`
}

// TechStackList decodes the tech stack column.
func (p Project) TechStackList() []string {
	return jsonfield.Decode(p.TechStack, []string{})
}

// SetTechStack encodes the tech stack into the storage column.
func (p *Project) SetTechStack(stack []string) {
	if stack == nil {
		stack = []string{}
	}
	p.TechStack = jsonfield.Encode(stack)
}

// Gallery decodes the image gallery column.
func (p Project) Gallery() []string {
	return jsonfield.Decode(p.ImageGallery, []string{})
}

// SetGallery encodes the image gallery into the storage column.
func (p *Project) SetGallery(gallery []string) {
	if gallery == nil {
		gallery = []string{}
	}
	p.ImageGallery = jsonfield.Encode(gallery)
}

// CoverImage returns the first gallery image, or "" when the gallery is empty.
func (p Project) CoverImage() string {
	if gallery := p.Gallery(); len(gallery) > 0 {
		return gallery[0]
	}
	return ""
}
