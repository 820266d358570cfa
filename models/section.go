package models

import (
	"encoding/json"
	"fmt"
	"sort"

	"portfolio.site/pkg/jsonfield"
)

// SectionType tags the content blocks a page is composed of.
type SectionType string

const (
	SectionHero              SectionType = "hero"
	SectionFeaturedProjects  SectionType = "featured-projects"
	SectionAboutPreview      SectionType = "about-preview"
	SectionSkills            SectionType = "skills"
	SectionExperiencePreview SectionType = "experience-preview"
	SectionBlogs             SectionType = "blogs"
	SectionCTA               SectionType = "cta"
	SectionCustom            SectionType = "custom"
)

// Known reports whether t is a section type this build can render. Unknown
// types are skipped at render time so newer content does not break older code.
func (t SectionType) Known() bool {
	switch t {
	case SectionHero, SectionFeaturedProjects, SectionAboutPreview, SectionSkills,
		SectionExperiencePreview, SectionBlogs, SectionCTA, SectionCustom:
		return true
	}
	return false
}

// Section is one enable/disable-able content block within a page. Data is the
// type-tagged payload; its shape is determined solely by Type and decoded on
// demand through the typed accessors.
type Section struct {
	ID      string          `json:"id"`
	Type    SectionType     `json:"type"`
	Enabled bool            `json:"enabled"`
	Order   int             `json:"order"`
	Data    json.RawMessage `json:"data"`
}

// HeroData is the payload of a hero section.
type HeroData struct {
	Title     string   `json:"title"`
	Subtitles []string `json:"subtitles"`
	CTAText   string   `json:"ctaText"`
	CTALink   string   `json:"ctaLink"`
}

// CTAData is the payload of a call-to-action section.
type CTAData struct {
	Heading    string `json:"heading"`
	Text       string `json:"text"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

// CustomData is the payload of a custom section.
type CustomData struct {
	HTML string `json:"html"`
}

// Hero decodes the section payload as hero data.
func (s Section) Hero() HeroData {
	return jsonfield.Decode(string(s.Data), HeroData{})
}

// CTA decodes the section payload as call-to-action data.
func (s Section) CTA() CTAData {
	return jsonfield.Decode(string(s.Data), CTAData{})
}

// Custom decodes the section payload as custom HTML data.
func (s Section) Custom() CustomData {
	return jsonfield.Decode(string(s.Data), CustomData{})
}

// PageContent is the decoded form of a page's content column.
type PageContent struct {
	Sections []Section `json:"sections"`
}

// EmptyPageContent is the decode fallback for missing or corrupt content.
func EmptyPageContent() PageContent {
	return PageContent{Sections: []Section{}}
}

// Renderable returns the sections to display: enabled ones of a known type,
// stable-sorted by ascending order.
func (c PageContent) Renderable() []Section {
	out := make([]Section, 0, len(c.Sections))
	for _, section := range c.Sections {
		if section.Enabled && section.Type.Known() {
			out = append(out, section)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// FindSection returns the first section with the given id, or nil.
func (c PageContent) FindSection(id string) *Section {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i]
		}
	}
	return nil
}

// Validate checks the invariants an admin save must hold: section ids are
// unique within the page.
func (c PageContent) Validate() error {
	seen := make(map[string]struct{}, len(c.Sections))
	for _, section := range c.Sections {
		if section.ID == "" {
			return fmt.Errorf("section of type %q has no id", section.Type)
		}
		if _, dup := seen[section.ID]; dup {
			return fmt.Errorf("duplicate section id %q", section.ID)
		}
		seen[section.ID] = struct{}{}
	}
	return nil
}
