package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(id string, typ SectionType, enabled bool, order int) Section {
	return Section{ID: id, Type: typ, Enabled: enabled, Order: order, Data: json.RawMessage(`{}`)}
}

func TestRenderableFiltersAndSorts(t *testing.T) {
	content := PageContent{Sections: []Section{
		section("blogs", SectionBlogs, true, 5),
		section("hero", SectionHero, true, 0),
		section("skills", SectionSkills, false, 3),
		section("projects", SectionFeaturedProjects, true, 1),
	}}

	got := content.Renderable()
	require.Len(t, got, 3)
	assert.Equal(t, "hero", got[0].ID)
	assert.Equal(t, "projects", got[1].ID)
	assert.Equal(t, "blogs", got[2].ID)
}

func TestRenderableSkipsUnknownTypes(t *testing.T) {
	content := PageContent{Sections: []Section{
		section("hero", SectionHero, true, 0),
		section("timeline-3d", SectionType("timeline-3d"), true, 1),
	}}

	got := content.Renderable()
	require.Len(t, got, 1)
	assert.Equal(t, SectionHero, got[0].Type)
}

func TestRenderableIsStableForEqualOrder(t *testing.T) {
	content := PageContent{Sections: []Section{
		section("a", SectionCustom, true, 1),
		section("b", SectionCustom, true, 1),
		section("c", SectionCustom, true, 0),
	}}

	got := content.Renderable()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestHeroPayloadDecoding(t *testing.T) {
	s := Section{
		ID:      "hero",
		Type:    SectionHero,
		Enabled: true,
		Data:    json.RawMessage(`{"title":"Welcome","subtitles":["Engineer","Analyst"],"ctaText":"View My Work","ctaLink":"/projects"}`),
	}

	hero := s.Hero()
	assert.Equal(t, "Welcome", hero.Title)
	assert.Equal(t, []string{"Engineer", "Analyst"}, hero.Subtitles)
	assert.Equal(t, "/projects", hero.CTALink)

	// Corrupt payload degrades to the zero hero rather than failing.
	s.Data = json.RawMessage(`{"title":`)
	assert.Equal(t, HeroData{}, s.Hero())
}

func TestValidateRejectsDuplicateSectionIDs(t *testing.T) {
	content := PageContent{Sections: []Section{
		section("hero", SectionHero, true, 0),
		section("hero", SectionCTA, true, 1),
	}}
	assert.Error(t, content.Validate())

	content.Sections[1].ID = "cta"
	assert.NoError(t, content.Validate())
}

func TestPageSectionsFallbackOnCorruptContent(t *testing.T) {
	p := Page{Content: `{"sections": [`}
	assert.Empty(t, p.Sections().Sections)

	p.SetSections(PageContent{Sections: []Section{section("hero", SectionHero, true, 0)}})
	require.Len(t, p.Sections().Sections, 1)
	assert.Equal(t, "hero", p.Sections().Sections[0].ID)
}
