package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSkillsByCategoryPreservesOrder(t *testing.T) {
	// Input already sorted the way the repository returns it.
	skills := []Skill{
		{Name: "PostgreSQL", Category: "Backend", Order: 0},
		{Name: "Go", Category: "Backend", Order: 1},
		{Name: "React", Category: "Frontend", Order: 0},
	}

	groups := GroupSkillsByCategory(skills)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].Category)
	assert.Equal(t, []string{"PostgreSQL", "Go"}, []string{groups[0].Skills[0].Name, groups[0].Skills[1].Name})
	assert.Equal(t, "Frontend", groups[1].Category)
}

func TestGroupSkillsByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupSkillsByCategory(nil))
}
