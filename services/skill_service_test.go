package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillGroupsOrderedByCategoryThenOrder(t *testing.T) {
	svc := NewSkillService(openTestDB(t))
	ctx := context.Background()

	for _, input := range []SkillInput{
		{Name: "React", Category: "Frontend", Order: 0},
		{Name: "Go", Category: "Backend", Order: 1},
		{Name: "PostgreSQL", Category: "Backend", Order: 0},
	} {
		_, err := svc.CreateSkill(ctx, input)
		require.NoError(t, err)
	}

	groups, err := svc.ListSkillGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Backend", groups[0].Category)
	require.Len(t, groups[0].Skills, 2)
	assert.Equal(t, "PostgreSQL", groups[0].Skills[0].Name)
	assert.Equal(t, "Go", groups[0].Skills[1].Name)

	assert.Equal(t, "Frontend", groups[1].Category)
}

func TestSkillValidation(t *testing.T) {
	svc := NewSkillService(openTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateSkill(ctx, SkillInput{Category: "Backend"})
	assert.ErrorIs(t, err, ErrSkillNameRequired)

	_, err = svc.CreateSkill(ctx, SkillInput{Name: "Go"})
	assert.ErrorIs(t, err, ErrSkillCategoryRequired)
}
