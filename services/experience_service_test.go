package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.site/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestExperienceVisibilityFilterAndOrdering(t *testing.T) {
	svc := NewExperienceService(openTestDB(t))
	ctx := context.Background()

	hidden := false
	_, err := svc.CreateExperience(ctx, ExperienceInput{
		Role: "Hidden", Organization: "Org", StartDate: mustDate(t, "2020-01-01"), Order: 0, Visible: &hidden,
	})
	require.NoError(t, err)
	_, err = svc.CreateExperience(ctx, ExperienceInput{
		Role: "Second", Organization: "Org", StartDate: mustDate(t, "2021-01-01"), Order: 2,
	})
	require.NoError(t, err)
	_, err = svc.CreateExperience(ctx, ExperienceInput{
		Role: "First", Organization: "Org", StartDate: mustDate(t, "2022-01-01"), Order: 1,
	})
	require.NoError(t, err)

	visible, err := svc.ListExperiences(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "First", visible[0].Role)
	assert.Equal(t, "Second", visible[1].Role)

	all, err := svc.ListExperiences(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestExperienceOngoingPeriod(t *testing.T) {
	svc := NewExperienceService(openTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateExperience(ctx, ExperienceInput{
		Role: "Engineer", Organization: "Co", StartDate: mustDate(t, "2023-01-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jan 2023 – Present", created.Period())

	end := mustDate(t, "2024-06-30")
	updated, err := svc.UpdateExperience(ctx, created.ID, ExperienceUpdate{EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, "Jan 2023 – Jun 2024", updated.Period())

	// Clearing the end date marks the position ongoing again.
	reopened, err := svc.UpdateExperience(ctx, created.ID, ExperienceUpdate{ClearEndDate: true})
	require.NoError(t, err)
	assert.Nil(t, reopened.EndDate)
	assert.Equal(t, "Jan 2023 – Present", reopened.Period())
}

func TestExperienceValidation(t *testing.T) {
	svc := NewExperienceService(openTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateExperience(ctx, ExperienceInput{Organization: "Co", StartDate: mustDate(t, "2023-01-01")})
	assert.ErrorIs(t, err, ErrExperienceRoleRequired)

	_, err = svc.CreateExperience(ctx, ExperienceInput{Role: "R", Organization: "Co"})
	assert.ErrorIs(t, err, ErrExperienceStartRequired)

	bad := mustDate(t, "2022-01-01")
	_, err = svc.CreateExperience(ctx, ExperienceInput{
		Role: "R", Organization: "Co", StartDate: mustDate(t, "2023-01-01"), EndDate: &bad,
	})
	assert.ErrorIs(t, err, ErrExperienceEndBeforeStart)

	_, err = svc.CreateExperience(ctx, ExperienceInput{
		Role: "R", Organization: "Co", StartDate: mustDate(t, "2023-01-01"), Type: models.ExperienceType("Freelance"),
	})
	assert.ErrorIs(t, err, ErrExperienceTypeInvalid)
}

func TestExperienceDefaultsToWorkType(t *testing.T) {
	svc := NewExperienceService(openTestDB(t))

	created, err := svc.CreateExperience(context.Background(), ExperienceInput{
		Role: "R", Organization: "Co", StartDate: mustDate(t, "2023-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExperienceWork, created.Type)
	assert.True(t, created.Visible)
}
