package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

// ExperienceServiceError is a typed service error.
type ExperienceServiceError string

func (e ExperienceServiceError) Error() string { return string(e) }

const (
	ErrExperienceNotFound       ExperienceServiceError = "experience not found"
	ErrExperienceRoleRequired   ExperienceServiceError = "experience role is required"
	ErrExperienceOrgRequired    ExperienceServiceError = "experience organization is required"
	ErrExperienceStartRequired  ExperienceServiceError = "experience start date is required"
	ErrExperienceTypeInvalid    ExperienceServiceError = "experience type is not recognized"
	ErrExperienceEndBeforeStart ExperienceServiceError = "experience end date precedes start date"
)

// ExperienceInput carries the fields of a create request.
type ExperienceInput struct {
	Role         string                `json:"role"`
	Organization string                `json:"organization"`
	Location     string                `json:"location"`
	StartDate    time.Time             `json:"startDate"`
	EndDate      *time.Time            `json:"endDate"`
	Description  []string              `json:"description"`
	Type         models.ExperienceType `json:"type"`
	Order        int                   `json:"order"`
	Visible      *bool                 `json:"visible"`
}

// ExperienceUpdate carries a partial update; nil fields are left untouched.
// ClearEndDate distinguishes "leave the end date alone" from "mark ongoing".
type ExperienceUpdate struct {
	Role         *string                `json:"role"`
	Organization *string                `json:"organization"`
	Location     *string                `json:"location"`
	StartDate    *time.Time             `json:"startDate"`
	EndDate      *time.Time             `json:"endDate"`
	ClearEndDate bool                   `json:"clearEndDate"`
	Description  *[]string              `json:"description"`
	Type         *models.ExperienceType `json:"type"`
	Order        *int                   `json:"order"`
	Visible      *bool                  `json:"visible"`
}

// IExperienceService is the experience operation surface.
type IExperienceService interface {
	ListExperiences(ctx context.Context, visibleOnly bool) ([]models.Experience, error)
	GetExperienceByID(ctx context.Context, id uint) (*models.Experience, error)
	CreateExperience(ctx context.Context, input ExperienceInput) (*models.Experience, error)
	UpdateExperience(ctx context.Context, id uint, update ExperienceUpdate) (*models.Experience, error)
	DeleteExperience(ctx context.Context, id uint) error
	CountExperiences(ctx context.Context) (int64, error)
}

type ExperienceService struct {
	repo repositories.IExperienceRepository
}

// NewExperienceService builds an experience service over db.
func NewExperienceService(db *gorm.DB) IExperienceService {
	return &ExperienceService{repo: repositories.NewExperienceRepository(db)}
}

func (s *ExperienceService) ListExperiences(ctx context.Context, visibleOnly bool) ([]models.Experience, error) {
	return s.repo.FindAll(ctx, visibleOnly)
}

func (s *ExperienceService) GetExperienceByID(ctx context.Context, id uint) (*models.Experience, error) {
	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return experience, nil
}

func validateExperienceDates(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return ErrExperienceStartRequired
	}
	if end != nil && end.Before(start) {
		return ErrExperienceEndBeforeStart
	}
	return nil
}

func (s *ExperienceService) CreateExperience(ctx context.Context, input ExperienceInput) (*models.Experience, error) {
	if input.Role == "" {
		return nil, ErrExperienceRoleRequired
	}
	if input.Organization == "" {
		return nil, ErrExperienceOrgRequired
	}
	if err := validateExperienceDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	if input.Type == "" {
		input.Type = models.ExperienceWork
	}
	if !input.Type.Valid() {
		return nil, ErrExperienceTypeInvalid
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}

	experience := models.Experience{
		Role:         input.Role,
		Organization: input.Organization,
		Location:     input.Location,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Type:         input.Type,
		Order:        input.Order,
		Visible:      visible,
	}
	experience.SetBullets(input.Description)

	if err := s.repo.Create(ctx, &experience); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("experience created: %s at %s (id %d)", experience.Role, experience.Organization, experience.ID)
	return &experience, nil
}

func (s *ExperienceService) UpdateExperience(ctx context.Context, id uint, update ExperienceUpdate) (*models.Experience, error) {
	experience, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	if update.Role != nil {
		experience.Role = *update.Role
	}
	if update.Organization != nil {
		experience.Organization = *update.Organization
	}
	if update.Location != nil {
		experience.Location = *update.Location
	}
	if update.StartDate != nil {
		experience.StartDate = *update.StartDate
	}
	if update.ClearEndDate {
		experience.EndDate = nil
	} else if update.EndDate != nil {
		experience.EndDate = update.EndDate
	}
	if err := validateExperienceDates(experience.StartDate, experience.EndDate); err != nil {
		return nil, err
	}
	if update.Description != nil {
		experience.SetBullets(*update.Description)
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, ErrExperienceTypeInvalid
		}
		experience.Type = *update.Type
	}
	if update.Order != nil {
		experience.Order = *update.Order
	}
	if update.Visible != nil {
		experience.Visible = *update.Visible
	}

	if err := s.repo.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (s *ExperienceService) DeleteExperience(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrExperienceNotFound
		}
		return err
	}
	configslog.SLog.Infof("experience deleted: id %d", id)
	return nil
}

func (s *ExperienceService) CountExperiences(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

var _ IExperienceService = (*ExperienceService)(nil)
