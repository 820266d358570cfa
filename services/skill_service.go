package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

// SkillServiceError is a typed service error.
type SkillServiceError string

func (e SkillServiceError) Error() string { return string(e) }

const (
	ErrSkillNotFound         SkillServiceError = "skill not found"
	ErrSkillNameRequired     SkillServiceError = "skill name is required"
	ErrSkillCategoryRequired SkillServiceError = "skill category is required"
)

// SkillInput carries the fields of a create request.
type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
}

// SkillUpdate carries a partial update; nil fields are left untouched.
type SkillUpdate struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Icon     *string `json:"icon"`
	Order    *int    `json:"order"`
}

// ISkillService is the skill operation surface.
type ISkillService interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
	ListSkillGroups(ctx context.Context) ([]models.SkillGroup, error)
	GetSkillByID(ctx context.Context, id uint) (*models.Skill, error)
	CreateSkill(ctx context.Context, input SkillInput) (*models.Skill, error)
	UpdateSkill(ctx context.Context, id uint, update SkillUpdate) (*models.Skill, error)
	DeleteSkill(ctx context.Context, id uint) error
	CountSkills(ctx context.Context) (int64, error)
}

type SkillService struct {
	repo repositories.ISkillRepository
}

// NewSkillService builds a skill service over db.
func NewSkillService(db *gorm.DB) ISkillService {
	return &SkillService{repo: repositories.NewSkillRepository(db)}
}

func (s *SkillService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.repo.FindAll(ctx)
}

// ListSkillGroups returns skills bucketed by category in display order.
func (s *SkillService) ListSkillGroups(ctx context.Context) ([]models.SkillGroup, error) {
	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.GroupSkillsByCategory(skills), nil
}

func (s *SkillService) GetSkillByID(ctx context.Context, id uint) (*models.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) CreateSkill(ctx context.Context, input SkillInput) (*models.Skill, error) {
	if input.Name == "" {
		return nil, ErrSkillNameRequired
	}
	if input.Category == "" {
		return nil, ErrSkillCategoryRequired
	}

	skill := models.Skill{
		Name:     input.Name,
		Category: input.Category,
		Icon:     input.Icon,
		Order:    input.Order,
	}
	if err := s.repo.Create(ctx, &skill); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("skill created: %q in %q (id %d)", skill.Name, skill.Category, skill.ID)
	return &skill, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, id uint, update SkillUpdate) (*models.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		skill.Name = *update.Name
	}
	if update.Category != nil {
		skill.Category = *update.Category
	}
	if update.Icon != nil {
		skill.Icon = *update.Icon
	}
	if update.Order != nil {
		skill.Order = *update.Order
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSkillNotFound
		}
		return err
	}
	return nil
}

func (s *SkillService) CountSkills(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

var _ ISkillService = (*SkillService)(nil)
