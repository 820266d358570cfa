package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// ISkillRepository covers skill persistence.
type ISkillRepository interface {
	FindAll(ctx context.Context) ([]models.Skill, error)
	FindByID(ctx context.Context, id uint) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type SkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a skill repository bound to db.
func NewSkillRepository(db *gorm.DB) ISkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll lists skills by category ascending, then sort order within the
// category. This is the order the grouped skills display consumes.
func (r *SkillRepository) FindAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.getDB(ctx).
		Order("category ASC").
		Order("sort_order ASC").
		Find(&skills).Error
	if err != nil {
		configslog.Log.Error("SkillRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return skills, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.getDB(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SkillRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.getDB(ctx).Create(skill).Error
}

func (r *SkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	if skill == nil || skill.ID == 0 {
		return errors.New("skill to update is not persisted")
	}
	return r.getDB(ctx).Save(skill).Error
}

func (r *SkillRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Skill{}, id)
	if result.Error != nil {
		configslog.Log.Error("SkillRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SkillRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Skill{}).Count(&count).Error
	return count, err
}

var _ ISkillRepository = (*SkillRepository)(nil)
