package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// IExperienceRepository covers experience persistence.
type IExperienceRepository interface {
	FindAll(ctx context.Context, visibleOnly bool) ([]models.Experience, error)
	FindByID(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, experience *models.Experience) error
	Update(ctx context.Context, experience *models.Experience) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository returns an experience repository bound to db.
func NewExperienceRepository(db *gorm.DB) IExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll lists entries by ascending sort order; public surfaces pass
// visibleOnly to hide drafts.
func (r *ExperienceRepository) FindAll(ctx context.Context, visibleOnly bool) ([]models.Experience, error) {
	var experiences []models.Experience
	query := r.getDB(ctx).Model(&models.Experience{})
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}
	if err := query.Order("sort_order ASC").Find(&experiences).Error; err != nil {
		configslog.Log.Error("ExperienceRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return experiences, nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := r.getDB(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ExperienceRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	return r.getDB(ctx).Create(experience).Error
}

func (r *ExperienceRepository) Update(ctx context.Context, experience *models.Experience) error {
	if experience == nil || experience.ID == 0 {
		return errors.New("experience to update is not persisted")
	}
	return r.getDB(ctx).Save(experience).Error
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Experience{}, id)
	if result.Error != nil {
		configslog.Log.Error("ExperienceRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ExperienceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Experience{}).Count(&count).Error
	return count, err
}

var _ IExperienceRepository = (*ExperienceRepository)(nil)
