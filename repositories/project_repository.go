package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// IProjectRepository covers project persistence.
type IProjectRepository interface {
	FindAll(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a project repository bound to db.
func NewProjectRepository(db *gorm.DB) IProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll lists projects by ascending sort order, optionally restricted to
// featured ones (the home-page selection).
func (r *ProjectRepository) FindAll(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	var projects []models.Project
	query := r.getDB(ctx).Model(&models.Project{})
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}
	if err := query.Order("sort_order ASC").Find(&projects).Error; err != nil {
		configslog.Log.Error("ProjectRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.getDB(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProjectRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	if err := r.getDB(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProjectRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.getDB(ctx).Create(project).Error
}

func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	if project == nil || project.ID == 0 {
		return errors.New("project to update is not persisted")
	}
	return r.getDB(ctx).Save(project).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		configslog.Log.Error("ProjectRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}

var _ IProjectRepository = (*ProjectRepository)(nil)
