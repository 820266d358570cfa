package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// IPageRepository covers page persistence. Pages are created by seeding and
// updated in place; the interface deliberately has no Delete.
type IPageRepository interface {
	FindAll(ctx context.Context) ([]models.Page, error)
	FindBySlug(ctx context.Context, slug string) (*models.Page, error)
	Create(ctx context.Context, page *models.Page) error
	Update(ctx context.Context, page *models.Page) error
}

type PageRepository struct {
	db *gorm.DB
}

// NewPageRepository returns a page repository bound to db.
func NewPageRepository(db *gorm.DB) IPageRepository {
	return &PageRepository{db: db}
}

func (r *PageRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *PageRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	if err := r.getDB(ctx).Order("sort_order ASC").Find(&pages).Error; err != nil {
		configslog.Log.Error("PageRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return pages, nil
}

func (r *PageRepository) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	if err := r.getDB(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PageRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.getDB(ctx).Create(page).Error
}

func (r *PageRepository) Update(ctx context.Context, page *models.Page) error {
	if page == nil || page.ID == 0 {
		return errors.New("page to update is not persisted")
	}
	return r.getDB(ctx).Save(page).Error
}

var _ IPageRepository = (*PageRepository)(nil)
