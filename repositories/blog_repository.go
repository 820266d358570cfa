package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// IBlogRepository covers blog persistence.
type IBlogRepository interface {
	FindAll(ctx context.Context, publishedOnly bool) ([]models.Blog, error)
	FindByID(ctx context.Context, id uint) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a blog repository bound to db.
func NewBlogRepository(db *gorm.DB) IBlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll lists blogs most-recently-created first. With publishedOnly set,
// drafts are excluded (the public listing); without it all posts are returned
// (the admin listing).
func (r *BlogRepository) FindAll(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	var blogs []models.Blog
	query := r.getDB(ctx).Model(&models.Blog{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&blogs).Error; err != nil {
		configslog.Log.Error("BlogRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.getDB(ctx).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BlogRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.getDB(ctx).Where("slug = ?", slug).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BlogRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.getDB(ctx).Create(blog).Error
}

func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if blog == nil || blog.ID == 0 {
		return errors.New("blog to update is not persisted")
	}
	return r.getDB(ctx).Save(blog).Error
}

func (r *BlogRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&models.Blog{}, id)
	if result.Error != nil {
		configslog.Log.Error("BlogRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Blog{}).Count(&count).Error
	return count, err
}

var _ IBlogRepository = (*BlogRepository)(nil)
