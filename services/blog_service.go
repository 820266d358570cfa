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

// BlogServiceError is a typed service error.
type BlogServiceError string

func (e BlogServiceError) Error() string { return string(e) }

const (
	ErrBlogNotFound      BlogServiceError = "blog not found"
	ErrBlogTitleRequired BlogServiceError = "blog title is required"
	ErrBlogSlugRequired  BlogServiceError = "blog slug is required"
)

// BlogInput carries the fields of a create request.
type BlogInput struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
	SeoTitle      string   `json:"seoTitle"`
	SeoDesc       string   `json:"seoDesc"`
}

// BlogUpdate carries a partial update; nil fields are left untouched.
type BlogUpdate struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	FeaturedImage *string   `json:"featuredImage"`
	Tags          *[]string `json:"tags"`
	Published     *bool     `json:"published"`
	SeoTitle      *string   `json:"seoTitle"`
	SeoDesc       *string   `json:"seoDesc"`
}

// IBlogService is the blog operation surface.
type IBlogService interface {
	ListBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error)
	GetBlogByID(ctx context.Context, id uint) (*models.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
	CreateBlog(ctx context.Context, input BlogInput) (*models.Blog, error)
	UpdateBlog(ctx context.Context, id uint, update BlogUpdate) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id uint) error
	CountBlogs(ctx context.Context) (int64, error)
}

type BlogService struct {
	repo repositories.IBlogRepository
}

// NewBlogService builds a blog service over db.
func NewBlogService(db *gorm.DB) IBlogService {
	return &BlogService{repo: repositories.NewBlogRepository(db)}
}

func (s *BlogService) ListBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	return s.repo.FindAll(ctx, publishedOnly)
}

func (s *BlogService) GetBlogByID(ctx context.Context, id uint) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) GetBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) CreateBlog(ctx context.Context, input BlogInput) (*models.Blog, error) {
	if input.Title == "" {
		return nil, ErrBlogTitleRequired
	}
	if input.Slug == "" {
		return nil, ErrBlogSlugRequired
	}

	blog := models.Blog{
		Title:         input.Title,
		Slug:          input.Slug,
		Content:       input.Content,
		Excerpt:       input.Excerpt,
		FeaturedImage: input.FeaturedImage,
		Published:     input.Published,
		SeoTitle:      input.SeoTitle,
		SeoDesc:       input.SeoDesc,
	}
	blog.SetTags(input.Tags)
	if input.Published {
		now := time.Now().UTC()
		blog.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, &blog); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("blog created: %q (id %d)", blog.Title, blog.ID)
	return &blog, nil
}

// UpdateBlog applies a partial update. The first false→true publish
// transition stamps PublishedAt; the timestamp is preserved on every later
// update, including redundant published:true resubmissions.
func (s *BlogService) UpdateBlog(ctx context.Context, id uint, update BlogUpdate) (*models.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		blog.Title = *update.Title
	}
	if update.Slug != nil {
		blog.Slug = *update.Slug
	}
	if update.Content != nil {
		blog.Content = *update.Content
	}
	if update.Excerpt != nil {
		blog.Excerpt = *update.Excerpt
	}
	if update.FeaturedImage != nil {
		blog.FeaturedImage = *update.FeaturedImage
	}
	if update.Tags != nil {
		blog.SetTags(*update.Tags)
	}
	if update.Published != nil {
		if *update.Published && !blog.Published && blog.PublishedAt == nil {
			now := time.Now().UTC()
			blog.PublishedAt = &now
		}
		blog.Published = *update.Published
	}
	if update.SeoTitle != nil {
		blog.SeoTitle = *update.SeoTitle
	}
	if update.SeoDesc != nil {
		blog.SeoDesc = *update.SeoDesc
	}

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBlogNotFound
		}
		return err
	}
	configslog.SLog.Infof("blog deleted: id %d", id)
	return nil
}

func (s *BlogService) CountBlogs(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

var _ IBlogService = (*BlogService)(nil)
