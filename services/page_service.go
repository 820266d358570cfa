package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

// PageServiceError is a typed service error.
type PageServiceError string

func (e PageServiceError) Error() string { return string(e) }

const (
	ErrPageNotFound       PageServiceError = "page not found"
	ErrPageInvalidContent PageServiceError = "page content is invalid"
)

// PageUpdate carries a partial update; nil fields are left untouched. Content
// replaces the whole section list when provided.
type PageUpdate struct {
	Title    *string             `json:"title"`
	Content  *models.PageContent `json:"content"`
	SeoTitle *string             `json:"seoTitle"`
	SeoDesc  *string             `json:"seoDesc"`
	Enabled  *bool               `json:"enabled"`
	Order    *int                `json:"order"`
}

// IPageService is the page operation surface.
type IPageService interface {
	ListPages(ctx context.Context) ([]models.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*models.Page, error)
	UpdatePage(ctx context.Context, slug string, update PageUpdate) (*models.Page, error)
}

type PageService struct {
	repo repositories.IPageRepository
}

// NewPageService builds a page service over db.
func NewPageService(db *gorm.DB) IPageService {
	return &PageService{repo: repositories.NewPageRepository(db)}
}

func (s *PageService) ListPages(ctx context.Context) ([]models.Page, error) {
	return s.repo.FindAll(ctx)
}

func (s *PageService) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *PageService) UpdatePage(ctx context.Context, slug string, update PageUpdate) (*models.Page, error) {
	page, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		page.Title = *update.Title
	}
	if update.Content != nil {
		if err := update.Content.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPageInvalidContent, err)
		}
		page.SetSections(*update.Content)
	}
	if update.SeoTitle != nil {
		page.SeoTitle = *update.SeoTitle
	}
	if update.SeoDesc != nil {
		page.SeoDesc = *update.SeoDesc
	}
	if update.Enabled != nil {
		page.Enabled = *update.Enabled
	}
	if update.Order != nil {
		page.Order = *update.Order
	}

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("page updated: %q", page.Slug)
	return page, nil
}

var _ IPageService = (*PageService)(nil)
