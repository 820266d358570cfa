package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
	"portfolio.site/repositories"
)

// ProjectServiceError is a typed service error.
type ProjectServiceError string

func (e ProjectServiceError) Error() string { return string(e) }

const (
	ErrProjectNotFound         ProjectServiceError = "project not found"
	ErrProjectTitleRequired    ProjectServiceError = "project title is required"
	ErrProjectSlugRequired     ProjectServiceError = "project slug is required"
	ErrProjectOverviewRequired ProjectServiceError = "project overview is required"
)

// ProjectInput carries the fields of a create request.
type ProjectInput struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Overview     string   `json:"overview"`
	Problem      string   `json:"problem"`
	Process      string   `json:"process"`
	Solution     string   `json:"solution"`
	Result       string   `json:"result"`
	TechStack    []string `json:"techStack"`
	ImageGallery []string `json:"imageGallery"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
	SeoTitle     string   `json:"seoTitle"`
	SeoDesc      string   `json:"seoDesc"`
}

// ProjectUpdate carries a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Title        *string   `json:"title"`
	Slug         *string   `json:"slug"`
	Overview     *string   `json:"overview"`
	Problem      *string   `json:"problem"`
	Process      *string   `json:"process"`
	Solution     *string   `json:"solution"`
	Result       *string   `json:"result"`
	TechStack    *[]string `json:"techStack"`
	ImageGallery *[]string `json:"imageGallery"`
	Featured     *bool     `json:"featured"`
	Order        *int      `json:"order"`
	SeoTitle     *string   `json:"seoTitle"`
	SeoDesc      *string   `json:"seoDesc"`
}

// IProjectService is the project operation surface.
type IProjectService interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id uint) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	CreateProject(ctx context.Context, input ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id uint, update ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	CountProjects(ctx context.Context) (int64, error)
}

type ProjectService struct {
	repo repositories.IProjectRepository
}

// NewProjectService builds a project service over db.
func NewProjectService(db *gorm.DB) IProjectService {
	return &ProjectService{repo: repositories.NewProjectRepository(db)}
}

func (s *ProjectService) ListProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	return s.repo.FindAll(ctx, featuredOnly)
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	project, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, input ProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, ErrProjectTitleRequired
	}
	if input.Slug == "" {
		return nil, ErrProjectSlugRequired
	}
	if input.Overview == "" {
		return nil, ErrProjectOverviewRequired
	}

	project := models.Project{
		Title:    input.Title,
		Slug:     input.Slug,
		Overview: input.Overview,
		Problem:  input.Problem,
		Process:  input.Process,
		Solution: input.Solution,
		Result:   input.Result,
		Featured: input.Featured,
		Order:    input.Order,
		SeoTitle: input.SeoTitle,
		SeoDesc:  input.SeoDesc,
	}
	project.SetTechStack(input.TechStack)
	project.SetGallery(input.ImageGallery)

	if err := s.repo.Create(ctx, &project); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("project created: %q (id %d)", project.Title, project.ID)
	return &project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id uint, update ProjectUpdate) (*models.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		project.Title = *update.Title
	}
	if update.Slug != nil {
		project.Slug = *update.Slug
	}
	if update.Overview != nil {
		if *update.Overview == "" {
			return nil, ErrProjectOverviewRequired
		}
		project.Overview = *update.Overview
	}
	if update.Problem != nil {
		project.Problem = *update.Problem
	}
	if update.Process != nil {
		project.Process = *update.Process
	}
	if update.Solution != nil {
		project.Solution = *update.Solution
	}
	if update.Result != nil {
		project.Result = *update.Result
	}
	if update.TechStack != nil {
		project.SetTechStack(*update.TechStack)
	}
	if update.ImageGallery != nil {
		project.SetGallery(*update.ImageGallery)
	}
	if update.Featured != nil {
		project.Featured = *update.Featured
	}
	if update.Order != nil {
		project.Order = *update.Order
	}
	if update.SeoTitle != nil {
		project.SeoTitle = *update.SeoTitle
	}
	if update.SeoDesc != nil {
		project.SeoDesc = *update.SeoDesc
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	configslog.SLog.Infof("project deleted: id %d", id)
	return nil
}

func (s *ProjectService) CountProjects(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

var _ IProjectService = (*ProjectService)(nil)
