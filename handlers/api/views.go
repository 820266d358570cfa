package api

import "portfolio.site/models"

// View types decode the JSON-in-text columns into real lists/objects for the
// wire, shadowing the raw storage fields of the embedded model.

type blogView struct {
	models.Blog
	Tags []string `json:"tags"`
}

func newBlogView(b models.Blog) blogView {
	return blogView{Blog: b, Tags: b.TagList()}
}

func newBlogViews(blogs []models.Blog) []blogView {
	out := make([]blogView, len(blogs))
	for i, b := range blogs {
		out[i] = newBlogView(b)
	}
	return out
}

type projectView struct {
	models.Project
	TechStack    []string `json:"techStack"`
	ImageGallery []string `json:"imageGallery"`
}

func newProjectView(p models.Project) projectView {
	return projectView{Project: p, TechStack: p.TechStackList(), ImageGallery: p.Gallery()}
}

func newProjectViews(projects []models.Project) []projectView {
	out := make([]projectView, len(projects))
	for i, p := range projects {
		out[i] = newProjectView(p)
	}
	return out
}

type experienceView struct {
	models.Experience
	Description []string `json:"description"`
	Period      string   `json:"period"`
}

func newExperienceView(e models.Experience) experienceView {
	return experienceView{Experience: e, Description: e.Bullets(), Period: e.Period()}
}

func newExperienceViews(experiences []models.Experience) []experienceView {
	out := make([]experienceView, len(experiences))
	for i, e := range experiences {
		out[i] = newExperienceView(e)
	}
	return out
}

type pageView struct {
	models.Page
	Content models.PageContent `json:"content"`
}

func newPageView(p models.Page) pageView {
	return pageView{Page: p, Content: p.Sections()}
}

type userView struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func newUserView(u models.User) userView {
	return userView{ID: u.ID, Email: u.Email, Name: u.Name}
}
