package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestPublishTransitionStampsPublishedAtOnce(t *testing.T) {
	svc := NewBlogService(openTestDB(t))
	ctx := context.Background()

	blog, err := svc.CreateBlog(ctx, BlogInput{Title: "Draft", Slug: "draft", Content: "body"})
	require.NoError(t, err)
	require.Nil(t, blog.PublishedAt)

	updated, err := svc.UpdateBlog(ctx, blog.ID, BlogUpdate{Published: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, updated.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *updated.PublishedAt, 5*time.Second)
	stamped := *updated.PublishedAt

	// Redundant re-submission of published:true keeps the original timestamp.
	again, err := svc.UpdateBlog(ctx, blog.ID, BlogUpdate{Published: boolPtr(true), Title: strPtr("Renamed")})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.True(t, stamped.Equal(*again.PublishedAt))
	assert.Equal(t, "Renamed", again.Title)
}

func TestUnpublishPreservesPublishedAt(t *testing.T) {
	svc := NewBlogService(openTestDB(t))
	ctx := context.Background()

	blog, err := svc.CreateBlog(ctx, BlogInput{Title: "Post", Slug: "post", Content: "body", Published: true})
	require.NoError(t, err)
	require.NotNil(t, blog.PublishedAt)
	stamped := *blog.PublishedAt

	unpublished, err := svc.UpdateBlog(ctx, blog.ID, BlogUpdate{Published: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, unpublished.Published)
	require.NotNil(t, unpublished.PublishedAt)
	assert.True(t, stamped.Equal(*unpublished.PublishedAt))
}

func TestListBlogsPublishedFilter(t *testing.T) {
	svc := NewBlogService(openTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateBlog(ctx, BlogInput{Title: "Published", Slug: "published", Content: "x", Published: true})
	require.NoError(t, err)
	_, err = svc.CreateBlog(ctx, BlogInput{Title: "Draft", Slug: "draft", Content: "x"})
	require.NoError(t, err)

	public, err := svc.ListBlogs(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Published", public[0].Title)

	admin, err := svc.ListBlogs(ctx, false)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestBlogTagsRoundTrip(t *testing.T) {
	svc := NewBlogService(openTestDB(t))
	ctx := context.Background()

	blog, err := svc.CreateBlog(ctx, BlogInput{Title: "T", Slug: "t", Content: "x", Tags: []string{"go", "gis"}})
	require.NoError(t, err)

	fetched, err := svc.GetBlogBySlug(ctx, "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "gis"}, fetched.TagList())
	assert.Equal(t, blog.ID, fetched.ID)
}

func TestBlogValidationAndNotFound(t *testing.T) {
	svc := NewBlogService(openTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateBlog(ctx, BlogInput{Slug: "x"})
	assert.ErrorIs(t, err, ErrBlogTitleRequired)

	_, err = svc.GetBlogBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrBlogNotFound)

	_, err = svc.UpdateBlog(ctx, 999, BlogUpdate{})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	assert.ErrorIs(t, svc.DeleteBlog(ctx, 999), ErrBlogNotFound)
}
