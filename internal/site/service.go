// Package site holds the page resolver, the HTTP handlers for every
// route, and the layout chrome around rendered pages.
package site

import (
	"context"

	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/preview"
)

// Service is the content surface the handlers consume. sanity.Client
// implements it; tests substitute a fake.
type Service interface {
	Page(ctx context.Context, slug string, opts preview.Options) (*content.Document, error)
	Post(ctx context.Context, slug string, opts preview.Options) (*content.Post, error)
	PostsPage(ctx context.Context, start, end int, opts preview.Options) ([]content.PostSummary, error)
	PostsCount(ctx context.Context, opts preview.Options) (int, error)
	Project(ctx context.Context, slug string, opts preview.Options) (*content.Project, error)
	ProjectsPage(ctx context.Context, start, end int, opts preview.Options) ([]content.ProjectSummary, error)
	ProjectsCount(ctx context.Context, opts preview.Options) (int, error)
	Layout(ctx context.Context, opts preview.Options) (*content.Layout, error)
	ImageURL(m content.Media, w, h int) string
}
