package site

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/darko-kalany/studio/internal/blocks"
	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/preview"
)

const (
	defaultMetaTitle       = "Darko Kalany Studio | Hyper-Real AI Photography & Film"
	defaultMetaDescription = "Darko Kalany Studio crafts cinematic images and motion that look more real than reality. Defining the future of luxury advertising."
)

// Site owns every HTTP handler of the public surface.
type Site struct {
	Content       Service
	SessionSecret []byte
	PreviewSecret string
	SecureCookies bool
	Dev           bool
	Log           *slog.Logger
}

func (s *Site) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// previewOptions reads the signed cookie. No valid cookie means the
// published perspective, always.
func (s *Site) previewOptions(r *http.Request) preview.Options {
	return preview.FromRequest(r, s.SessionSecret)
}

func (s *Site) blockContext(r *http.Request, documentID string) blocks.Context {
	return blocks.Context{
		DocumentID: documentID,
		Path:       r.URL.Path,
		Query:      r.URL.Query(),
		ImageURL:   s.Content.ImageURL,
		Log:        s.log(),
	}
}

// renderPage wraps a body in the site shell and writes it out.
func (s *Site) renderPage(w http.ResponseWriter, r *http.Request, opts preview.Options, title, description string, body template.HTML) {
	layout, err := s.Content.Layout(r.Context(), opts)
	if err != nil {
		s.log().Error("layout fetch failed", "error", err)
		layout = &content.Layout{}
	}

	view := buildShell(layout, r.URL.Path, opts.Preview)
	view.Title = title
	view.Description = description
	view.Body = body

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shellTemplate.Execute(w, view); err != nil {
		s.log().Error("shell render failed", "error", err, "path", r.URL.Path)
	}
}

// Home renders the page with slug "/". A missing home document is an
// authoring gap, not a 404: it renders the setup hint instead.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)

	var (
		doc    *content.Document
		layout *content.Layout
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		d, err := s.Content.Page(ctx, "/", opts)
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			return err
		}
		doc = d
		return nil
	})
	g.Go(func() error {
		l, err := s.Content.Layout(ctx, opts)
		if err != nil {
			s.log().Error("layout fetch failed", "error", err)
			l = &content.Layout{}
		}
		layout = l
		return nil
	})
	if err := g.Wait(); err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	var body template.HTML
	title, description := defaultMetaTitle, defaultMetaDescription
	if doc == nil {
		body = emptyHomeBody()
	} else {
		var buf bytes.Buffer
		if err := blocks.Render(&buf, doc.Blocks, s.blockContext(r, doc.ID)); err != nil {
			s.errorPage(w, r, opts, err)
			return
		}
		body = template.HTML(buf.String())
		if t := doc.MetaTitle(); t != "" {
			title = t
		}
		if d := doc.MetaDescription(); d != "" {
			description = d
		}
	}

	view := buildShell(layout, r.URL.Path, opts.Preview)
	view.Title = title
	view.Description = description
	view.Body = body

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shellTemplate.Execute(w, view); err != nil {
		s.log().Error("shell render failed", "error", err, "path", r.URL.Path)
	}
}

const emptyHomeTmpl = `<div class="empty-state">
<h1>Page not found</h1>
<p>Create a page with slug "/" in the studio</p>
</div>
`

func emptyHomeBody() template.HTML {
	return template.HTML(emptyHomeTmpl)
}

// Page is the lowest-priority catch-all: any path not claimed by a
// dedicated route resolves against the generic page documents.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)

	doc, err := Resolver{Content: s.Content}.Resolve(r.Context(), r.URL.Path, opts)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.notFound(w, r, opts)
			return
		}
		s.errorPage(w, r, opts, err)
		return
	}

	var buf bytes.Buffer
	if err := blocks.Render(&buf, doc.Blocks, s.blockContext(r, doc.ID)); err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	s.renderPage(w, r, opts, doc.MetaTitle(), doc.MetaDescription(), template.HTML(buf.String()))
}

// Projects renders the case-study index with the first slice and a
// load-more trigger when the count exceeds it.
func (s *Site) Projects(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)
	ctx := r.Context()

	layout, err := s.Content.Layout(ctx, opts)
	if err != nil {
		s.log().Error("layout fetch failed", "error", err)
		layout = &content.Layout{}
	}

	perPage := 6
	if layout.Settings != nil && layout.Settings.ProjectsPerPage > 0 {
		perPage = layout.Settings.ProjectsPerPage
	}

	var (
		projects []content.ProjectSummary
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.Content.ProjectsPage(gctx, 0, perPage, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Content.ProjectsCount(gctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	pager := Pager{Total: total, PerPage: perPage}
	body, err := projectListBody(s.Content.ImageURL, projects, pager)
	if err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	view := buildShell(layout, r.URL.Path, opts.Preview)
	view.Title = "Projects | Darko Kalany Studio"
	view.Description = "Explore our detailed case studies demonstrating the power of generative AI in commercial application."
	view.Body = body

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shellTemplate.Execute(w, view); err != nil {
		s.log().Error("shell render failed", "error", err, "path", r.URL.Path)
	}
}

// ProjectDetail renders one case study.
func (s *Site) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)
	slug := chi.URLParam(r, "slug")

	project, err := s.Content.Project(r.Context(), slug, opts)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.notFound(w, r, opts)
			return
		}
		s.errorPage(w, r, opts, err)
		return
	}

	body, err := projectDetailBody(s.Content.ImageURL, project, s.blockContext(r, project.ID))
	if err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	title := project.Title + " | Darko Kalany Studio"
	description := project.Excerpt
	if project.SEO != nil {
		if project.SEO.MetaTitle != "" {
			title = project.SEO.MetaTitle
		}
		if project.SEO.MetaDescription != "" {
			description = project.SEO.MetaDescription
		}
	}
	s.renderPage(w, r, opts, title, description, body)
}

// Blog renders the post index with load-more.
func (s *Site) Blog(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)
	ctx := r.Context()

	layout, err := s.Content.Layout(ctx, opts)
	if err != nil {
		s.log().Error("layout fetch failed", "error", err)
		layout = &content.Layout{}
	}

	perPage := 6
	if layout.Settings != nil && layout.Settings.PostsPerPage > 0 {
		perPage = layout.Settings.PostsPerPage
	}

	var (
		posts []content.PostSummary
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.Content.PostsPage(gctx, 0, perPage, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Content.PostsCount(gctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	pager := Pager{Total: total, PerPage: perPage}
	body, err := postListBody(s.Content.ImageURL, posts, pager)
	if err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	view := buildShell(layout, r.URL.Path, opts.Preview)
	view.Title = "Blog | Darko Kalany Studio"
	view.Description = "Notes on hyper-real image making, production craft and the tools behind it."
	view.Body = body

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := shellTemplate.Execute(w, view); err != nil {
		s.log().Error("shell render failed", "error", err, "path", r.URL.Path)
	}
}

// PostDetail renders one post plus a next-post teaser. The next post
// wraps around the list, skipping the teaser when the post is alone.
func (s *Site) PostDetail(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)
	slug := chi.URLParam(r, "slug")
	ctx := r.Context()

	post, err := s.Content.Post(ctx, slug, opts)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.notFound(w, r, opts)
			return
		}
		s.errorPage(w, r, opts, err)
		return
	}

	var next *content.PostSummary
	all, err := s.Content.PostsPage(ctx, 0, 1000, opts)
	if err != nil {
		s.log().Warn("next-post lookup failed", "error", err)
	} else if len(all) > 1 {
		for i := range all {
			if all[i].ID == post.ID {
				candidate := all[(i+1)%len(all)]
				if candidate.ID != post.ID {
					next = &candidate
				}
				break
			}
		}
	}

	body, err := postDetailBody(s.Content.ImageURL, post, next)
	if err != nil {
		s.errorPage(w, r, opts, err)
		return
	}

	title := post.Title + " | Darko Kalany Studio"
	description := post.Excerpt
	if post.SEO != nil {
		if post.SEO.MetaTitle != "" {
			title = post.SEO.MetaTitle
		}
		if post.SEO.MetaDescription != "" {
			description = post.SEO.MetaDescription
		}
	}
	s.renderPage(w, r, opts, title, description, body)
}
