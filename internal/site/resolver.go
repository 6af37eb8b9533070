package site

import (
	"context"
	"strings"

	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/preview"
)

// Resolver turns a request path into a content document.
type Resolver struct {
	Content Service
}

// slugFromPath maps a URL path to the document slug: the root is "/",
// everything else is the path without its surrounding slashes.
func slugFromPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// Resolve fetches the document for a path. A miss surfaces as
// content.ErrNotFound; other errors pass through for the error page.
func (r Resolver) Resolve(ctx context.Context, path string, opts preview.Options) (*content.Document, error) {
	return r.Content.Page(ctx, slugFromPath(path), opts)
}
