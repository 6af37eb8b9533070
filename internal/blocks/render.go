// Package blocks renders a document's ordered block list to HTML.
// Dispatch is an exhaustive switch over the closed tag set; unknown or
// payload-less blocks are logged and skipped so one bad block never
// takes down the page.
package blocks

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/url"

	"github.com/darko-kalany/studio/internal/content"
)

// Context carries the per-request inputs a renderer may use: the
// document identity for visual-editing annotation, the request path
// and query for interaction links, and the image URL resolver.
type Context struct {
	DocumentID string
	Path       string
	Query      url.Values
	ImageURL   func(m content.Media, w, h int) string
	Log        *slog.Logger
}

func (rc Context) imageURL(m content.Media, w, h int) string {
	if rc.ImageURL != nil {
		return rc.ImageURL(m, w, h)
	}
	if w <= 0 {
		w = 1200
	}
	if h <= 0 {
		h = 800
	}
	return fmt.Sprintf("https://picsum.photos/%d/%d", w, h)
}

// selfURL rebuilds the current path with a modified query string.
func (rc Context) selfURL(q url.Values) string {
	path := rc.Path
	if path == "" {
		path = "/"
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (rc Context) logger() *slog.Logger {
	if rc.Log != nil {
		return rc.Log
	}
	return slog.Default()
}

// Render walks the block list in document order and writes each
// section. The output order always equals the input order.
func Render(w io.Writer, blocks content.Blocks, rc Context) error {
	for _, b := range blocks {
		if err := renderBlock(w, b, rc); err != nil {
			return err
		}
	}
	return nil
}

func renderBlock(w io.Writer, b content.Block, rc Context) error {
	// The hero occupies the full viewport and skips the wrapper.
	if b.Type == content.TypeHero && b.Hero != nil {
		return renderHero(w, b.Hero, rc)
	}

	var inner bytes.Buffer
	var err error

	switch {
	case b.Type == content.TypeCTA && b.CTA != nil:
		err = renderCTA(&inner, b.CTA)
	case b.Type == content.TypeFeatures && b.Features != nil:
		err = renderFeatures(&inner, b.Features)
	case b.Type == content.TypeTestimonials && b.Testimonials != nil:
		err = renderTestimonials(&inner, b.Testimonials, rc)
	case b.Type == content.TypePricing && b.Pricing != nil:
		err = renderPricing(&inner, b.Pricing)
	case b.Type == content.TypeFAQ && b.FAQ != nil:
		err = renderFAQ(&inner, b.FAQ, rc)
	case b.Type == content.TypeGallery && b.Gallery != nil:
		err = renderGallery(&inner, b.Gallery, rc)
	case b.Type == content.TypeServiceList && b.ServiceList != nil:
		err = renderServiceList(&inner, b.ServiceList)
	case b.Type == content.TypeFeaturedProjects && b.FeaturedProjects != nil:
		err = renderFeaturedProjects(&inner, b.FeaturedProjects, rc)
	case b.Type == content.TypeContactForm && b.ContactForm != nil:
		err = renderContactForm(&inner, b.ContactForm)
	default:
		rc.logger().Warn("unknown block type, skipping", "type", b.Type, "key", b.Key)
		return nil
	}

	if err != nil {
		return fmt.Errorf("render %s block: %w", b.Type, err)
	}

	// A block whose primary collection is empty renders nothing at
	// all; wrapping it would leave an empty shell on the page.
	if inner.Len() == 0 {
		return nil
	}

	return renderSection(w, b, template.HTML(inner.String()))
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// enum validates a variant value against its allowed set, falling back
// to the default for unset or unrecognized values.
func enum(value, def string, allowed ...string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return def
}
