package blocks

import (
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/darko-kalany/studio/internal/content"
)

// Gallery interaction state travels in the query string: ?filter=<cat>
// selects a category, ?image=<n> opens the lightbox at index n within
// the filtered set. Changing the filter drops the image param, so the
// lightbox closes rather than pointing into a shifted index space.

const (
	galleryFilterParam   = "filter"
	galleryLightboxParam = "image"
)

const galleryTmpl = `<div class="gallery gallery-{{.Layout}}">
{{- if or .Heading .Subheading .CTA}}
<div class="gallery-header">
<div>
{{- if .Subheading}}<p class="eyebrow">{{.Subheading}}</p>{{end}}
{{- if .Heading}}<h3>{{.Heading}}</h3>{{end}}
</div>
{{- if .CTA}}{{.CTA}}{{end}}
</div>
{{- end}}
{{- if .FilterOptions}}
<nav class="gallery-filters">
{{- range .FilterOptions}}
<a href="{{.URL}}" class="gallery-filter{{if .Active}} gallery-filter-active{{end}}">{{.Label}}</a>
{{- end}}
</nav>
{{- end}}
<div class="gallery-grid">
{{- range .Items}}
{{- if .OpenURL}}
<a class="gallery-item" href="{{.OpenURL}}" data-gallery-index="{{.Index}}">
<img src="{{.Src}}" alt="{{.Alt}}" loading="lazy">
{{- if .Title}}<span class="gallery-item-title">{{.Title}}</span>{{end}}
</a>
{{- else}}
<figure class="gallery-item">
<img src="{{.Src}}" alt="{{.Alt}}" loading="lazy">
{{- if .Title}}<figcaption>{{.Title}}</figcaption>{{end}}
</figure>
{{- end}}
{{- end}}
</div>
{{- if .Lightbox}}
<div class="lightbox" data-lightbox role="dialog" aria-modal="true">
<a class="lightbox-close" href="{{.Lightbox.CloseURL}}" aria-label="Close lightbox">&times;</a>
{{- if .Lightbox.PrevURL}}
<a class="lightbox-prev" href="{{.Lightbox.PrevURL}}" aria-label="Previous image">&lsaquo;</a>
{{- end}}
{{- if .Lightbox.NextURL}}
<a class="lightbox-next" href="{{.Lightbox.NextURL}}" aria-label="Next image">&rsaquo;</a>
{{- end}}
<figure class="lightbox-figure">
<img src="{{.Lightbox.Src}}" alt="{{.Lightbox.Alt}}">
{{- if or .Lightbox.Title .Lightbox.Description}}
<figcaption>
{{- if .Lightbox.Title}}<h3>{{.Lightbox.Title}}</h3>{{end}}
{{- if .Lightbox.Description}}<p>{{.Lightbox.Description}}</p>{{end}}
</figcaption>
{{- end}}
</figure>
</div>
{{- end}}
</div>
`

var galleryTemplate = template.Must(template.New("gallery").Parse(galleryTmpl))

type galleryItemView struct {
	Index   int
	Src     string
	Alt     string
	Title   string
	OpenURL string
}

type galleryFilterView struct {
	Label  string
	URL    string
	Active bool
}

type lightboxView struct {
	Src         string
	Alt         string
	Title       string
	Description string
	CloseURL    string
	PrevURL     string
	NextURL     string
}

func renderGallery(w io.Writer, b *content.GalleryBlock, rc Context) error {
	if len(b.Images) == 0 {
		return nil
	}

	categories := make([]string, len(b.Images))
	for i, img := range b.Images {
		categories[i] = img.Category
	}
	filter := NewFilter(categories)
	filter.Select(rc.Query.Get(galleryFilterParam))

	var visible []content.GalleryImage
	for _, img := range b.Images {
		if filter.Matches(img.Category) {
			visible = append(visible, img)
		}
	}

	lightboxEnabled := boolOr(b.EnableLightbox, true)
	lb := NewLightbox(len(visible))
	if lightboxEnabled {
		if n, err := strconv.Atoi(rc.Query.Get(galleryLightboxParam)); err == nil {
			lb.OpenAt(n)
		}
	}

	baseQuery := func() url.Values {
		q := cloneValues(rc.Query)
		q.Del(galleryLightboxParam)
		return q
	}

	items := make([]galleryItemView, len(visible))
	for i, img := range visible {
		alt := img.Alt
		if alt == "" {
			alt = img.Title
		}
		if alt == "" {
			alt = "Gallery image"
		}
		view := galleryItemView{
			Index: i,
			Src:   rc.imageURL(img.Media(), 1200, 800),
			Alt:   alt,
			Title: img.Title,
		}
		if lightboxEnabled {
			q := baseQuery()
			q.Set(galleryLightboxParam, strconv.Itoa(i))
			view.OpenURL = rc.selfURL(q)
		}
		items[i] = view
	}

	var filters []galleryFilterView
	if opts := filter.Options(); len(opts) > 0 {
		// Filter links drop the lightbox param: a filter change
		// closes the lightbox instead of clamping its index.
		q := baseQuery()
		q.Del(galleryFilterParam)
		filters = append(filters, galleryFilterView{
			Label:  "All",
			URL:    rc.selfURL(q),
			Active: filter.Active() == FilterAll,
		})
		for _, opt := range opts {
			q := baseQuery()
			q.Set(galleryFilterParam, opt)
			filters = append(filters, galleryFilterView{
				Label:  opt,
				URL:    rc.selfURL(q),
				Active: filter.Active() == opt,
			})
		}
	}

	var lbView *lightboxView
	if active, open := lb.Active(); open {
		img := visible[active]
		closeQ := baseQuery()

		lbView = &lightboxView{
			Src:         rc.imageURL(img.Media(), 1920, 1080),
			Alt:         items[active].Alt,
			Title:       img.Title,
			Description: img.Description,
			CloseURL:    rc.selfURL(closeQ),
		}
		if lb.HasNav() {
			next := lb
			next.Next()
			prev := lb
			prev.Prev()

			nextIdx, _ := next.Active()
			nq := baseQuery()
			nq.Set(galleryLightboxParam, strconv.Itoa(nextIdx))
			lbView.NextURL = rc.selfURL(nq)

			prevIdx, _ := prev.Active()
			pq := baseQuery()
			pq.Set(galleryLightboxParam, strconv.Itoa(prevIdx))
			lbView.PrevURL = rc.selfURL(pq)
		}
	}

	var cta template.HTML
	if b.CTAText != "" && b.CTALink != "" {
		cta = button(b.CTAText, b.CTALink, "outline")
	}

	return galleryTemplate.Execute(w, map[string]any{
		"Heading":       b.Heading,
		"Subheading":    b.Subheading,
		"Layout":        enum(b.Layout, "masonry", "grid-2", "grid-3", "grid-4", "masonry", "carousel"),
		"CTA":           cta,
		"FilterOptions": filters,
		"Items":         items,
		"Lightbox":      lbView,
	})
}
