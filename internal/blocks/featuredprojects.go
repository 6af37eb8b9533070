package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

const featuredProjectsTmpl = `<div class="featured-projects layout-{{.Layout}}">
<div class="featured-projects-header">
{{- if .Subheading}}<p class="eyebrow">{{.Subheading}}</p>{{end}}
<h3>{{.Heading}}</h3>
</div>
<div class="featured-projects-grid">
{{- range .Items}}
<a class="project-card" href="{{.Link}}">
<img src="{{.ImageURL}}" alt="{{.ImageAlt}}" loading="lazy">
<div class="project-card-meta">
{{- if .Category}}<p class="project-card-category">{{.Category}}</p>{{end}}
<h4>{{.Title}}</h4>
{{- if .Year}}<span class="project-card-year">{{.Year}}</span>{{end}}
</div>
</a>
{{- end}}
</div>
{{- if .CTA}}
<div class="featured-projects-cta">{{.CTA}}</div>
{{- end}}
</div>
`

var featuredProjectsTemplate = template.Must(template.New("featured-projects").Parse(featuredProjectsTmpl))

type projectCard struct {
	Title    string
	Link     string
	ImageURL string
	ImageAlt string
	Category string
	Year     string
}

func renderFeaturedProjects(w io.Writer, b *content.FeaturedProjectsBlock, rc Context) error {
	if len(b.Projects) == 0 {
		return nil
	}

	showCategory := boolOr(b.ShowCategory, true)
	showYear := boolOr(b.ShowYear, true)

	items := make([]projectCard, len(b.Projects))
	for i, p := range b.Projects {
		card := projectCard{
			Title: p.Title,
			Link:  "#",
		}
		if p.Slug.Current != "" {
			card.Link = "/projects/" + p.Slug.Current
		}

		media := content.Media{}
		if p.FeaturedImage != nil {
			media = *p.FeaturedImage
		}
		card.ImageURL = rc.imageURL(media, 800, 600)
		card.ImageAlt = media.Alt
		if card.ImageAlt == "" {
			card.ImageAlt = p.Title
		}

		if showCategory && len(p.Categories) > 0 {
			card.Category = p.Categories[0].Title
		}
		if showYear {
			card.Year = p.Year
		}
		items[i] = card
	}

	ctaText := b.CTAText
	if ctaText == "" {
		ctaText = "View All Projects"
	}
	ctaLink := b.CTALink
	if ctaLink == "" {
		ctaLink = "/projects"
	}

	return featuredProjectsTemplate.Execute(w, map[string]any{
		"Heading":    b.Heading,
		"Subheading": b.Subheading,
		"Layout":     enum(b.Layout, "grid-2", "grid-2", "grid-3", "featured"),
		"Items":      items,
		"CTA":        button(ctaText, ctaLink, "outline"),
	})
}
