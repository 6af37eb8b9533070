package site

import (
	"bytes"
	"html/template"

	"github.com/darko-kalany/studio/internal/blocks"
	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/markdown"
)

type imageURLFunc func(content.Media, int, int) string

type cardView struct {
	Title    string
	URL      string
	Image    string
	Alt      string
	Excerpt  string
	Meta     string
	Category string
}

const listingTmpl = `<div class="listing">
<div class="container">
<header class="listing-header">
<h1>{{.Heading}}</h1>
{{- if .Intro}}<p class="listing-intro">{{.Intro}}</p>{{end}}
</header>
<div class="card-grid" data-listing="{{.Kind}}">
{{- range .Cards}}
<a class="card" href="{{.URL}}">
{{- if .Image}}
<img src="{{.Image}}" alt="{{.Alt}}" loading="lazy">
{{- end}}
<div class="card-body">
{{- if .Category}}<span class="card-category">{{.Category}}</span>{{end}}
<h2>{{.Title}}</h2>
{{- if .Excerpt}}<p>{{.Excerpt}}</p>{{end}}
{{- if .Meta}}<span class="card-meta">{{.Meta}}</span>{{end}}
</div>
</a>
{{- end}}
</div>
{{- if .HasMore}}
<div class="load-more-row">
<button class="btn btn-outline" data-load-more data-kind="{{.Kind}}" data-shown="{{len .Cards}}" data-per-page="{{.PerPage}}" data-total="{{.Total}}">Load More</button>
</div>
{{- end}}
</div>
</div>
`

var listingTemplate = template.Must(template.New("listing").Parse(listingTmpl))

func projectCardView(imageURL imageURLFunc, p content.ProjectSummary) cardView {
	card := cardView{
		Title:   p.Title,
		URL:     "/projects/" + p.Slug.Current,
		Excerpt: p.Excerpt,
	}
	if p.FeaturedImage != nil {
		card.Image = imageURL(*p.FeaturedImage, 800, 600)
		card.Alt = p.FeaturedImage.Alt
	}
	if card.Alt == "" {
		card.Alt = p.Title
	}
	if len(p.Categories) > 0 {
		card.Category = p.Categories[0].Title
	}
	switch {
	case p.Client != "" && p.Year != "":
		card.Meta = p.Client + " · " + p.Year
	case p.Client != "":
		card.Meta = p.Client
	case p.Year != "":
		card.Meta = p.Year
	}
	return card
}

func postCardView(imageURL imageURLFunc, p content.PostSummary) cardView {
	card := cardView{
		Title:   p.Title,
		URL:     "/blog/" + p.Slug.Current,
		Excerpt: p.Excerpt,
		Meta:    p.PublishedAt,
	}
	if p.FeaturedImage != nil {
		card.Image = imageURL(*p.FeaturedImage, 800, 600)
		card.Alt = p.FeaturedImage.Alt
	}
	if card.Alt == "" {
		card.Alt = p.Title
	}
	if len(p.Categories) > 0 {
		card.Category = p.Categories[0].Title
	}
	return card
}

func projectListBody(imageURL imageURLFunc, projects []content.ProjectSummary, pager Pager) (template.HTML, error) {
	cards := make([]cardView, len(projects))
	for i, p := range projects {
		cards[i] = projectCardView(imageURL, p)
	}
	return renderListing(map[string]any{
		"Heading": "Projects",
		"Intro":   "Detailed case studies demonstrating the power of generative AI in commercial application.",
		"Kind":    "projects",
		"Cards":   cards,
		"HasMore": pager.HasMore(len(cards)),
		"PerPage": pager.PerPage,
		"Total":   pager.Total,
	})
}

func postListBody(imageURL imageURLFunc, posts []content.PostSummary, pager Pager) (template.HTML, error) {
	cards := make([]cardView, len(posts))
	for i, p := range posts {
		cards[i] = postCardView(imageURL, p)
	}
	return renderListing(map[string]any{
		"Heading": "Blog",
		"Intro":   "Notes from the studio.",
		"Kind":    "posts",
		"Cards":   cards,
		"HasMore": pager.HasMore(len(cards)),
		"PerPage": pager.PerPage,
		"Total":   pager.Total,
	})
}

func renderListing(data map[string]any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

const projectDetailTmpl = `<article class="project-detail">
<div class="container">
<a class="back-link" href="/projects">&larr; All Projects</a>
<header class="detail-header">
{{- if .Category}}<span class="card-category">{{.Category}}</span>{{end}}
<h1>{{.Title}}</h1>
{{- if .Excerpt}}<p class="detail-excerpt">{{.Excerpt}}</p>{{end}}
</header>
{{- if .Image}}
<img class="detail-hero" src="{{.Image}}" alt="{{.Alt}}">
{{- end}}
<dl class="detail-meta">
{{- if .Client}}<div><dt>Client</dt><dd>{{.Client}}</dd></div>{{end}}
{{- if .Year}}<div><dt>Year</dt><dd>{{.Year}}</dd></div>{{end}}
{{- if .Services}}<div><dt>Services</dt><dd>{{range $i, $s := .Services}}{{if $i}}, {{end}}{{$s}}{{end}}</dd></div>{{end}}
{{- if .URL}}<div><dt>Live</dt><dd><a href="{{.URL}}" rel="noopener">{{.URL}}</a></dd></div>{{end}}
</dl>
{{- if .Content}}
<div class="prose">{{.Content}}</div>
{{- end}}
{{.Gallery}}
{{- if .Tags}}
<ul class="tag-list">
{{- range .Tags}}
<li>{{.Title}}</li>
{{- end}}
</ul>
{{- end}}
</div>
</article>
`

var projectDetailTemplate = template.Must(template.New("project-detail").Parse(projectDetailTmpl))

func projectDetailBody(imageURL imageURLFunc, p *content.Project, rc blocks.Context) (template.HTML, error) {
	var body template.HTML
	if p.Content != "" {
		rendered, err := markdown.Render(p.Content)
		if err != nil {
			return "", err
		}
		body = rendered
	}

	// The case-study gallery reuses the gallery block renderer, so it
	// gets the same filters and lightbox as authored gallery blocks.
	var gallery template.HTML
	if len(p.Gallery) > 0 {
		var buf bytes.Buffer
		block := content.Blocks{{
			Key:     "project-gallery",
			Type:    content.TypeGallery,
			Gallery: &content.GalleryBlock{Images: p.Gallery},
		}}
		if err := blocks.Render(&buf, block, rc); err != nil {
			return "", err
		}
		gallery = template.HTML(buf.String())
	}

	var image, alt string
	if p.FeaturedImage != nil {
		image = imageURL(*p.FeaturedImage, 1920, 1080)
		alt = p.FeaturedImage.Alt
	}
	if alt == "" {
		alt = p.Title
	}

	category := ""
	if len(p.Categories) > 0 {
		category = p.Categories[0].Title
	}

	var buf bytes.Buffer
	err := projectDetailTemplate.Execute(&buf, map[string]any{
		"Title":    p.Title,
		"Excerpt":  p.Excerpt,
		"Category": category,
		"Image":    image,
		"Alt":      alt,
		"Client":   p.Client,
		"Year":     p.Year,
		"Services": p.Services,
		"URL":      p.URL,
		"Content":  body,
		"Gallery":  gallery,
		"Tags":     p.Tags,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

const postDetailTmpl = `<article class="post-detail">
<div class="container">
<a class="back-link" href="/blog">&larr; All Posts</a>
<header class="detail-header">
{{- if .Category}}<span class="card-category">{{.Category}}</span>{{end}}
<h1>{{.Title}}</h1>
<div class="post-meta">
{{- if .Author}}<span>{{.Author}}</span>{{end}}
{{- if .PublishedAt}}<time datetime="{{.PublishedAt}}">{{.PublishedAt}}</time>{{end}}
</div>
</header>
{{- if .Image}}
<img class="detail-hero" src="{{.Image}}" alt="{{.Alt}}">
{{- end}}
{{- if .Content}}
<div class="prose">{{.Content}}</div>
{{- end}}
{{- if .Next}}
<a class="next-post" href="/blog/{{.Next.Slug.Current}}">
<span>Next post</span>
<h2>{{.Next.Title}}</h2>
</a>
{{- end}}
</div>
</article>
`

var postDetailTemplate = template.Must(template.New("post-detail").Parse(postDetailTmpl))

func postDetailBody(imageURL imageURLFunc, p *content.Post, next *content.PostSummary) (template.HTML, error) {
	var body template.HTML
	if p.Content != "" {
		rendered, err := markdown.Render(p.Content)
		if err != nil {
			return "", err
		}
		body = rendered
	}

	var image, alt string
	if p.FeaturedImage != nil {
		image = imageURL(*p.FeaturedImage, 1920, 1080)
		alt = p.FeaturedImage.Alt
	}
	if alt == "" {
		alt = p.Title
	}

	category := ""
	if len(p.Categories) > 0 {
		category = p.Categories[0].Title
	}

	var buf bytes.Buffer
	err := postDetailTemplate.Execute(&buf, map[string]any{
		"Title":       p.Title,
		"Category":    category,
		"Author":      p.Author,
		"PublishedAt": p.PublishedAt,
		"Image":       image,
		"Alt":         alt,
		"Content":     body,
		"Next":        next,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
