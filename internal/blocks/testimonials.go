package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

const testimonialsTmpl = `<div class="testimonials testimonials-{{.Layout}}">
{{- if or .Heading .Subheading}}
<div class="testimonials-header">
{{- if .Subheading}}<p class="eyebrow">{{.Subheading}}</p>{{end}}
{{- if .Heading}}<h3>{{.Heading}}</h3>{{end}}
</div>
{{- end}}
<div class="testimonials-grid">
{{- range .Items}}
<figure class="testimonial">
<blockquote>&ldquo;{{.Quote}}&rdquo;</blockquote>
<figcaption>
{{- if .ImageURL}}
<img src="{{.ImageURL}}" alt="{{.ImageAlt}}" class="testimonial-avatar">
{{- end}}
<span class="testimonial-author">{{.Author}}</span>
{{- if .Attribution}}
<span class="testimonial-attribution">{{.Attribution}}</span>
{{- end}}
</figcaption>
</figure>
{{- end}}
</div>
</div>
`

var testimonialsTemplate = template.Must(template.New("testimonials").Parse(testimonialsTmpl))

type testimonialItem struct {
	Quote       string
	Author      string
	Attribution string
	ImageURL    string
	ImageAlt    string
}

func renderTestimonials(w io.Writer, b *content.TestimonialsBlock, rc Context) error {
	if len(b.Testimonials) == 0 {
		return nil
	}

	items := make([]testimonialItem, len(b.Testimonials))
	for i, t := range b.Testimonials {
		item := testimonialItem{
			Quote:  t.Quote,
			Author: t.Author,
		}
		switch {
		case t.Role != "" && t.Company != "":
			item.Attribution = t.Role + ", " + t.Company
		case t.Role != "":
			item.Attribution = t.Role
		case t.Company != "":
			item.Attribution = t.Company
		}
		if t.Image != nil && t.Image.Asset != nil {
			item.ImageURL = rc.imageURL(*t.Image, 100, 100)
			item.ImageAlt = t.Image.Alt
			if item.ImageAlt == "" {
				item.ImageAlt = t.Author
			}
		}
		items[i] = item
	}

	return testimonialsTemplate.Execute(w, map[string]any{
		"Heading":    b.Heading,
		"Subheading": b.Subheading,
		"Layout":     enum(b.Layout, "grid", "grid", "carousel", "single"),
		"Items":      items,
	})
}
