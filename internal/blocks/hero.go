package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

const heroTmpl = `<section class="hero hero-{{.Height}} hero-align-{{.Alignment}}">
<div class="hero-media">
{{- if .VideoURL}}
<video autoplay loop muted playsinline><source src="{{.VideoURL}}" type="video/mp4"></video>
{{- else}}
<img src="{{.ImageURL}}" alt="{{.ImageAlt}}">
{{- end}}
{{- if .Overlay}}
<div class="hero-overlay"></div>
{{- end}}
</div>
<div class="hero-content">
<h1 class="hero-heading">{{.Heading}}</h1>
{{- if .Subheading}}
<p class="hero-subheading">{{.Subheading}}</p>
{{- end}}
{{- if or .PrimaryCTA .SecondaryCTA}}
<div class="hero-actions">
{{- if .PrimaryCTA}}{{.PrimaryCTA}}{{end}}
{{- if .SecondaryCTA}}{{.SecondaryCTA}}{{end}}
</div>
{{- end}}
</div>
</section>
`

var heroTemplate = template.Must(template.New("hero").Parse(heroTmpl))

func renderHero(w io.Writer, b *content.HeroBlock, rc Context) error {
	imageURL := ""
	imageAlt := "Hero background"
	if b.VideoURL == "" {
		media := content.Media{}
		if b.BackgroundImage != nil {
			media = *b.BackgroundImage
			if media.Alt != "" {
				imageAlt = media.Alt
			}
		}
		imageURL = rc.imageURL(media, 1920, 1080)
	}

	var primary, secondary template.HTML
	if cta := b.PrimaryCTA; cta != nil && cta.Text != "" && cta.Link != "" {
		primary = button(cta.Text, cta.Link, "primary")
	}
	if cta := b.SecondaryCTA; cta != nil && cta.Text != "" && cta.Link != "" {
		secondary = button(cta.Text, cta.Link, "outline")
	}

	return heroTemplate.Execute(w, map[string]any{
		"Heading":      b.Heading,
		"Subheading":   b.Subheading,
		"VideoURL":     b.VideoURL,
		"ImageURL":     imageURL,
		"ImageAlt":     imageAlt,
		"Overlay":      boolOr(b.Overlay, true),
		"Alignment":    enum(b.Alignment, "center", "left", "center", "right"),
		"Height":       enum(b.Height, "full", "full", "large", "medium"),
		"PrimaryCTA":   primary,
		"SecondaryCTA": secondary,
	})
}
