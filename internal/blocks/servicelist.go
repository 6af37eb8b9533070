package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

var serviceIcons = []string{"box", "camera", "layers", "play", "film", "image", "code", "settings"}

const serviceListTmpl = `<div class="services cols-{{.Columns}}">
<div class="services-header">
{{- if .Subheading}}<p class="eyebrow">{{.Subheading}}</p>{{end}}
<h3>{{.Heading}}</h3>
</div>
<div class="services-grid">
{{- range .Items}}
<div class="service">
<span class="icon icon-{{.Icon}}" aria-hidden="true"></span>
<h4>{{.Title}}</h4>
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
{{- if .Features}}
<ul class="service-features">
{{- range .Features}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .Link}}
<a class="service-link" href="{{.Link}}">Learn More</a>
{{- end}}
</div>
{{- end}}
</div>
</div>
`

var serviceListTemplate = template.Must(template.New("services").Parse(serviceListTmpl))

type serviceItem struct {
	Icon        string
	Title       string
	Description string
	Features    []string
	Link        string
}

func renderServiceList(w io.Writer, b *content.ServiceListBlock) error {
	if len(b.Services) == 0 {
		return nil
	}

	showLearnMore := boolOr(b.ShowLearnMore, true)

	items := make([]serviceItem, len(b.Services))
	for i, s := range b.Services {
		icon := s.Icon
		if icon == "" {
			icon = serviceIcons[i%len(serviceIcons)]
		}
		item := serviceItem{
			Icon:        icon,
			Title:       s.Title,
			Description: s.Description,
			Features:    s.Features,
		}
		if showLearnMore {
			item.Link = s.Link
			if item.Link == "" {
				item.Link = "/services"
			}
		}
		items[i] = item
	}

	columns := b.Columns
	if columns != 2 && columns != 3 {
		columns = 4
	}

	return serviceListTemplate.Execute(w, map[string]any{
		"Heading":    b.Heading,
		"Subheading": b.Subheading,
		"Columns":    columns,
		"Items":      items,
	})
}
