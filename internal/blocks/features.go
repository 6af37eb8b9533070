package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

// Icon names cycle through this list when an item leaves its icon
// unset, matching the authored icon options in the CMS schema.
var featureIcons = []string{"rocket", "shield", "zap", "star", "heart", "globe", "target", "sparkles"}

const featuresTmpl = `<div class="features features-{{.Style}} cols-{{.Columns}}">
{{- if or .Heading .Subheading}}
<div class="features-header">
{{- if .Subheading}}<p class="eyebrow">{{.Subheading}}</p>{{end}}
{{- if .Heading}}<h3>{{.Heading}}</h3>{{end}}
</div>
{{- end}}
<div class="features-grid">
{{- range .Items}}
<div class="feature">
{{- if .Icon}}
<span class="icon icon-{{.Icon}}" aria-hidden="true"></span>
{{- end}}
<h4>{{.Title}}</h4>
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
{{- if .Link}}
<a class="feature-link" href="{{.Link}}">Learn More</a>
{{- end}}
</div>
{{- end}}
</div>
</div>
`

var featuresTemplate = template.Must(template.New("features").Parse(featuresTmpl))

type featureItem struct {
	Icon        string
	Title       string
	Description string
	Link        string
}

func renderFeatures(w io.Writer, b *content.FeaturesBlock) error {
	if len(b.Features) == 0 {
		return nil
	}

	style := enum(b.Style, "cards", "cards", "simple", "icons")

	items := make([]featureItem, len(b.Features))
	for i, f := range b.Features {
		icon := f.Icon
		if icon == "" {
			icon = featureIcons[i%len(featureIcons)]
		}
		if style == "simple" {
			icon = ""
		}
		items[i] = featureItem{
			Icon:        icon,
			Title:       f.Title,
			Description: f.Description,
			Link:        f.Link,
		}
	}

	columns := b.Columns
	if columns != 2 && columns != 4 {
		columns = 3
	}

	return featuresTemplate.Execute(w, map[string]any{
		"Heading":    b.Heading,
		"Subheading": b.Subheading,
		"Style":      style,
		"Columns":    columns,
		"Items":      items,
	})
}
