package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

// Section wrapper: shared chrome around every non-hero block. Spacing
// values outside the enum fall back to md.

const sectionTmpl = `<section{{if .AnchorID}} id="{{.AnchorID}}"{{end}} class="section pt-{{.Top}} pb-{{.Bottom}}">
{{- if or .Title .Subtitle}}
<div class="section-header">
{{- if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
{{- if .Subtitle}}<p class="section-subtitle">{{.Subtitle}}</p>{{end}}
</div>
{{- end}}
{{.Inner}}
</section>
`

var sectionTemplate = template.Must(template.New("section").Parse(sectionTmpl))

func spacingValue(v string) string {
	return enum(v, "md", "none", "sm", "md", "lg", "xl")
}

func renderSection(w io.Writer, b content.Block, inner template.HTML) error {
	return sectionTemplate.Execute(w, map[string]any{
		"AnchorID": b.AnchorID,
		"Top":      spacingValue(b.Spacing.Top),
		"Bottom":   spacingValue(b.Spacing.Bottom),
		"Title":    b.SectionTitle,
		"Subtitle": b.SectionSubtitle,
		"Inner":    inner,
	})
}
