package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

const ctaTmpl = `<div class="cta cta-align-{{.Alignment}}">
<h2 class="cta-heading">{{.Heading}}</h2>
{{- if .Text}}
<p class="cta-text">{{.Text}}</p>
{{- end}}
{{- if .Button}}
{{.Button}}
{{- end}}
</div>
`

var ctaTemplate = template.Must(template.New("cta").Parse(ctaTmpl))

func renderCTA(w io.Writer, b *content.CTABlock) error {
	var btn template.HTML
	if b.ButtonText != "" && b.ButtonLink != "" {
		btn = button(b.ButtonText, b.ButtonLink, b.ButtonStyle)
	}

	return ctaTemplate.Execute(w, map[string]any{
		"Heading":   b.Heading,
		"Text":      b.Text,
		"Alignment": enum(b.Alignment, "center", "left", "center"),
		"Button":    btn,
	})
}
