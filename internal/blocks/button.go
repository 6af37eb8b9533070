package blocks

import (
	"html/template"
	"strings"
)

const buttonTmpl = `<a href="{{.Link}}" class="btn btn-{{.Variant}}">{{.Text}}</a>`

var buttonTemplate = template.Must(template.New("button").Parse(buttonTmpl))

// button renders the shared link-button. Unknown variants get the
// primary treatment.
func button(text, link, variant string) template.HTML {
	variant = enum(variant, "primary", "primary", "outline", "white")

	var sb strings.Builder
	if err := buttonTemplate.Execute(&sb, map[string]string{
		"Text":    text,
		"Link":    link,
		"Variant": variant,
	}); err != nil {
		return ""
	}
	return template.HTML(sb.String())
}
