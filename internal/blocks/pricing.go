package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

var periodLabels = map[string]string{
	"month": "/month",
	"year":  "/year",
	"once":  "",
}

const pricingTmpl = `<div class="pricing pricing-{{.Style}}">
{{- if or .Heading .Subheading}}
<div class="pricing-header">
{{- if .Subheading}}<p class="eyebrow">{{.Subheading}}</p>{{end}}
{{- if .Heading}}<h3>{{.Heading}}</h3>{{end}}
</div>
{{- end}}
<div class="pricing-grid">
{{- range .Plans}}
<div class="plan{{if .Highlighted}} plan-highlighted{{end}}">
{{- if .Badge}}
<span class="plan-badge">{{.Badge}}</span>
{{- end}}
<h3 class="plan-name">{{.Name}}</h3>
<div class="plan-price"><span>{{.Price}}</span>{{if .PeriodLabel}}<small>{{.PeriodLabel}}</small>{{end}}</div>
{{- if .Description}}
<p class="plan-description">{{.Description}}</p>
{{- end}}
{{- if .Features}}
<ul class="plan-features">
{{- range .Features}}
<li class="{{if .Included}}included{{else}}excluded{{end}}">{{.Text}}</li>
{{- end}}
</ul>
{{- end}}
{{.Button}}
</div>
{{- end}}
</div>
</div>
`

var pricingTemplate = template.Must(template.New("pricing").Parse(pricingTmpl))

type planFeatureItem struct {
	Text     string
	Included bool
}

type planItem struct {
	Name        string
	Description string
	Price       string
	PeriodLabel string
	Features    []planFeatureItem
	Highlighted bool
	Badge       string
	Button      template.HTML
}

func renderPricing(w io.Writer, b *content.PricingBlock) error {
	if len(b.Plans) == 0 {
		return nil
	}

	plans := make([]planItem, len(b.Plans))
	for i, p := range b.Plans {
		item := planItem{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			PeriodLabel: periodLabels[p.Period],
			Highlighted: p.Highlighted,
			Badge:       p.Badge,
		}

		for _, f := range p.Features {
			item.Features = append(item.Features, planFeatureItem{
				Text:     f.Text,
				Included: boolOr(f.Included, true),
			})
		}

		label, link := "Choose Plan", "/contact"
		if p.CTA != nil {
			if p.CTA.Label != "" {
				label = p.CTA.Label
			}
			if p.CTA.Link != "" {
				link = p.CTA.Link
			}
		}
		variant := "outline"
		if p.Highlighted {
			variant = "primary"
		}
		item.Button = button(label, link, variant)

		plans[i] = item
	}

	return pricingTemplate.Execute(w, map[string]any{
		"Heading":    b.Heading,
		"Subheading": b.Subheading,
		"Style":      enum(b.Style, "cards", "cards", "table", "minimal"),
		"Plans":      plans,
	})
}
