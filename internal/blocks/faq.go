package blocks

import (
	"html/template"
	"io"
	"net/url"

	"github.com/darko-kalany/studio/internal/content"
)

// The accordion works without script: each question links back to the
// same page with the next open-set in the query string. The static JS
// intercepts the click and toggles in place instead.

const faqQueryParam = "open"

const faqTmpl = `<div class="faq faq-{{.Layout}}" data-allow-multiple="{{.AllowMultiple}}">
{{- if .Heading}}
<h2 class="faq-heading">{{.Heading}}</h2>
{{- end}}
<div class="faq-items">
{{- range .Items}}
{{- if $.Accordion}}
<div class="faq-item{{if .Open}} faq-item-open{{end}}" id="faq-{{.Key}}">
<a class="faq-question" href="{{.ToggleURL}}" data-faq-key="{{.Key}}" aria-expanded="{{.Open}}">{{.Question}}</a>
<div class="faq-answer"{{if not .Open}} hidden{{end}}><p>{{.Answer}}</p></div>
</div>
{{- else}}
<div class="faq-item" id="faq-{{.Key}}">
<h3 class="faq-question">{{.Question}}</h3>
<p class="faq-answer">{{.Answer}}</p>
</div>
{{- end}}
{{- end}}
</div>
</div>
`

var faqTemplate = template.Must(template.New("faq").Parse(faqTmpl))

type faqItemView struct {
	Key       string
	Question  string
	Answer    string
	Open      bool
	ToggleURL string
}

func renderFAQ(w io.Writer, b *content.FAQBlock, rc Context) error {
	if len(b.Items) == 0 {
		return nil
	}

	layout := enum(b.Layout, "accordion", "accordion", "grid", "two-columns")
	accordion := layout == "accordion"

	acc := NewAccordion(b.AllowMultiple, rc.Query[faqQueryParam]...)

	items := make([]faqItemView, len(b.Items))
	for i, item := range b.Items {
		view := faqItemView{
			Key:      item.Key,
			Question: item.Question,
			Answer:   item.Answer,
		}
		if accordion {
			view.Open = acc.IsOpen(item.Key)

			q := cloneValues(rc.Query)
			q.Del(faqQueryParam)
			for _, key := range acc.Toggled(item.Key) {
				q.Add(faqQueryParam, key)
			}
			view.ToggleURL = rc.selfURL(q) + "#faq-" + url.PathEscape(item.Key)
		}
		items[i] = view
	}

	return faqTemplate.Execute(w, map[string]any{
		"Heading":       b.Heading,
		"Layout":        layout,
		"Accordion":     accordion,
		"AllowMultiple": b.AllowMultiple,
		"Items":         items,
	})
}

func cloneValues(q url.Values) url.Values {
	out := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	return out
}
