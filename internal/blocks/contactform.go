package blocks

import (
	"html/template"
	"io"

	"github.com/darko-kalany/studio/internal/content"
)

// Authored fields override the studio's default contact copy.
var contactDefaults = content.ContactFormBlock{
	Heading:          "Contact",
	Description:      "Tell us about your vision. Whether it's a single hero image or a full world-building campaign, we are ready to collaborate.",
	Email:            "hello@darkokalany.com",
	Address:          "109 North 4th St\nBrooklyn, NY 11249",
	ProjectTypes:     []string{"Real Estate", "Fashion", "Brand Film", "Concept Art", "Other"},
	BudgetRanges:     []string{"$2.5k - $5k", "$5k - $10k", "$10k - $25k", "$25k+"},
	SubmitButtonText: "Send Inquiry",
}

const contactFormTmpl = `<div class="contact">
<div class="contact-info">
<h2>{{.Heading}}</h2>
<p class="contact-description">{{.Description}}</p>
<div class="contact-details">
<div>
<h4>Email</h4>
<a href="mailto:{{.Email}}">{{.Email}}</a>
</div>
{{- if .Address}}
<div>
<h4>Studio</h4>
<p class="contact-address">{{.Address}}</p>
</div>
{{- end}}
</div>
</div>
<form class="contact-form" method="post" action="/contact">
<label>Name
<input type="text" name="name" placeholder="John Doe" required>
</label>
<label>Email
<input type="email" name="email" placeholder="john@company.com" required>
</label>
<div class="contact-form-row">
<label>Project Type
<select name="type">
{{- range .ProjectTypes}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
</label>
<label>Budget
<select name="budget">
{{- range .BudgetRanges}}
<option value="{{.}}">{{.}}</option>
{{- end}}
</select>
</label>
</div>
<label>Project Details
<textarea name="message" placeholder="Describe your project..."></textarea>
</label>
<button type="submit" class="btn btn-primary">{{.SubmitButtonText}}</button>
</form>
</div>
`

var contactFormTemplate = template.Must(template.New("contact-form").Parse(contactFormTmpl))

func renderContactForm(w io.Writer, b *content.ContactFormBlock) error {
	v := *b
	if v.Heading == "" {
		v.Heading = contactDefaults.Heading
	}
	if v.Description == "" {
		v.Description = contactDefaults.Description
	}
	if v.Email == "" {
		v.Email = contactDefaults.Email
	}
	if v.Address == "" {
		v.Address = contactDefaults.Address
	}
	if len(v.ProjectTypes) == 0 {
		v.ProjectTypes = contactDefaults.ProjectTypes
	}
	if len(v.BudgetRanges) == 0 {
		v.BudgetRanges = contactDefaults.BudgetRanges
	}
	if v.SubmitButtonText == "" {
		v.SubmitButtonText = contactDefaults.SubmitButtonText
	}

	return contactFormTemplate.Execute(w, v)
}
