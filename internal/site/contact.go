package site

import (
	"html/template"
	"net/http"
)

const contactThanksTmpl = `<div class="empty-state">
<h1>Thank you</h1>
<p>Your inquiry has been received. We will be in touch shortly.</p>
<a class="btn btn-primary" href="/">Back to home</a>
</div>
`

// ContactSubmit acknowledges a contact form submission. Inquiries are
// logged only; there is no inbox behind this endpoint.
func (s *Site) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	opts := s.previewOptions(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	s.log().Info("contact inquiry received",
		"name", r.PostFormValue("name"),
		"email", r.PostFormValue("email"),
		"type", r.PostFormValue("type"),
		"budget", r.PostFormValue("budget"),
	)

	s.renderPage(w, r, opts, "Thank You | Darko Kalany Studio",
		"Your inquiry has been received.", template.HTML(contactThanksTmpl))
}
