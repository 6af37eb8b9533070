package site

import (
	"bytes"
	"html/template"
	"net/http"
	"runtime/debug"

	"github.com/darko-kalany/studio/internal/preview"
)

const notFoundTmpl = `<div class="error-page">
<h1>404</h1>
<p>The page you are looking for does not exist.</p>
<a class="btn btn-primary" href="/">Back Home</a>
</div>
`

const errorTmpl = `<div class="error-page">
<h1>Something went wrong</h1>
<p>The page could not be rendered. Please try again.</p>
{{- if .Detail}}
<pre class="error-detail">{{.Detail}}</pre>
{{- end}}
<a class="btn btn-primary" href="/">Back Home</a>
</div>
`

var errorTemplate = template.Must(template.New("error").Parse(errorTmpl))

func (s *Site) notFound(w http.ResponseWriter, r *http.Request, opts preview.Options) {
	layout, err := s.Content.Layout(r.Context(), opts)
	if err != nil {
		s.log().Error("layout fetch failed", "error", err)
		layout = nil
	}
	view := buildShell(layout, r.URL.Path, opts.Preview)
	view.Title = "Not Found | Darko Kalany Studio"
	view.Body = template.HTML(notFoundTmpl)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := shellTemplate.Execute(w, view); err != nil {
		s.log().Error("shell render failed", "error", err, "path", r.URL.Path)
	}
}

// errorPage renders the friendly failure page. The error detail and
// stack only show in dev mode.
func (s *Site) errorPage(w http.ResponseWriter, r *http.Request, opts preview.Options, cause error) {
	s.log().Error("page render failed", "error", cause, "path", r.URL.Path)

	detail := ""
	if s.Dev && cause != nil {
		detail = cause.Error() + "\n\n" + string(debug.Stack())
	}

	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, map[string]any{"Detail": detail}); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	layout, err := s.Content.Layout(r.Context(), opts)
	if err != nil {
		layout = nil
	}
	view := buildShell(layout, r.URL.Path, opts.Preview)
	view.Title = "Error | Darko Kalany Studio"
	view.Body = template.HTML(buf.String())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if err := shellTemplate.Execute(w, view); err != nil {
		s.log().Error("shell render failed", "error", err, "path", r.URL.Path)
	}
}
