// Package assets embeds and serves the static frontend files.
package assets

import (
	"embed"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFS embed.FS

var contentTypes = map[string]string{
	".css":   "text/css",
	".js":    "application/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".ico":   "image/x-icon",
}

func GetContentType(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Handler serves the embedded files under /static/. Traversal is a
// non-issue: everything comes out of the embedded tree by clean path.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(path.Clean(req.URL.Path), "/")
		if !strings.HasPrefix(name, "static/") {
			http.NotFound(w, req)
			return
		}

		data, err := staticFS.ReadFile(name)
		if err != nil {
			http.NotFound(w, req)
			return
		}

		w.Header().Set("Content-Type", GetContentType(name))
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(data)
	})
}
