package site

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/darko-kalany/studio/internal/preview"
)

// safeRedirect keeps preview redirects on this site: only rooted
// relative paths pass, everything else collapses to "/".
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}

// PreviewEnable validates the shared secret and sets the signed draft
// session cookie. An invalid secret is a hard 401, never a quiet
// fallback to published content.
func (s *Site) PreviewEnable(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("secret")
	if s.PreviewSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(s.PreviewSecret)) != 1 {
		s.log().Warn("preview enable rejected", "remote", r.RemoteAddr)
		http.Error(w, "invalid preview secret", http.StatusUnauthorized)
		return
	}

	// The studio passes its perspective selection along; an absent
	// param falls back to drafts.
	perspective := r.URL.Query().Get("sanity-preview-perspective")
	if err := preview.SetCookie(w, s.SessionSecret, perspective, s.SecureCookies); err != nil {
		s.log().Error("preview session encode failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.log().Info("preview mode enabled")
	http.Redirect(w, r, safeRedirect(r.URL.Query().Get("redirect")), http.StatusFound)
}

// PreviewDisable clears the session cookie and goes home.
func (s *Site) PreviewDisable(w http.ResponseWriter, r *http.Request) {
	preview.ClearCookie(w)
	s.log().Info("preview mode disabled")
	http.Redirect(w, r, "/", http.StatusFound)
}

const studioShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Studio | Darko Kalany</title>
</head>
<body>
<div id="studio"></div>
<script type="module" src="/static/studio.js"></script>
</body>
</html>
`

// Studio serves the client-rendered CMS shell. No server rendering
// happens here: the studio bundle owns the whole subtree.
func (s *Site) Studio(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(studioShell))
}
