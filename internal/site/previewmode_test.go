package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darko-kalany/studio/internal/preview"
)

func TestPreviewEnableWrongSecret(t *testing.T) {
	s := newTestSite(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/preview-mode/enable?secret=wrong", nil)
	rec := httptest.NewRecorder()
	s.PreviewEnable(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("rejected request must not set a session cookie")
	}
}

func TestPreviewEnableNoConfiguredSecret(t *testing.T) {
	s := newTestSite(&fakeService{})
	s.PreviewSecret = ""

	req := httptest.NewRequest(http.MethodGet, "/api/preview-mode/enable?secret=", nil)
	rec := httptest.NewRecorder()
	s.PreviewEnable(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unset secret must reject everything, got %d", rec.Code)
	}
}

func TestPreviewEnableSetsCookieAndRedirects(t *testing.T) {
	s := newTestSite(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/preview-mode/enable?secret=letmein&redirect=/projects", nil)
	rec := httptest.NewRecorder()
	s.PreviewEnable(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/projects" {
		t.Errorf("redirect to %q", loc)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != preview.CookieName {
		t.Fatalf("session cookie missing: %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be httponly")
	}

	// The issued cookie round-trips into the drafts perspective.
	check := httptest.NewRequest(http.MethodGet, "/", nil)
	check.AddCookie(cookies[0])
	opts := preview.FromRequest(check, testSessionSecret)
	if !opts.Preview || opts.Perspective != preview.PerspectiveDrafts {
		t.Errorf("issued cookie decoded to %+v", opts)
	}
}

func TestPreviewEnableHonorsPerspectiveParam(t *testing.T) {
	s := newTestSite(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/preview-mode/enable?secret=letmein&sanity-preview-perspective=published", nil)
	rec := httptest.NewRecorder()
	s.PreviewEnable(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("session cookie missing: %v", cookies)
	}

	check := httptest.NewRequest(http.MethodGet, "/", nil)
	check.AddCookie(cookies[0])
	opts := preview.FromRequest(check, testSessionSecret)
	if !opts.Preview || opts.Perspective != preview.PerspectivePublished {
		t.Errorf("perspective selection dropped: %+v", opts)
	}
}

func TestPreviewEnableRejectsOffsiteRedirect(t *testing.T) {
	s := newTestSite(&fakeService{})

	for _, target := range []string{"https://evil.test/", "//evil.test/x", ""} {
		req := httptest.NewRequest(http.MethodGet, "/api/preview-mode/enable?secret=letmein&redirect="+target, nil)
		rec := httptest.NewRecorder()
		s.PreviewEnable(rec, req)

		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("redirect %q should collapse to /, got %q", target, loc)
		}
	}
}

func TestPreviewDisableClearsCookie(t *testing.T) {
	s := newTestSite(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/preview-mode/disable", nil)
	rec := httptest.NewRecorder()
	s.PreviewDisable(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status %d, want 302", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("disable should expire the cookie: %v", cookies)
	}
}

func TestStudioShell(t *testing.T) {
	s := newTestSite(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/studio/structure", nil)
	rec := httptest.NewRecorder()
	s.Studio(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `id="studio"`) {
		t.Error("studio mount point missing")
	}
}
