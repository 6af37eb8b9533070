package site

import "testing"

func TestSlugFromPath(t *testing.T) {
	cases := map[string]string{
		"/":                  "/",
		"":                   "/",
		"/about":             "about",
		"/about/":            "about",
		"/services/motion":   "services/motion",
		"//services/motion/": "services/motion",
	}
	for path, want := range cases {
		if got := slugFromPath(path); got != want {
			t.Errorf("slugFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}
