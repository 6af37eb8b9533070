package markdown

import (
	"strings"
	"testing"
)

func TestRenderBasics(t *testing.T) {
	out, err := Render("## Process\n\nWe start with a *previz* pass.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<h2 id=\"process\">Process</h2>") {
		t.Errorf("heading with auto id missing:\n%s", html)
	}
	if !strings.Contains(html, "<em>previz</em>") {
		t.Errorf("emphasis missing:\n%s", html)
	}
}

func TestRenderGFMTable(t *testing.T) {
	out, err := Render("| Stage | Weeks |\n| --- | --- |\n| Previz | 2 |")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Errorf("GFM table not rendered:\n%s", out)
	}
}

func TestRenderEscapesRawHTML(t *testing.T) {
	out, err := Render("hello <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("raw HTML must not pass through:\n%s", out)
	}
}
