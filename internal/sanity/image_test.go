package sanity

import (
	"testing"

	"github.com/darko-kalany/studio/internal/content"
)

func TestImageURLFromRef(t *testing.T) {
	m := content.Media{Asset: &content.AssetRef{Ref: "image-abc123-1920x1080-jpg"}}

	got := ImageURL("2gj8du3t", "production", m, 1200, 800)
	want := "https://cdn.sanity.io/images/2gj8du3t/production/abc123-1920x1080.jpg?w=1200&h=800&q=80&fit=crop&auto=format"

	if got != want {
		t.Errorf("ImageURL = %s, want %s", got, want)
	}
}

func TestImageURLMissingAsset(t *testing.T) {
	got := ImageURL("2gj8du3t", "production", content.Media{}, 800, 600)
	want := "https://picsum.photos/800/600"

	if got != want {
		t.Errorf("ImageURL = %s, want %s", got, want)
	}
}

func TestImageURLMalformedRef(t *testing.T) {
	cases := []string{
		"",
		"image-abc123",
		"file-abc123-1920x1080-jpg",
		"not-a-ref",
	}

	for _, ref := range cases {
		m := content.Media{Asset: &content.AssetRef{Ref: ref}}
		got := ImageURL("p", "d", m, 400, 300)
		if got != "https://picsum.photos/400/300" {
			t.Errorf("ref %q: expected placeholder, got %s", ref, got)
		}
	}
}

func TestImageURLZeroDimensionsPlaceholder(t *testing.T) {
	got := ImageURL("p", "d", content.Media{}, 0, 0)
	if got != "https://picsum.photos/1200/800" {
		t.Errorf("expected default placeholder size, got %s", got)
	}
}
