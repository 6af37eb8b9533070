package sanity

import (
	"fmt"
	"strings"

	"github.com/darko-kalany/studio/internal/content"
)

// Asset references look like image-<id>-<WxH>-<format>. The CDN URL is
// assembled from the pieces; transform params are plain query values.

const defaultQuality = 80

// ImageURL resolves a media reference to a CDN URL with the requested
// crop. A missing or malformed reference falls back to a placeholder
// so a broken asset never breaks the layout.
func (c *Client) ImageURL(m content.Media, w, h int) string {
	return ImageURL(c.cfg.ProjectID, c.cfg.Dataset, m, w, h)
}

func ImageURL(projectID, dataset string, m content.Media, w, h int) string {
	if m.Asset == nil {
		return placeholderURL(w, h)
	}

	id, dims, format, ok := parseAssetRef(m.Asset.Ref)
	if !ok {
		return placeholderURL(w, h)
	}

	return fmt.Sprintf(
		"https://cdn.sanity.io/images/%s/%s/%s-%s.%s?w=%d&h=%d&q=%d&fit=crop&auto=format",
		projectID, dataset, id, dims, format, w, h, defaultQuality,
	)
}

func parseAssetRef(ref string) (id, dims, format string, ok bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", "", "", false
	}
	return parts[1], parts[2], parts[3], true
}

func placeholderURL(w, h int) string {
	if w <= 0 {
		w = 1200
	}
	if h <= 0 {
		h = 800
	}
	return fmt.Sprintf("https://picsum.photos/%d/%d", w, h)
}
