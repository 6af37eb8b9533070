package content

import "errors"

// ErrNotFound is returned when a query for a single document matches
// nothing in the dataset.
var ErrNotFound = errors.New("content: document not found")

// Slug matches the CMS slug object shape ({"current": "..."}).
type Slug struct {
	Current string `json:"current"`
}

// SEO holds the optional per-document metadata overrides.
type SEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

// AssetRef is an opaque reference to an asset in the CMS media library.
type AssetRef struct {
	Ref string `json:"_ref"`
}

// Media is an image field: an asset reference plus optional alt text.
// The concrete URL is produced by the image CDN, never stored here.
type Media struct {
	Asset *AssetRef `json:"asset,omitempty"`
	Alt   string    `json:"alt,omitempty"`
}

// Document is one authored page: metadata plus an ordered block list.
// The frontend never mutates it.
type Document struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	Slug   Slug   `json:"slug"`
	Blocks Blocks `json:"pageBuilder"`
	SEO    *SEO   `json:"seo,omitempty"`
}

// MetaTitle returns the SEO title, falling back to the document title.
func (d *Document) MetaTitle() string {
	if d.SEO != nil && d.SEO.MetaTitle != "" {
		return d.SEO.MetaTitle
	}
	return d.Title
}

// MetaDescription returns the SEO description, or "" when unset.
func (d *Document) MetaDescription() string {
	if d.SEO != nil {
		return d.SEO.MetaDescription
	}
	return ""
}
