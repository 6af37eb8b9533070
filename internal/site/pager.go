package site

// Pager answers "is there another slice, and which one" for the
// load-more listings. Ranges are half-open [start, end) in item
// indexes, matching the CMS slice syntax.
type Pager struct {
	Total   int
	PerPage int
}

// HasMore reports whether items remain beyond the first shown ones.
func (p Pager) HasMore(shown int) bool {
	return shown < p.Total
}

// NextRange returns the slice bounds for the next page after shown
// items. The last slice stops at Total, so a short tail comes back
// short rather than padded or refused.
func (p Pager) NextRange(shown int) (start, end int) {
	start = shown
	end = shown + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}
