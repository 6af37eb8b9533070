package blocks

import "slices"

// Interaction state for the stateful blocks, modeled as plain values.
// The renderers use these to turn the current request's query string
// into the set of links that perform each transition, so the same
// machines drive both the no-script navigation and the tests.

// Accordion tracks the open FAQ items. With AllowMultiple unset it
// behaves like a radio group: opening one item closes the rest.
type Accordion struct {
	AllowMultiple bool

	open []string
}

// NewAccordion starts with every item closed.
func NewAccordion(allowMultiple bool, open ...string) Accordion {
	a := Accordion{AllowMultiple: allowMultiple}
	for _, key := range open {
		a.Toggle(key)
	}
	return a
}

func (a *Accordion) IsOpen(key string) bool {
	return slices.Contains(a.open, key)
}

func (a *Accordion) Open() []string {
	return slices.Clone(a.open)
}

// Toggle flips one item. Radio semantics close every other item first;
// independent semantics leave them untouched.
func (a *Accordion) Toggle(key string) {
	if a.AllowMultiple {
		if i := slices.Index(a.open, key); i >= 0 {
			a.open = slices.Delete(a.open, i, i+1)
		} else {
			a.open = append(a.open, key)
		}
		return
	}

	if a.IsOpen(key) {
		a.open = nil
	} else {
		a.open = []string{key}
	}
}

// Toggled returns the open set after toggling key, without mutating.
func (a Accordion) Toggled(key string) []string {
	next := Accordion{AllowMultiple: a.AllowMultiple, open: slices.Clone(a.open)}
	next.Toggle(key)
	return next.open
}

// Lightbox tracks the active image index over a fixed item count, or
// no active image at all. Next and Prev wrap circularly.
type Lightbox struct {
	count int
	index int
}

func NewLightbox(count int) Lightbox {
	return Lightbox{count: count, index: -1}
}

// OpenAt activates the item at i. Out-of-range indexes are ignored.
func (l *Lightbox) OpenAt(i int) {
	if i >= 0 && i < l.count {
		l.index = i
	}
}

func (l *Lightbox) Close() {
	l.index = -1
}

func (l *Lightbox) Next() {
	if l.index >= 0 && l.count > 0 {
		l.index = (l.index + 1) % l.count
	}
}

func (l *Lightbox) Prev() {
	if l.index >= 0 && l.count > 0 {
		l.index = (l.index - 1 + l.count) % l.count
	}
}

// Active reports the open index, if any.
func (l Lightbox) Active() (int, bool) {
	return l.index, l.index >= 0
}

// HasNav reports whether next/previous controls make sense.
func (l Lightbox) HasNav() bool {
	return l.count > 1
}

// FilterAll is the sentinel option that shows every item.
const FilterAll = "all"

// Filter is the gallery category filter. Options are the distinct
// non-empty categories in first-appearance order.
type Filter struct {
	options []string
	active  string
}

func NewFilter(categories []string) Filter {
	f := Filter{active: FilterAll}
	for _, c := range categories {
		if c == "" || slices.Contains(f.options, c) {
			continue
		}
		f.options = append(f.options, c)
	}
	return f
}

func (f Filter) Options() []string {
	return slices.Clone(f.options)
}

func (f Filter) Active() string {
	return f.active
}

// Select activates a category. Unknown values fall back to showing
// everything rather than an empty gallery.
func (f *Filter) Select(category string) {
	if slices.Contains(f.options, category) {
		f.active = category
	} else {
		f.active = FilterAll
	}
}

// Matches reports whether an item with the given category is visible.
func (f Filter) Matches(category string) bool {
	return f.active == FilterAll || f.active == category
}
