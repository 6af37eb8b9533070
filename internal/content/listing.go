package content

// Category and Tag are taxonomy references, expanded in the query
// projection to their title/slug.
type Category struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  Slug   `json:"slug"`
}

type Tag struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  Slug   `json:"slug"`
}

// ProjectSummary is the list/card shape for a project.
type ProjectSummary struct {
	ID            string     `json:"_id"`
	Title         string     `json:"title"`
	Slug          Slug       `json:"slug"`
	Excerpt       string     `json:"excerpt,omitempty"`
	FeaturedImage *Media     `json:"featuredImage,omitempty"`
	Client        string     `json:"client,omitempty"`
	Year          string     `json:"year,omitempty"`
	Featured      bool       `json:"featured,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
}

// Project is the full detail shape for a case study.
type Project struct {
	ProjectSummary
	Gallery  []GalleryImage `json:"gallery,omitempty"`
	Content  string         `json:"content,omitempty"` // markdown body
	Services []string       `json:"services,omitempty"`
	URL      string         `json:"url,omitempty"`
	Tags     []Tag          `json:"tags,omitempty"`
	SEO      *SEO           `json:"seo,omitempty"`
}

// PostSummary is the list/card shape for a blog post.
type PostSummary struct {
	ID            string     `json:"_id"`
	Title         string     `json:"title"`
	Slug          Slug       `json:"slug"`
	Excerpt       string     `json:"excerpt,omitempty"`
	FeaturedImage *Media     `json:"featuredImage,omitempty"`
	PublishedAt   string     `json:"publishedAt,omitempty"`
	Author        string     `json:"author,omitempty"`
	Categories    []Category `json:"categories,omitempty"`
}

// Post is the full detail shape for a blog post.
type Post struct {
	PostSummary
	Content string `json:"content,omitempty"` // markdown body
	Tags    []Tag  `json:"tags,omitempty"`
	SEO     *SEO   `json:"seo,omitempty"`
}

// SiteSettings is the settings singleton.
type SiteSettings struct {
	SiteName        string `json:"siteName,omitempty"`
	SiteDescription string `json:"siteDescription,omitempty"`
	Logo            *Media `json:"logo,omitempty"`
	ContactEmail    string `json:"contactEmail,omitempty"`
	ContactPhone    string `json:"contactPhone,omitempty"`
	ContactAddress  string `json:"contactAddress,omitempty"`
	ProjectsPerPage int    `json:"projectsPerPage,omitempty"`
	PostsPerPage    int    `json:"postsPerPage,omitempty"`
}

// NavItem is one header navigation entry, optionally with children.
type NavItem struct {
	Key      string    `json:"_key"`
	Label    string    `json:"label"`
	Link     string    `json:"link"`
	Children []NavItem `json:"children,omitempty"`
}

// Navigation is the header navigation singleton.
type Navigation struct {
	Items   []NavItem `json:"items,omitempty"`
	CTAText string    `json:"ctaText,omitempty"`
	CTALink string    `json:"ctaLink,omitempty"`
}

// FooterLink is one footer column entry.
type FooterLink struct {
	Key   string `json:"_key"`
	Label string `json:"label"`
	Link  string `json:"link"`
}

// Footer is the footer singleton.
type Footer struct {
	Tagline      string       `json:"tagline,omitempty"`
	MenuLinks    []FooterLink `json:"menuLinks,omitempty"`
	StudioLinks  []FooterLink `json:"studioLinks,omitempty"`
	Copyright    string       `json:"copyright,omitempty"`
	DesignCredit string       `json:"designCredit,omitempty"`
}

// Layout bundles the three site-wide singletons resolved by one query.
type Layout struct {
	Settings   *SiteSettings `json:"settings,omitempty"`
	Navigation *Navigation   `json:"navigation,omitempty"`
	Footer     *Footer       `json:"footer,omitempty"`
}
