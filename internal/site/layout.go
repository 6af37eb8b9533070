package site

import (
	"html/template"
	"strings"
	"time"

	"github.com/darko-kalany/studio/internal/content"
)

const shellTmpl = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
{{- if .Preview}}
<div class="preview-banner">Preview mode <a href="/api/preview-mode/disable">Exit</a></div>
{{- end}}
<header class="site-header">
<div class="container">
<a class="site-logo" href="/">{{.SiteName}}</a>
<nav class="site-nav">
{{- range .Nav}}
<a href="{{.Link}}"{{if .Active}} class="nav-active" aria-current="page"{{end}}>{{.Label}}</a>
{{- end}}
<a class="btn btn-primary nav-cta" href="{{.CTALink}}">{{.CTAText}}</a>
</nav>
<button class="menu-toggle" data-menu-toggle aria-label="Open menu" aria-expanded="false">&#9776;</button>
</div>
</header>
<main class="site-main">
{{.Body}}
</main>
<footer class="site-footer">
<div class="container footer-grid">
<div class="footer-brand">
<h3>{{.SiteName}}</h3>
<p>{{.Tagline}}</p>
</div>
<div class="footer-col">
<h4>Menu</h4>
<ul>
{{- range .MenuLinks}}
<li><a href="{{.Link}}">{{.Label}}</a></li>
{{- end}}
</ul>
</div>
<div class="footer-col">
<h4>Studio</h4>
<ul>
{{- range .StudioLinks}}
<li><a href="{{.Link}}">{{.Label}}</a></li>
{{- end}}
</ul>
</div>
<div class="footer-col">
<h4>Connect</h4>
<a class="footer-email" href="mailto:{{.ContactEmail}}">{{.ContactEmail}}</a>
</div>
</div>
<div class="container footer-bottom">
<p>{{.Copyright}}</p>
<p>{{.DesignCredit}}</p>
</div>
</footer>
<script src="/static/site.js" defer></script>
</body>
</html>
`

var shellTemplate = template.Must(template.New("shell").Parse(shellTmpl))

type navLink struct {
	Label  string
	Link   string
	Active bool
}

type shellView struct {
	Title        string
	Description  string
	SiteName     string
	Preview      bool
	Nav          []navLink
	CTAText      string
	CTALink      string
	Body         template.HTML
	Tagline      string
	MenuLinks    []content.FooterLink
	StudioLinks  []content.FooterLink
	ContactEmail string
	Copyright    string
	DesignCredit string
}

var defaultNavItems = []content.NavItem{
	{Key: "1", Label: "Home", Link: "/"},
	{Key: "2", Label: "Portfolio", Link: "/portfolio"},
	{Key: "3", Label: "Services", Link: "/services"},
	{Key: "4", Label: "Projects", Link: "/projects"},
	{Key: "5", Label: "About", Link: "/about"},
	{Key: "6", Label: "Pricing", Link: "/pricing"},
	{Key: "7", Label: "Contact", Link: "/contact"},
}

var defaultMenuLinks = []content.FooterLink{
	{Key: "1", Label: "Home", Link: "/"},
	{Key: "2", Label: "Portfolio", Link: "/portfolio"},
	{Key: "3", Label: "Services", Link: "/services"},
	{Key: "4", Label: "Projects", Link: "/projects"},
}

var defaultStudioLinks = []content.FooterLink{
	{Key: "1", Label: "About", Link: "/about"},
	{Key: "2", Label: "Pricing", Link: "/pricing"},
	{Key: "3", Label: "Contact", Link: "/contact"},
}

// navActive marks the link matching the current path: exact for "/",
// prefix for everything else.
func navActive(link, path string) bool {
	if link == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, link)
}

func buildShell(layout *content.Layout, path string, preview bool) shellView {
	if layout == nil {
		layout = &content.Layout{}
	}

	v := shellView{
		SiteName:     "Darko Kalany",
		Preview:      preview,
		CTAText:      "Work With Us",
		CTALink:      "/contact",
		Tagline:      "Hyper-real AI photography & film for the world's most exclusive brands.",
		MenuLinks:    defaultMenuLinks,
		StudioLinks:  defaultStudioLinks,
		ContactEmail: "hello@darkokalany.com",
		DesignCredit: "Designed by System",
	}

	if s := layout.Settings; s != nil {
		if s.SiteName != "" {
			v.SiteName = s.SiteName
		}
		if s.ContactEmail != "" {
			v.ContactEmail = s.ContactEmail
		}
	}

	items := defaultNavItems
	if n := layout.Navigation; n != nil {
		if len(n.Items) > 0 {
			items = n.Items
		}
		if n.CTAText != "" {
			v.CTAText = n.CTAText
		}
		if n.CTALink != "" {
			v.CTALink = n.CTALink
		}
	}
	v.Nav = make([]navLink, len(items))
	for i, item := range items {
		v.Nav[i] = navLink{Label: item.Label, Link: item.Link, Active: navActive(item.Link, path)}
	}

	copyright := "© {year} Darko Kalany Studio. All rights reserved."
	if f := layout.Footer; f != nil {
		if f.Tagline != "" {
			v.Tagline = f.Tagline
		}
		if len(f.MenuLinks) > 0 {
			v.MenuLinks = f.MenuLinks
		}
		if len(f.StudioLinks) > 0 {
			v.StudioLinks = f.StudioLinks
		}
		if f.Copyright != "" {
			copyright = f.Copyright
		}
		if f.DesignCredit != "" {
			v.DesignCredit = f.DesignCredit
		}
	}
	v.Copyright = strings.ReplaceAll(copyright, "{year}", time.Now().Format("2006"))

	return v
}
