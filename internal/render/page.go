package render

import (
	"html/template"

	"github.com/brain-hol/notes/internal/nav"
)

// Page is the data handed to the page template.
type Page struct {
	SiteTitle   string
	Description string
	Title       string
	Home        string
	Content     template.HTML
	Generated   bool // no markdown source; the page shows Listing
	Listing     []SideItem
	Nav         []NavLink
	Sidebar     []SideItem
	SocialLinks []SocialLink
}

// NavLink is a top bar link.
type NavLink struct {
	Text   string
	Href   string
	Active bool
}

// SideItem is a sidebar entry resolved for one page. Groups holding the
// current page are rendered open.
type SideItem struct {
	Text   string
	Href   string
	Group  bool
	Open   bool
	Active bool
	Items  []SideItem
}

func (r *Renderer) navLinks(links []nav.Link, category string) []NavLink {
	out := make([]NavLink, 0, len(links))
	for _, l := range links {
		out = append(out, NavLink{
			Text:   l.Text,
			Href:   Href(r.opts.Base, l.Link),
			Active: category != "" && l.Link == nav.Prefix(category),
		})
	}
	return out
}

// categoryList lists the categories for a generated home page.
func (r *Renderer) categoryList(links []nav.Link) []SideItem {
	out := make([]SideItem, 0, len(links))
	for _, l := range links {
		out = append(out, SideItem{Text: l.Text, Href: Href(r.opts.Base, l.Link)})
	}
	return out
}

// sidebar resolves items for the page at route and reports whether the
// page was found among them.
func (r *Renderer) sidebar(items []nav.Item, route string) ([]SideItem, bool) {
	out := make([]SideItem, 0, len(items))
	found := false
	for _, it := range items {
		if it.Group {
			children, ok := r.sidebar(it.Items, route)
			out = append(out, SideItem{
				Text:  it.Text,
				Group: true,
				Open:  ok || !it.Collapsed,
				Items: children,
			})
			found = found || ok
			continue
		}
		active := it.Link == route
		out = append(out, SideItem{
			Text:   it.Text,
			Href:   Href(r.opts.Base, it.Link),
			Active: active,
		})
		found = found || active
	}
	return out, found
}
