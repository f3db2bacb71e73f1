// Package sitemap writes sitemaps.org XML for the generated pages.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/brain-hol/notes/internal/nav"
)

// Routes lists the home page, every category page and every sidebar leaf,
// without duplicates, in navigation order.
func Routes(res nav.Result) []string {
	seen := map[string]bool{"/": true}
	routes := []string{"/"}
	add := func(r string) {
		if !seen[r] {
			seen[r] = true
			routes = append(routes, r)
		}
	}
	for _, l := range res.Nav {
		add(l.Link)
		items, _ := res.Sidebar.Lookup(l.Link)
		for _, leaf := range nav.Leaves(items) {
			add(leaf)
		}
	}
	return routes
}

// Write writes a urlset holding one entry per URL.
func Write(w io.Writer, urls []string, lastmod time.Time) error {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	day := lastmod.Format("2006-01-02")
	for _, u := range urls {
		buf.WriteString("  <url>\n")
		buf.WriteString("    <loc>")
		if err := xml.EscapeText(&buf, []byte(u)); err != nil {
			return fmt.Errorf("escape %s: %w", u, err)
		}
		buf.WriteString("</loc>\n")
		fmt.Fprintf(&buf, "    <lastmod>%s</lastmod>\n", day)
		buf.WriteString("    <changefreq>weekly</changefreq>\n")
		buf.WriteString("  </url>\n")
	}
	buf.WriteString("</urlset>\n")
	_, err := w.Write(buf.Bytes())
	return err
}
