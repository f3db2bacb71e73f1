// Package render turns a notes folder into static HTML pages that carry
// the generated navigation.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/brain-hol/notes/internal/nav"
)

// NavFile is written to the output directory and holds the generated
// nav and sidebar.
const NavFile = "nav.json"

// Options configures a Renderer.
type Options struct {
	SiteTitle   string
	Description string
	Base        string
	Theme       string
	SocialLinks []SocialLink
}

// SocialLink is an icon link in the page header.
type SocialLink struct {
	Icon string
	Link string
}

// Renderer converts markdown pages to HTML.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
	tpl  *template.Template
}

// New returns a Renderer for opts.
func New(opts Options) (*Renderer, error) {
	if opts.Base == "" {
		opts.Base = "/"
	}
	if opts.Theme == "" {
		opts.Theme = "nord"
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
			highlighting.NewHighlighting(
				highlighting.WithStyle(opts.Theme),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
	)
	tpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{opts: opts, md: md, tpl: tpl}, nil
}

// Href maps a route to the URL of its generated file under base.
// Directory routes resolve to their index page.
func Href(base, route string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	rel := strings.TrimPrefix(route, "/")
	if rel == "" || strings.HasSuffix(rel, "/") {
		return base + rel
	}
	return base + rel + ".html"
}

// Source is a page to render. A Source without a Path is a generated
// category landing page listing the category sidebar.
type Source struct {
	Path     string // slash-separated path relative to the content root
	Route    string
	Category string
}

// Sources lists the pages reachable from res: the home page, one landing
// page per category and every sidebar leaf. Home and landing pages use the
// matching index.md when there is one. Deriving the list from res keeps the
// rendered pages in step with the links the navigation points at.
func Sources(fsys fs.FS, res nav.Result) ([]Source, error) {
	home := Source{Route: "/"}
	if exists(fsys, "index.md") {
		home.Path = "index.md"
	}
	out := []Source{home}
	for _, l := range res.Nav {
		cat := strings.Trim(l.Link, "/")
		landing := Source{Route: l.Link, Category: cat}
		if p := cat + "/index.md"; exists(fsys, p) {
			landing.Path = p
		}
		out = append(out, landing)

		items, _ := res.Sidebar.Lookup(l.Link)
		for _, leaf := range nav.Leaves(items) {
			p := strings.TrimPrefix(leaf, "/") + ".md"
			if !fs.ValidPath(p) {
				return nil, fmt.Errorf("invalid page path %q", p)
			}
			out = append(out, Source{Path: p, Route: leaf, Category: cat})
		}
	}
	return out, nil
}

func exists(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && !info.IsDir()
}

// Build clears outDir and renders every page of fsys into it, followed by
// NavFile. It returns the number of pages written.
func (r *Renderer) Build(ctx context.Context, fsys fs.FS, res nav.Result, outDir string) (int, error) {
	sources, err := Sources(fsys, res)
	if err != nil {
		return 0, err
	}

	if err := os.RemoveAll(outDir); err != nil {
		return 0, fmt.Errorf("clear output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := r.renderPage(fsys, src, res, outDir); err != nil {
			return 0, err
		}
		slog.Debug("rendered page", "route", src.Route)
	}

	if err := writeNav(filepath.Join(outDir, NavFile), res); err != nil {
		return 0, err
	}
	return len(sources), nil
}

func (r *Renderer) renderPage(fsys fs.FS, src Source, res nav.Result, outDir string) error {
	items, _ := res.Sidebar.Lookup(nav.Prefix(src.Category))
	sidebar, _ := r.sidebar(items, src.Route)
	pg := Page{
		SiteTitle:   r.opts.SiteTitle,
		Description: r.opts.Description,
		Home:        r.opts.Base,
		Nav:         r.navLinks(res.Nav, src.Category),
		Sidebar:     sidebar,
		SocialLinks: r.opts.SocialLinks,
	}

	switch {
	case src.Path == "" && src.Category == "":
		pg.Title = r.opts.SiteTitle
		pg.Listing = r.categoryList(res.Nav)
	case src.Path == "":
		pg.Title = nav.Humanize(src.Category)
		pg.Listing = sidebar
	default:
		source, err := fs.ReadFile(fsys, src.Path)
		if err != nil {
			return fmt.Errorf("read page %s: %w", src.Path, err)
		}
		var buf bytes.Buffer
		pc := parser.NewContext()
		if err := r.md.Convert(source, &buf, parser.WithContext(pc)); err != nil {
			return fmt.Errorf("convert %s: %w", src.Path, err)
		}
		pg.Title = r.pageTitle(src, source, meta.Get(pc))
		pg.Content = template.HTML(buf.String())
	}
	pg.Generated = src.Path == ""

	out := filepath.Join(outDir, filepath.FromSlash(strings.TrimPrefix(Href("/", src.Route), "/")))
	if strings.HasSuffix(src.Route, "/") {
		out = filepath.Join(out, "index.html")
	}
	return r.writePage(out, pg)
}

// pageTitle prefers a frontmatter title, then the first heading, then the
// humanized file name.
func (r *Renderer) pageTitle(src Source, source []byte, fm map[string]interface{}) string {
	if t, ok := fm["title"].(string); ok && t != "" {
		return t
	}
	if t, ok := nav.Title(source); ok {
		return t
	}
	if src.Category == "" {
		return r.opts.SiteTitle
	}
	name := path.Base(src.Path)
	if name == "index.md" {
		name = path.Base(path.Dir(src.Path))
	}
	return nav.Humanize(strings.TrimSuffix(name, path.Ext(name)))
}

func (r *Renderer) writePage(out string, pg Page) error {
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create page directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create page %s: %w", out, err)
	}
	if err := r.tpl.Execute(f, pg); err != nil {
		f.Close()
		return fmt.Errorf("execute template for %s: %w", out, err)
	}
	return f.Close()
}

func writeNav(file string, res nav.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode navigation: %w", err)
	}
	if err := os.WriteFile(file, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}
