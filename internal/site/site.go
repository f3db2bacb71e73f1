// Package site ties configuration, navigation generation and page
// rendering together into one build pass.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brain-hol/notes/internal/contentfs"
	"github.com/brain-hol/notes/internal/nav"
	"github.com/brain-hol/notes/internal/render"
	"github.com/brain-hol/notes/internal/sitemap"
)

// SitemapFile is written to the output directory when base_url is set.
const SitemapFile = "sitemap.xml"

// Generate runs one navigation pass over the configured content root.
func Generate(cfg Config, cwd string) (nav.Result, error) {
	root := cfg.ContentRoot(cwd)
	res, err := contentfs.Generate(os.DirFS(root), cfg.IgnoreSet(cwd))
	if err != nil {
		return nav.Result{}, fmt.Errorf("generate navigation for %s: %w", root, err)
	}
	return res, nil
}

// Build generates the navigation and renders the site into the output
// directory. It is the full restart performed after a content change.
func Build(ctx context.Context, cfg Config, cwd string) (nav.Result, error) {
	start := time.Now()
	root, out := cfg.ContentRoot(cwd), cfg.OutputDir(cwd)
	if err := checkOutputDir(root, out); err != nil {
		return nav.Result{}, err
	}

	res, err := Generate(cfg, cwd)
	if err != nil {
		return nav.Result{}, err
	}

	r, err := render.New(renderOptions(cfg))
	if err != nil {
		return nav.Result{}, err
	}
	pages, err := r.Build(ctx, os.DirFS(root), res, out)
	if err != nil {
		return nav.Result{}, fmt.Errorf("render site: %w", err)
	}

	if cfg.BaseURL != "" {
		if err := writeSitemap(cfg, res, filepath.Join(out, SitemapFile)); err != nil {
			return nav.Result{}, err
		}
	}

	slog.Info("site built", "pages", pages, "categories", len(res.Nav), "out", out, "took", time.Since(start).Round(time.Millisecond))
	return res, nil
}

func renderOptions(cfg Config) render.Options {
	links := make([]render.SocialLink, 0, len(cfg.SocialLinks))
	for _, l := range cfg.SocialLinks {
		links = append(links, render.SocialLink{Icon: l.Icon, Link: l.Link})
	}
	return render.Options{
		SiteTitle:   cfg.Title,
		Description: cfg.Description,
		Base:        cfg.Base,
		Theme:       cfg.Markdown.Theme,
		SocialLinks: links,
	}
}

func writeSitemap(cfg Config, res nav.Result, file string) error {
	routes := sitemap.Routes(res)
	urls := make([]string, 0, len(routes))
	for _, r := range routes {
		urls = append(urls, strings.TrimSuffix(cfg.BaseURL, "/")+render.Href(cfg.Base, r))
	}
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("create sitemap: %w", err)
	}
	if err := sitemap.Write(f, urls, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("write sitemap: %w", err)
	}
	return f.Close()
}

// checkOutputDir refuses output directories that would wipe content when
// cleared.
func checkOutputDir(root, out string) error {
	rel, err := filepath.Rel(out, root)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf("%w: out_dir %s contains the content root %s", ErrInvalidConfig, out, root)
	}
	return nil
}
