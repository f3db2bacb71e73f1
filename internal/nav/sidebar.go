package nav

import (
	"slices"
	"strings"
)

const (
	markdownExt = ".md"
	indexPage   = "index.md"
)

// included reports whether an entry belongs in a sidebar listing:
// directories, and markdown files other than the category overview page.
func included(e Entry) bool {
	if e.Dir {
		return true
	}
	return strings.HasSuffix(e.Name, markdownExt) && e.Name != indexPage
}

// slug strips the last extension from a file name.
func slug(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Items builds the sidebar items for entries found at prefix, relative to
// the content root. Directories become collapsed groups built recursively;
// markdown files become links titled by their first heading.
func Items(entries []Entry, prefix []string, c *Collator) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if !included(e) {
			continue
		}
		if e.Dir {
			items = append(items, Item{
				Text:      Humanize(e.Name),
				Group:     true,
				Collapsed: true,
				Items:     Items(e.Children, append(slices.Clip(prefix), e.Name), c),
			})
			continue
		}
		s := slug(e.Name)
		text := e.Title
		if text == "" {
			text = Humanize(s)
		}
		items = append(items, Item{
			Text: text,
			Link: "/" + strings.Join(append(slices.Clip(prefix), s), "/"),
		})
	}
	slices.SortStableFunc(items, func(a, b Item) int {
		return c.Compare(a.Text, b.Text)
	})
	return items
}
