// Package nav derives site navigation from a snapshot of a notes folder.
//
// Top-level directories are categories. Each category yields one nav link
// and one sidebar section; inside a category, directories become collapsed
// groups and markdown files become links titled by their first heading.
// Everything here is a pure function of the snapshot; reading the
// filesystem is left to package contentfs.
package nav

import (
	"slices"

	"golang.org/x/text/language"
)

// IgnoreSet holds directory names that are never treated as categories.
type IgnoreSet map[string]struct{}

// NewIgnoreSet returns a set holding names.
func NewIgnoreSet(names ...string) IgnoreSet {
	s := make(IgnoreSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is ignored. A nil set ignores nothing.
func (s IgnoreSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Categories lists the directories of root not in ignore, in plain
// byte-wise order.
func Categories(root []Entry, ignore IgnoreSet) []string {
	var out []string
	for _, e := range root {
		if e.Dir && !ignore.Has(e.Name) {
			out = append(out, e.Name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Prefix is the route prefix of a category.
func Prefix(category string) string {
	return "/" + category + "/"
}

// BuildNav returns one link per category.
func BuildNav(root []Entry, ignore IgnoreSet) []Link {
	cats := Categories(root, ignore)
	links := make([]Link, 0, len(cats))
	for _, cat := range cats {
		links = append(links, Link{Text: Humanize(cat), Link: Prefix(cat)})
	}
	return links
}

// BuildSidebar returns one section per category, keyed by its route prefix.
func BuildSidebar(root []Entry, ignore IgnoreSet) Sidebar {
	c := NewCollator(language.English)
	cats := Categories(root, ignore)
	sb := Sidebar{Sections: make([]Section, 0, len(cats))}
	for _, cat := range cats {
		e, _ := find(root, cat)
		sb.Sections = append(sb.Sections, Section{
			Prefix: Prefix(cat),
			Items:  Items(e.Children, []string{cat}, c),
		})
	}
	return sb
}

// Generate computes the nav and sidebar for a snapshot.
func Generate(root []Entry, ignore IgnoreSet) Result {
	return Result{
		Nav:     BuildNav(root, ignore),
		Sidebar: BuildSidebar(root, ignore),
	}
}

func find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Dir && e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
