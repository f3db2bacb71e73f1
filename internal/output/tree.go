// Package output formats generated navigation for the terminal.
package output

import (
	"github.com/disiqueira/gotree/v3"

	"github.com/brain-hol/notes/internal/nav"
)

const (
	bold  = "\033[1m"
	reset = "\033[0m"
)

// Tree renders the sidebar of every category as a text tree rooted at
// rootLabel. Groups are printed bold when color is set.
func Tree(rootLabel string, res nav.Result, color bool) string {
	t := gotree.New(rootLabel)
	for _, l := range res.Nav {
		cat := t.Add(label(l.Text+" ("+l.Link+")", color))
		items, _ := res.Sidebar.Lookup(l.Link)
		addItems(cat, items, color)
	}
	return t.Print()
}

func addItems(parent gotree.Tree, items []nav.Item, color bool) {
	for _, it := range items {
		if it.Group {
			addItems(parent.Add(label(it.Text, color)), it.Items, color)
			continue
		}
		parent.Add(it.Text + " -> " + it.Link)
	}
}

func label(s string, color bool) string {
	if !color {
		return s
	}
	return bold + s + reset
}
