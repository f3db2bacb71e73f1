package nav

import (
	"bytes"
	"encoding/json"
)

// Entry is one node of a content snapshot: a directory with its children,
// or a file. Title holds the first top-level heading of a markdown file and
// is empty when the file has none.
type Entry struct {
	Name     string
	Dir      bool
	Title    string
	Children []Entry
}

// Item represents a node in the sidebar tree
type Item struct {
	Text      string
	Link      string
	Group     bool
	Collapsed bool
	Items     []Item
}

// MarshalJSON encodes groups as {text, collapsed, items} and leaves as {text, link}.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Group {
		items := it.Items
		if items == nil {
			items = []Item{}
		}
		return json.Marshal(struct {
			Text      string `json:"text"`
			Collapsed bool   `json:"collapsed"`
			Items     []Item `json:"items"`
		}{it.Text, it.Collapsed, items})
	}
	return json.Marshal(struct {
		Text string `json:"text"`
		Link string `json:"link"`
	}{it.Text, it.Link})
}

// Link is a top-level navigation entry, one per category.
type Link struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// Section is the sidebar of a single category.
type Section struct {
	Prefix string
	Items  []Item
}

// Sidebar maps category route prefixes to their items, in category order.
type Sidebar struct {
	Sections []Section
}

// Lookup returns the items registered under prefix.
func (s Sidebar) Lookup(prefix string) ([]Item, bool) {
	for _, sec := range s.Sections {
		if sec.Prefix == prefix {
			return sec.Items, true
		}
	}
	return nil, false
}

// Prefixes lists the section keys in order.
func (s Sidebar) Prefixes() []string {
	out := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		out = append(out, sec.Prefix)
	}
	return out
}

// MarshalJSON writes the sidebar as a JSON object keeping section order.
func (s Sidebar) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range s.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(sec.Prefix)
		if err != nil {
			return nil, err
		}
		items := sec.Items
		if items == nil {
			items = []Item{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the output of one generation pass.
type Result struct {
	Nav     []Link  `json:"nav"`
	Sidebar Sidebar `json:"sidebar"`
}

// Leaves returns the links of every leaf item under items, depth first.
func Leaves(items []Item) []string {
	var out []string
	for _, it := range items {
		if it.Group {
			out = append(out, Leaves(it.Items)...)
			continue
		}
		out = append(out, it.Link)
	}
	return out
}
