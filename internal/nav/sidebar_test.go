package nav

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func file(name, title string) Entry { return Entry{Name: name, Title: title} }

func dir(name string, children ...Entry) Entry {
	return Entry{Name: name, Dir: true, Children: children}
}

func texts(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestItemsExclusion(t *testing.T) {
	entries := []Entry{
		file("index.md", "Overview"),
		file("notes.md", ""),
		file("image.png", ""),
		file("README", ""),
		file("draft.markdown", ""),
		dir("assets"),
	}
	items := Items(entries, []string{"cat"}, NewCollator(language.English))

	want := []Item{
		{Text: "Assets", Group: true, Collapsed: true, Items: []Item{}},
		{Text: "Notes", Link: "/cat/notes"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Items = %+v, want %+v", items, want)
	}
}

func TestItemsNestedIndexIsExcluded(t *testing.T) {
	entries := []Entry{dir("sub", file("index.md", "Sub Index"), file("page.md", "Page"))}
	items := Items(entries, []string{"cat"}, NewCollator(language.English))
	if len(items) != 1 || len(items[0].Items) != 1 {
		t.Fatalf("unexpected tree: %+v", items)
	}
	if got := items[0].Items[0].Link; got != "/cat/sub/page" {
		t.Errorf("link = %q, want /cat/sub/page", got)
	}
}

func TestItemsTitleFromHeading(t *testing.T) {
	entries := []Entry{file("zz-some-file-name.md", "My Title")}
	items := Items(entries, []string{"c"}, NewCollator(language.English))
	if items[0].Text != "My Title" {
		t.Errorf("text = %q, want heading text", items[0].Text)
	}
	if items[0].Link != "/c/zz-some-file-name" {
		t.Errorf("link = %q", items[0].Link)
	}
}

func TestItemsStripsOnlyLastExtension(t *testing.T) {
	entries := []Entry{file("v1.2-release.md", "")}
	items := Items(entries, []string{"c"}, NewCollator(language.English))
	if items[0].Link != "/c/v1.2-release" {
		t.Errorf("link = %q, want /c/v1.2-release", items[0].Link)
	}
	if items[0].Text != "V1.2 Release" {
		t.Errorf("text = %q, want V1.2 Release", items[0].Text)
	}
}

func TestItemsLocaleOrder(t *testing.T) {
	entries := []Entry{
		file("a.md", "Zebra"),
		file("b.md", "Álvaro"),
		file("c.md", "apple"),
	}
	items := Items(entries, nil, NewCollator(language.English))

	got := texts(items)
	want := []string{"Álvaro", "apple", "Zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestItemsGroupsAndLeavesShareOrder(t *testing.T) {
	entries := []Entry{
		file("b.md", "Beta"),
		dir("alpha-notes", file("x.md", "X")),
		file("c.md", "Charlie"),
	}
	items := Items(entries, []string{"cat"}, NewCollator(language.English))
	want := []string{"Alpha Notes", "Beta", "Charlie"}
	if got := texts(items); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %q, want %q", got, want)
	}
	if !items[0].Group || !items[0].Collapsed {
		t.Errorf("directory should be a collapsed group: %+v", items[0])
	}
}

func TestItemsEmptyDirectory(t *testing.T) {
	items := Items(nil, []string{"cat"}, NewCollator(language.English))
	if items == nil || len(items) != 0 {
		t.Errorf("Items(nil) = %#v, want empty non-nil slice", items)
	}
}

func TestItemsDoesNotAliasPrefix(t *testing.T) {
	prefix := make([]string, 1, 4)
	prefix[0] = "cat"
	entries := []Entry{
		dir("one", file("a.md", "A")),
		dir("two", file("b.md", "B")),
	}
	items := Items(entries, prefix, NewCollator(language.English))
	if got := items[0].Items[0].Link; got != "/cat/one/a" {
		t.Errorf("first group link = %q", got)
	}
	if got := items[1].Items[0].Link; got != "/cat/two/b" {
		t.Errorf("second group link = %q", got)
	}
}
