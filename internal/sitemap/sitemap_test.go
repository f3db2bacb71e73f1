package sitemap

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/brain-hol/notes/internal/nav"
)

func TestRoutes(t *testing.T) {
	res := nav.Result{
		Nav: []nav.Link{{Text: "Linux", Link: "/linux/"}, {Text: "Ping Aic", Link: "/ping-aic/"}},
		Sidebar: nav.Sidebar{Sections: []nav.Section{
			{Prefix: "/linux/", Items: []nav.Item{{Text: "Service Accounts", Link: "/linux/service-accounts"}}},
			{Prefix: "/ping-aic/", Items: []nav.Item{
				{Text: "Node Notes", Group: true, Collapsed: true, Items: []nav.Item{
					{Text: "Identify", Link: "/ping-aic/node-notes/identify-existing-user"},
				}},
				{Text: "Postman", Link: "/ping-aic/postman-service-account-auth"},
			}},
		}},
	}
	want := []string{
		"/",
		"/linux/",
		"/linux/service-accounts",
		"/ping-aic/",
		"/ping-aic/node-notes/identify-existing-user",
		"/ping-aic/postman-service-account-auth",
	}
	if got := Routes(res); !reflect.DeepEqual(got, want) {
		t.Errorf("Routes = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	day := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	if err := Write(&buf, []string{"https://example.com/notes/", "https://example.com/notes/a&b.html"}, day); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://example.com/notes/</loc>",
		"<loc>https://example.com/notes/a&amp;b.html</loc>",
		"<lastmod>2024-03-09</lastmod>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sitemap missing %q\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<url>"); n != 2 {
		t.Errorf("got %d <url> entries, want 2", n)
	}
}
