package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeNotes(t *testing.T, root string) {
	t.Helper()
	files := map[string]string{
		"notes.yaml":                                    "title: Brian's Notes\nbase: /notes/\nignore: [.git, node_modules]\n",
		"ping-aic/index.md":                             "# Ping AIC\n",
		"ping-aic/node-notes/identify-existing-user.md": "# Identify Existing User\n",
		"ping-aic/postman-service-account-auth.md":      "# Postman Service Account\n",
		"linux/service-accounts.md":                     "notes without a heading\n",
	}
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	writeNotes(t, dir)
	chdir(t, dir)

	var out bytes.Buffer
	if err := run([]string{"generate"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var got struct {
		Nav     []map[string]string       `json:"nav"`
		Sidebar map[string]json.RawMessage `json:"sidebar"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got.Nav) != 2 || got.Nav[0]["text"] != "Linux" || got.Nav[1]["link"] != "/ping-aic/" {
		t.Errorf("nav = %v", got.Nav)
	}
	if !strings.Contains(string(got.Sidebar["/linux/"]), `"Service Accounts"`) {
		t.Errorf("/linux/ sidebar = %s", got.Sidebar["/linux/"])
	}
	if strings.Index(out.String(), `"/linux/": [`) > strings.Index(out.String(), `"/ping-aic/": [`) {
		t.Error("sidebar keys out of category order")
	}
}

func TestRunTree(t *testing.T) {
	dir := t.TempDir()
	writeNotes(t, dir)
	chdir(t, dir)

	var out bytes.Buffer
	if err := run([]string{"tree"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Brian's Notes\n") {
		t.Errorf("tree root missing:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Identify Existing User -> /ping-aic/node-notes/identify-existing-user") {
		t.Errorf("tree missing leaf:\n%s", out.String())
	}
}

func TestRunBuild(t *testing.T) {
	dir := t.TempDir()
	writeNotes(t, dir)
	chdir(t, dir)

	if err := run([]string{"build"}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".site", "ping-aic", "postman-service-account-auth.html")); err != nil {
		t.Errorf("page not rendered: %v", err)
	}
}

func TestRunMissingConfig(t *testing.T) {
	chdir(t, t.TempDir())
	err := run([]string{"generate", "-config", "missing.yaml"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Fatalf("err = %v, want config not found", err)
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"serve"}},
		{"unknown flag", []string{"generate", "-nope"}},
		{"extra argument", []string{"build", "docs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &bytes.Buffer{})
			var ue usageError
			if !errors.As(err, &ue) {
				t.Errorf("err = %v, want usageError", err)
			}
		})
	}
}

func TestSiteHandler(t *testing.T) {
	out := t.TempDir()
	if err := os.MkdirAll(filepath.Join(out, "linux"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "linux", "service-accounts.html"), []byte("<h1>Service Accounts</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := siteHandler("/notes/", out)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes/linux/service-accounts.html", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Service Accounts") {
		t.Errorf("GET page = %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/notes/" {
		t.Errorf("GET / = %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
