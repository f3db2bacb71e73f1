package site

import (
	"encoding/json"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/brain-hol/notes/internal/nav"
)

// Diff returns a unified diff between the navigation of two passes, or ""
// when nothing changed.
func Diff(prev, next nav.Result) (string, error) {
	a, err := json.MarshalIndent(prev, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode previous navigation: %w", err)
	}
	b, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode navigation: %w", err)
	}
	if string(a) == string(b) {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a) + "\n"),
		B:        difflib.SplitLines(string(b) + "\n"),
		FromFile: "previous",
		ToFile:   "current",
		Context:  2,
	})
}
