// Package contentfs reads a notes folder into a nav snapshot.
package contentfs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/brain-hol/notes/internal/nav"
)

// ErrNotDirectory is returned when the content root is not a directory.
var ErrNotDirectory = errors.New("content root is not a directory")

// Load reads the snapshot of fsys. Root entries are always listed; ignored
// root directories are not descended. Markdown files are read for their
// title, other files only by name. Any I/O error aborts the whole load.
func Load(fsys fs.FS, ignore nav.IgnoreSet) ([]nav.Entry, error) {
	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("stat content root: %w", err)
	}
	if !info.IsDir() {
		return nil, ErrNotDirectory
	}

	des, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content root: %w", err)
	}

	root := make([]nav.Entry, 0, len(des))
	for _, de := range des {
		isDirectory, err := statDir(fsys, de.Name(), de)
		if err != nil {
			return nil, err
		}
		e := nav.Entry{Name: de.Name(), Dir: isDirectory}
		if isDirectory && !ignore.Has(e.Name) {
			if e.Children, err = loadDir(fsys, e.Name); err != nil {
				return nil, err
			}
		}
		root = append(root, e)
	}
	return root, nil
}

// Generate loads fsys and computes its navigation. On error the zero
// Result is returned.
func Generate(fsys fs.FS, ignore nav.IgnoreSet) (nav.Result, error) {
	root, err := Load(fsys, ignore)
	if err != nil {
		return nav.Result{}, err
	}
	return nav.Generate(root, ignore), nil
}

func loadDir(fsys fs.FS, dir string) ([]nav.Entry, error) {
	des, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	entries := make([]nav.Entry, 0, len(des))
	for _, de := range des {
		name := path.Join(dir, de.Name())
		isDirectory, err := statDir(fsys, name, de)
		if err != nil {
			return nil, err
		}
		e := nav.Entry{Name: de.Name(), Dir: isDirectory}
		switch {
		case isDirectory:
			if e.Children, err = loadDir(fsys, name); err != nil {
				return nil, err
			}
		case isPage(e.Name):
			if e.Title, err = readTitle(fsys, name); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// statDir reports whether de is a directory, following symlinks.
func statDir(fsys fs.FS, name string, de fs.DirEntry) (bool, error) {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.IsDir(), nil
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return info.IsDir(), nil
}

func isPage(name string) bool {
	return strings.HasSuffix(name, ".md") && name != "index.md"
}

func readTitle(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("read page %s: %w", name, err)
	}
	title, _ := nav.Title(data)
	return title, nil
}
