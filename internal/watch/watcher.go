package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/brain-hol/notes/internal/nav"
)

// Watcher forwards markdown changes under a content root to a Trigger.
type Watcher struct {
	root    string
	ignore  nav.IgnoreSet
	trigger *Trigger
	fw      *fsnotify.Watcher
}

// NewWatcher watches every directory under root except ignored top-level
// directories. The caller must Run or Close it.
func NewWatcher(root string, ignore nav.IgnoreSet, trigger *Trigger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{root: root, ignore: ignore, trigger: trigger, fw: fw}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// Run dispatches events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			slog.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if w.skipped(rel) {
				return
			}
			if err := w.addTree(ev.Name); err != nil {
				slog.Warn("cannot watch new directory", "path", rel, "error", err)
			}
			w.trigger.Notify(Event{Path: rel, Op: ev.Op.String()})
			return
		}
	}

	if !strings.HasSuffix(ev.Name, ".md") || w.skipped(rel) {
		return
	}
	slog.Debug("markdown changed", "path", rel, "op", ev.Op.String())
	w.trigger.Notify(Event{Path: rel, Op: ev.Op.String()})
}

// skipped reports whether rel lies in an ignored top-level directory.
func (w *Watcher) skipped(rel string) bool {
	top, _, _ := strings.Cut(rel, "/")
	return w.ignore.Has(top)
}

// addTree watches dir and every directory below it. Symlinked directories
// are followed the way the content loader follows them; each real
// directory is added once, which also ends symlink cycles.
func (w *Watcher) addTree(dir string) error {
	return w.addDir(dir, make(map[string]bool))
}

func (w *Watcher) addDir(dir string, seen map[string]bool) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	if seen[resolved] {
		return nil
	}
	seen[resolved] = true

	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, de := range entries {
		p := filepath.Join(dir, de.Name())
		isDirectory := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(p)
			if err != nil {
				slog.Debug("skipping broken symlink", "path", p, "error", err)
				continue
			}
			isDirectory = info.IsDir()
		}
		if !isDirectory {
			continue
		}
		if rel, err := filepath.Rel(w.root, p); err == nil && w.skipped(filepath.ToSlash(rel)) {
			continue
		}
		if err := w.addDir(p, seen); err != nil {
			return err
		}
	}
	return nil
}

// Run watches root and regenerates through trigger until ctx is cancelled.
func Run(ctx context.Context, root string, ignore nav.IgnoreSet, trigger *Trigger) error {
	w, err := NewWatcher(root, ignore, trigger)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return trigger.Run(ctx) })
	g.Go(func() error { return w.Run(ctx) })
	return g.Wait()
}
