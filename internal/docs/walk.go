package docs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk extracts every item documented under dir. Directories are visited
// depth-first in lexical order, so a subdirectory's items come before those
// of its later siblings. Symlinked directories are followed, each real
// directory at most once. The first read or extraction error aborts the walk
// and no items are returned.
func Walk(dir string) ([]Item, error) {
	w := &walker{seen: make(map[string]bool)}
	if err := w.walk(dir); err != nil {
		return nil, err
	}
	return w.items, nil
}

type walker struct {
	items []Item
	// seen holds the resolved paths of directories already walked.
	seen map[string]bool
}

func (w *walker) walk(dir string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}
	if w.seen[resolved] {
		return nil
	}
	w.seen[resolved] = true

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if d.IsDir() {
			// Reached without a symlink, so it resolves under resolved.
			if rel, err := filepath.Rel(dir, path); err == nil && rel != "." {
				w.seen[filepath.Join(resolved, rel)] = true
			}
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				return w.walk(path)
			}
		}
		if filepath.Ext(path) != ".html" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		item, err := Extract(string(content), d.Name())
		if err != nil {
			return fmt.Errorf("extracting %s: %w", path, err)
		}
		if item != nil {
			w.items = append(w.items, item)
		}
		return nil
	})
}
