package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListCrates returns the sorted names of the crate directories directly
// under root. Entries that are not directories, contain a '.', or are
// named "src" are skipped.
func ListCrates(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no documentation directory at %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	crates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.Contains(name, ".") || name == "src" {
			continue
		}
		// Stat follows symlinked crate directories.
		info, err := os.Stat(filepath.Join(root, name))
		if err != nil || !info.IsDir() {
			continue
		}
		crates = append(crates, name)
	}

	sort.Strings(crates)
	return crates, nil
}

// CrateDir resolves the documentation directory of a crate under root.
func CrateDir(root, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCrateName, name)
	}
	dir := filepath.Join(root, name)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: no documentation for crate '%s' at %s", ErrNotFound, name, dir)
		}
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}
	return dir, nil
}
