package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/klauspost/compress/zstd"
)

// SaveSnapshot writes doc to path in the given format. Paths ending in
// ".zst" are zstd-compressed.
func SaveSnapshot(path string, doc *docs.Documentation, format Format) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		if err := Write(f, doc, format); err != nil {
			return err
		}
		return f.Close()
	}

	w, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}
	if err := Write(w, doc, format); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return f.Close()
}

// OpenSnapshot returns a reader over a snapshot written by SaveSnapshot,
// decompressing ".zst" files transparently.
func OpenSnapshot(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}

	r, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	return &zstdFile{Decoder: r, f: f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}
