package slidekit

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Save writes the deck to a .pptx file. Parts untouched by operations are
// written back byte-for-byte in their original order.
//
// The deck is written to a temporary file in the destination directory
// and renamed into place only after a successful write, so a failed save
// never destroys an existing file. This matters for in-place editing,
// where the destination is usually the deck that was just opened.
func (d *Deck) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	writeErr := d.WriteTo(tmp)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmp.Name())
		return writeErr
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// WriteTo writes the deck to a writer in .pptx format.
func (d *Deck) WriteTo(w io.Writer) error {
	if d.parts == nil {
		return fmt.Errorf("deck is closed")
	}
	zw := zip.NewWriter(w)
	for _, p := range d.parts {
		entry, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %s: %w", p.name, err)
		}
		if _, err := entry.Write(p.data); err != nil {
			return fmt.Errorf("failed to write zip entry %s: %w", p.name, err)
		}
	}
	return zw.Close()
}
