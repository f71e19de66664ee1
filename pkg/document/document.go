// Package document loads, mutates and atomically persists the target file.
//
// A [Document] is read once at the start of a run, receives one injection per
// configured region, and is written back once at the end. Writes go to a
// temporary file in the same directory that is renamed over the original, so
// a failed save leaves the file on disk exactly as it was before the run.
package document

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/inject"
)

// Document is the in-memory text of the target file.
// All methods are safe for concurrent use; injections are serialised.
type Document struct {
	path     string
	mode     os.FileMode
	mu       sync.Mutex
	text     string
	original string
}

// Load reads the file at path. Any failure is a DOCUMENT_LOAD error.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocumentLoad, err, "read %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeDocumentLoad, "%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDocumentLoad, err, "read %s", path)
	}
	return &Document{
		path:     path,
		mode:     info.Mode().Perm(),
		text:     string(data),
		original: string(data),
	}, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// String returns the current text.
func (d *Document) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Changed reports whether the text differs from what was loaded.
func (d *Document) Changed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text != d.original
}

// Inject replaces the body of region r with content and reports whether the
// region's delimiters were found.
func (d *Document) Inject(r inject.Region, content string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, ok := r.Apply(d.text, content)
	if ok {
		d.text = text
	}
	return ok
}

// Regions reports, for each region, whether its delimiters are present.
func (d *Document) Regions(regions []inject.Region) map[string]bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	found := make(map[string]bool, len(regions))
	for _, r := range regions {
		_, found[r.Name] = r.Find(d.text)
	}
	return found
}

// Save writes the current text back to the document's path atomically.
// Any failure is a DOCUMENT_SAVE error and leaves the original file intact.
func (d *Document) Save() error {
	d.mu.Lock()
	text := d.text
	d.mu.Unlock()

	if err := writeAtomic(d.path, text, d.mode); err != nil {
		return errors.Wrap(errors.ErrCodeDocumentSave, err, "write %s", d.path)
	}

	d.mu.Lock()
	d.original = text
	d.mu.Unlock()
	return nil
}

// writeAtomic replaces dest through a temp file in the same directory. A
// symlinked dest is written through to its target so the link survives.
func writeAtomic(dest, text string, mode os.FileMode) error {
	if target, err := filepath.EvalSymlinks(dest); err == nil {
		dest = target
	}
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".readmefeed-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_ = os.Chmod(tmpPath, mode)

	bw := bufio.NewWriter(tmp)
	if _, err := bw.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
