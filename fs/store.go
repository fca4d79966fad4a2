// Package fs provides file-based storage for downloaded policy documents.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/policydoc"
)

// Ensure Store implements policydoc.FileStore at compile time.
var _ policydoc.FileStore = (*Store)(nil)

// Store writes downloaded documents into a single flat directory.
type Store struct {
	dir string
}

// NewStore creates a new Store rooted at dir. The directory is not touched
// until Ensure or Create is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Ensure creates the store directory if it does not exist. It reports
// whether the directory was created by this call.
func (s *Store) Ensure() (created bool, err error) {
	info, err := os.Stat(s.dir)
	if err == nil {
		if !info.IsDir() {
			return false, policydoc.Errorf(policydoc.EINVALID, "%s exists and is not a directory", s.dir)
		}
		return false, nil
	}
	if !errors.Is(err, iofs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// Create opens filename inside the store for writing, truncating any
// existing file. Names that would escape the directory are rejected.
func (s *Store) Create(filename string) (io.WriteCloser, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) {
		return nil, policydoc.Errorf(policydoc.EINVALID, "invalid file name %q", filename)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(s.dir, filename))
}
