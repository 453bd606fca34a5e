package financier

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage reads and writes the whole store as one opaque blob. The ledger
// performs a full read-modify-write cycle per operation and assumes it is
// the only writer; Storage implementations do not need locking.
type Storage interface {
	Load() (*Store, error)
	Save(*Store) error
}

// FileStorage persists the store as a single JSON file.
type FileStorage struct {
	Path string
}

// Load reads the store file. A missing file yields a fresh store with the
// default business settings.
func (f *FileStorage) Load() (*Store, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store file %q: %w", f.Path, err)
	}
	defer file.Close()

	store, err := DecodeStore(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", f.Path, err)
	}
	return store, nil
}

// Save writes the whole store to a temporary file and renames it into
// place, so a crash mid-write never leaves a truncated store behind.
func (f *FileStorage) Save(s *Store) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for store %q: %w", f.Path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeStore(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", f.Path, err)
	}
	return nil
}
