package filesystem

import (
	"os"
	"path/filepath"
)

// StagedFile is content written and synced to a temporary file next to its
// destination, waiting to be renamed into place.
type StagedFile struct {
	path string
	tmp  string
	done bool
}

// Stage writes data to a temporary file in the directory of path, creating
// the directory if needed. Nothing is visible at path until Commit.
func Stage(path string, data []byte) (staged *StagedFile, err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err = tmp.Close(); err != nil {
		return nil, err
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return nil, err
	}
	return &StagedFile{path: path, tmp: tmpName}, nil
}

// Commit renames the staged file over its destination.
func (s *StagedFile) Commit() error {
	if s.done {
		return nil
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		_ = os.Remove(s.tmp)
		s.done = true
		return err
	}
	s.done = true
	return nil
}

// Discard removes the staged file. It is a no-op after Commit.
func (s *StagedFile) Discard() {
	if s.done {
		return
	}
	_ = os.Remove(s.tmp)
	s.done = true
}

// WriteFileAtomic writes data to a temporary file next to path, syncs it and
// renames it over path. On failure the temporary file is removed and path is
// left untouched.
func WriteFileAtomic(path string, data []byte) error {
	staged, err := Stage(path, data)
	if err != nil {
		return err
	}
	return staged.Commit()
}
