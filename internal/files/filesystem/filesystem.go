package filesystem

import (
	"errors"
	"io/fs"
)

// ErrNotFound is returned by Source.ReadFile for a name the source does not hold.
var ErrNotFound = fs.ErrNotExist

// Source is a read-only tree of files addressed by slash-separated paths
// relative to the source root.
type Source interface {
	// Describe returns a human-readable location for error messages.
	Describe() string

	// ReadFile returns the content of name. Missing files wrap ErrNotFound.
	ReadFile(name string) ([]byte, error)

	// List returns the relative paths of all regular files, sorted.
	List() ([]string, error)
}

// IsNotFound reports whether err means a file was absent from a source.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
