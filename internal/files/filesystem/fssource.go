package filesystem

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// fsSource adapts any fs.FS rooted at the catalogue directory.
type fsSource struct {
	fsys fs.FS
	desc string
}

func (s *fsSource) Describe() string { return s.desc }

func (s *fsSource) ReadFile(name string) ([]byte, error) {
	name = cleanName(name)
	content, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s from %s: %w", name, s.desc, err)
	}
	return content, nil
}

func (s *fsSource) List() ([]string, error) {
	var names []string
	err := fs.WalkDir(s.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.desc, err)
	}
	sort.Strings(names)
	return names, nil
}

// NewDirSource creates a source over a directory on disk.
func NewDirSource(dir string) (Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access catalogue directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalogue path is not a directory: %s", dir)
	}
	return &fsSource{fsys: os.DirFS(dir), desc: dir}, nil
}

// NewEmbedSource creates a source over root inside an embed.FS.
func NewEmbedSource(efs embed.FS, root string) (Source, error) {
	root = cleanName(root)
	sub, err := fs.Sub(efs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded directory %s: %w", root, err)
	}
	if _, err := fs.ReadDir(sub, "."); err != nil {
		return nil, fmt.Errorf("failed to open embedded directory %s: %w", root, err)
	}
	return &fsSource{fsys: sub, desc: "embedded:" + root}, nil
}

// cleanName normalizes a relative name to forward slashes without a leading "./".
func cleanName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean(name)
	return strings.TrimPrefix(name, "/")
}
