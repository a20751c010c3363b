package filesystem

import (
	"fmt"
	"sort"
)

// MemorySource is an in-memory Source for tests.
type MemorySource struct {
	files map[string][]byte
}

// NewMemorySource creates an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{files: make(map[string][]byte)}
}

// AddFile adds or replaces a file.
func (m *MemorySource) AddFile(name, content string) *MemorySource {
	m.files[cleanName(name)] = []byte(content)
	return m
}

func (m *MemorySource) Describe() string { return "memory" }

func (m *MemorySource) ReadFile(name string) ([]byte, error) {
	content, ok := m.files[cleanName(name)]
	if !ok {
		return nil, fmt.Errorf("read %s from memory: %w", name, ErrNotFound)
	}
	return content, nil
}

func (m *MemorySource) List() ([]string, error) {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
