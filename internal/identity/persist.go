package identity

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/omarchive/internal/files/filesystem"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// formatVersion is written to every registry file; Load rejects newer versions.
const formatVersion = 1

type persistedState struct {
	Version   int               `yaml:"version"`
	GUIDs     map[string]string `yaml:"guids"`
	UsedGUIDs []string          `yaml:"usedGuids,omitempty"`
}

// Load merges the registry file at path into r. A missing file leaves the
// registry empty. Load must run before the first Reserve call.
func (r *Registry) Load(path string) error {
	if r.reserved {
		return fmt.Errorf("registry load after first reservation: %w", omarchive.ErrInvalidArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read identifier registry %s: %v: %w", path, err, omarchive.ErrPersistenceFailure)
	}

	var state persistedState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("decode identifier registry %s: %v: %w", path, err, omarchive.ErrPersistenceFailure)
	}
	if state.Version > formatVersion {
		return fmt.Errorf("identifier registry %s has format version %d, newest supported is %d: %w",
			path, state.Version, formatVersion, omarchive.ErrPersistenceFailure)
	}

	if err := r.merge(&state); err != nil {
		return fmt.Errorf("merge identifier registry %s: %v: %w", path, err, omarchive.ErrPersistenceFailure)
	}
	return nil
}

// Persist writes the registry to path, replacing any previous file.
func (r *Registry) Persist(path string) error {
	state := persistedState{
		Version:   formatVersion,
		GUIDs:     r.guids,
		UsedGUIDs: r.UsedGUIDs(),
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("encode identifier registry: %v: %w", err, omarchive.ErrPersistenceFailure)
	}

	if err := filesystem.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("save identifier registry %s: %v: %w", path, err, omarchive.ErrPersistenceFailure)
	}
	return nil
}
