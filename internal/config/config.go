package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ArchiveConfig holds the archive header fields.
type ArchiveConfig struct {
	GUID                   string   `yaml:"guid"`
	Name                   string   `yaml:"name"`
	Description            string   `yaml:"description"`
	Version                string   `yaml:"version"`
	OriginatorName         string   `yaml:"originator"`
	OriginatorOrganization string   `yaml:"organization"`
	License                string   `yaml:"license"`
	DependsOn              []string `yaml:"depends_on,omitempty"`
	CreationTime           string   `yaml:"creation_time,omitempty"`
}

// ProjectConfig is the content of omarchive.yaml.
type ProjectConfig struct {
	Archive   ArchiveConfig `yaml:"archive"`
	Output    string        `yaml:"output"`
	Registry  string        `yaml:"registry"`
	Catalogue string        `yaml:"catalogue"`
}

const ConfigFileName = "omarchive.yaml"

// Load reads omarchive.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a project configuration from path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}
