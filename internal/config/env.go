package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// Environment variables that override omarchive.yaml.
const (
	EnvVersion      = "OMARCHIVE_VERSION"
	EnvOutput       = "OMARCHIVE_OUTPUT"
	EnvRegistry     = "OMARCHIVE_REGISTRY"
	EnvCatalogue    = "OMARCHIVE_CATALOGUE"
	EnvCreationTime = "OMARCHIVE_CREATION_TIME"
	EnvOriginator   = "OMARCHIVE_ORIGINATOR"
)

// ReadEnvFiles reads .env style files. Later files override earlier ones.
// The process environment is not modified.
func ReadEnvFiles(paths []string) (map[string]string, error) {
	values := make(map[string]string)
	for _, path := range paths {
		fileValues, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	return values, nil
}
