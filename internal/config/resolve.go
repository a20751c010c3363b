package config

import (
	"fmt"
	"os"
	"time"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// Flags holds the command line values that override every other source.
// Empty strings mean the flag was not given.
type Flags struct {
	Output    string
	Registry  string
	Catalogue string
	Verbose   bool
}

// Sources are the inputs of Resolve, lowest priority first.
type Sources struct {
	Project   *ProjectConfig
	LookupEnv func(key string) (string, bool)
	EnvFile   map[string]string
	Flags     Flags
}

// Resolve merges all sources into a build configuration.
// Priority (highest to lowest): flags > env files > process environment >
// omarchive.yaml > defaults.
func Resolve(src Sources) (omarchive.BuildConfig, error) {
	cfg := omarchive.DefaultBuildConfig()

	if p := src.Project; p != nil {
		a := p.Archive
		setIf(&cfg.ArchiveGUID, a.GUID)
		setIf(&cfg.ArchiveName, a.Name)
		setIf(&cfg.Description, a.Description)
		setIf(&cfg.Version, a.Version)
		setIf(&cfg.OriginatorName, a.OriginatorName)
		setIf(&cfg.OriginatorOrganization, a.OriginatorOrganization)
		setIf(&cfg.License, a.License)
		if len(a.DependsOn) > 0 {
			cfg.DependsOn = append([]string(nil), a.DependsOn...)
		}
		setIf(&cfg.OutputPath, p.Output)
		setIf(&cfg.RegistryPath, p.Registry)
		setIf(&cfg.CatalogueDir, p.Catalogue)
		if err := setTime(&cfg.CreationTime, "creation_time in "+ConfigFileName, a.CreationTime); err != nil {
			return omarchive.BuildConfig{}, err
		}
	}

	lookup := src.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, func(key string) string {
		v, _ := lookup(key)
		return v
	}, "environment"); err != nil {
		return omarchive.BuildConfig{}, err
	}
	if err := applyEnv(&cfg, func(key string) string {
		return src.EnvFile[key]
	}, "env file"); err != nil {
		return omarchive.BuildConfig{}, err
	}

	setIf(&cfg.OutputPath, src.Flags.Output)
	setIf(&cfg.RegistryPath, src.Flags.Registry)
	setIf(&cfg.CatalogueDir, src.Flags.Catalogue)
	cfg.Verbose = src.Flags.Verbose

	return cfg, nil
}

func applyEnv(cfg *omarchive.BuildConfig, get func(string) string, source string) error {
	setIf(&cfg.Version, get(EnvVersion))
	setIf(&cfg.OutputPath, get(EnvOutput))
	setIf(&cfg.RegistryPath, get(EnvRegistry))
	setIf(&cfg.CatalogueDir, get(EnvCatalogue))
	setIf(&cfg.OriginatorName, get(EnvOriginator))
	return setTime(&cfg.CreationTime, EnvCreationTime+" in "+source, get(EnvCreationTime))
}

func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func setTime(dst *time.Time, field, value string) error {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid %s %q, expected RFC3339: %w", field, value, omarchive.ErrInvalidConfig)
	}
	*dst = t.UTC()
	return nil
}
