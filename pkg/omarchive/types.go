package omarchive

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuildConfig contains all parameters needed for one archive build.
type BuildConfig struct {
	// ArchiveGUID identifies the archive across releases
	ArchiveGUID string

	// ArchiveName, Description and Version populate the archive header
	ArchiveName string
	Description string
	Version     string

	// OriginatorName and OriginatorOrganization record who produced the archive
	OriginatorName         string
	OriginatorOrganization string

	// License is the license of the archive content
	License string

	// DependsOn lists the GUIDs of archives that must be loaded first
	DependsOn []string

	// CreationTime is recorded in the header. Zero means the time of the build.
	CreationTime time.Time

	// OutputPath is the archive file to write
	OutputPath string

	// RegistryPath is the identifier registry file loaded before and saved after the build
	RegistryPath string

	// CatalogueDir is the definition catalogue directory. Empty selects the
	// catalogue embedded in the binary.
	CatalogueDir string

	// Verbose enables detailed logging
	Verbose bool
}

// DefaultBuildConfig returns a configuration for the core content pack.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		ArchiveGUID:            DefaultArchiveGUID,
		ArchiveName:            DefaultArchiveName,
		Description:            DefaultArchiveDescription,
		Version:                DefaultArchiveVersion,
		OriginatorName:         DefaultOriginatorName,
		OriginatorOrganization: DefaultOriginatorOrganization,
		License:                DefaultLicense,
		OutputPath:             DefaultOutputFile,
		RegistryPath:           DefaultRegistryFile,
	}
}

// Validate checks if the BuildConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *BuildConfig) Validate() error {
	var errs []error

	archiveGUID, err := uuid.Parse(c.ArchiveGUID)
	switch {
	case c.ArchiveGUID == "":
		errs = append(errs, fmt.Errorf("ArchiveGUID is required: %w", ErrInvalidConfig))
	case err != nil || archiveGUID == uuid.Nil:
		errs = append(errs, fmt.Errorf("ArchiveGUID %q is not a valid GUID: %w", c.ArchiveGUID, ErrInvalidConfig))
	}

	if strings.TrimSpace(c.ArchiveName) == "" {
		errs = append(errs, fmt.Errorf("ArchiveName is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(c.Version) == "" {
		errs = append(errs, fmt.Errorf("Version is required: %w", ErrInvalidConfig))
	}

	if strings.TrimSpace(c.OriginatorName) == "" {
		errs = append(errs, fmt.Errorf("OriginatorName is required: %w", ErrInvalidConfig))
	}

	for _, dep := range c.DependsOn {
		id, err := uuid.Parse(dep)
		if err != nil || id == uuid.Nil {
			errs = append(errs, fmt.Errorf("dependent archive %q is not a valid GUID: %w", dep, ErrInvalidConfig))
			continue
		}
		if id == archiveGUID {
			errs = append(errs, fmt.Errorf("archive cannot depend on itself: %w", ErrInvalidConfig))
		}
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	if c.RegistryPath == "" {
		errs = append(errs, fmt.Errorf("RegistryPath is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath != "" && c.RegistryPath != "" && filepath.Clean(c.OutputPath) == filepath.Clean(c.RegistryPath) {
		errs = append(errs, fmt.Errorf("OutputPath and RegistryPath must be different files: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
