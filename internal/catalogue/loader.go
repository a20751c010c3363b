package catalogue

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/omarchive/internal/files/filesystem"
)

// Catalogue file names.
const (
	FileTypes                       = "types.yaml"
	FileDeployedImplementationTypes = "deployed-implementation-types.yaml"
	FileConnectors                  = "connectors.yaml"
	FileTemplates                   = "templates.yaml"
	FileIntegration                 = "integration.yaml"
	FileEngines                     = "engines.yaml"
	FileRequestTypes                = "request-types.yaml"
	FileProcesses                   = "processes.yaml"
)

//go:embed defaults
var defaultFS embed.FS

type typesFile struct {
	Types []OpenMetadataType `yaml:"types"`
}

type deployedImplementationTypesFile struct {
	DeployedImplementationTypes []DeployedImplementationType `yaml:"deployedImplementationTypes"`
}

type connectorsFile struct {
	Directory      ConnectorDirectory  `yaml:"directory"`
	Categories     []ConnectorCategory `yaml:"categories"`
	ConnectorTypes []ConnectorType     `yaml:"connectorTypes"`
}

type templatesFile struct {
	Templates []Template `yaml:"templates"`
}

type integrationFile struct {
	Groups     []IntegrationGroup     `yaml:"groups"`
	Connectors []IntegrationConnector `yaml:"connectors"`
}

type enginesFile struct {
	Engines  []GovernanceEngine  `yaml:"engines"`
	Services []GovernanceService `yaml:"services"`
}

type requestTypesFile struct {
	RequestTypes []RequestType `yaml:"requestTypes"`
}

type processesFile struct {
	Processes []GovernanceActionProcess `yaml:"processes"`
}

// Load reads every catalogue file from src. Missing files are empty
// categories; unknown fields and malformed YAML are DefinitionErrors.
func Load(src filesystem.Source) (*Catalogue, error) {
	c := &Catalogue{Source: src.Describe()}

	var types typesFile
	var dits deployedImplementationTypesFile
	var connectors connectorsFile
	var templates templatesFile
	var integration integrationFile
	var engines enginesFile
	var requestTypes requestTypesFile
	var processes processesFile

	files := []struct {
		name string
		into interface{}
	}{
		{FileTypes, &types},
		{FileDeployedImplementationTypes, &dits},
		{FileConnectors, &connectors},
		{FileTemplates, &templates},
		{FileIntegration, &integration},
		{FileEngines, &engines},
		{FileRequestTypes, &requestTypes},
		{FileProcesses, &processes},
	}
	for _, f := range files {
		if err := decodeFile(src, f.name, f.into); err != nil {
			return nil, err
		}
	}

	c.Types = types.Types
	c.DeployedImplementationTypes = dits.DeployedImplementationTypes
	c.ConnectorDirectory = connectors.Directory
	c.ConnectorCategories = connectors.Categories
	c.ConnectorTypes = connectors.ConnectorTypes
	c.Templates = templates.Templates
	c.IntegrationGroups = integration.Groups
	c.IntegrationConnectors = integration.Connectors
	c.GovernanceEngines = engines.Engines
	c.GovernanceServices = engines.Services
	c.RequestTypes = requestTypes.RequestTypes
	c.Processes = processes.Processes
	return c, nil
}

func decodeFile(src filesystem.Source, name string, into interface{}) error {
	content, err := src.ReadFile(name)
	if err != nil {
		if filesystem.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to read catalogue file %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &DefinitionError{
			Category: name,
			Message:  err.Error(),
			Hint:     "Check indentation and field names against the catalogue format in " + src.Describe() + ".",
		}
	}
	return nil
}

// LoadDir loads a catalogue from a directory on disk.
func LoadDir(dir string) (*Catalogue, error) {
	src, err := filesystem.NewDirSource(dir)
	if err != nil {
		return nil, err
	}
	return Load(src)
}

// Default returns the catalogue embedded in the binary.
func Default() (*Catalogue, error) {
	src, err := filesystem.NewEmbedSource(defaultFS, "defaults")
	if err != nil {
		return nil, err
	}
	return Load(src)
}
