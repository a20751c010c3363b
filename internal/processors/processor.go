package processors

import (
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/identity"
	"github.com/vvka-141/omarchive/internal/taxonomy"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// Processor names, in the order All returns them.
const (
	NameOpenMetadataTypes           = "open-metadata-types"
	NameDeployedImplementationTypes = "deployed-implementation-types"
	NameConnectorTypes              = "connector-types"
	NameTemplates                   = "templates"
	NameIntegrationConnectors       = "integration-connectors"
	NameGovernanceEngines           = "governance-engines"
	NameRequestTypes                = "request-types"
	NameGovernanceActionProcesses   = "governance-action-processes"
)

// Processor materializes one definition category.
type Processor interface {
	// Name identifies the processor in plans and logs.
	Name() string

	// Requires names the processors whose tables Process reads.
	Requires() []string

	// Process adds the category's nodes and relationships to the graph.
	Process(s *State) error
}

// State is everything a processor reads and writes during one build.
type State struct {
	Assembler *assembler.Assembler
	Registry  *identity.Registry
	Taxonomy  *taxonomy.Builder
	Catalogue *catalogue.Catalogue
	Logger    omarchive.Logger
	Tables    *Tables
}

// NewState creates the working state of a build over a loaded registry.
func NewState(registry *identity.Registry, cat *catalogue.Catalogue, logger omarchive.Logger) *State {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if cat == nil {
		panic("catalogue cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	a := assembler.New(registry, logger)
	return &State{
		Assembler: a,
		Registry:  registry,
		Taxonomy:  taxonomy.New(a, logger),
		Catalogue: cat,
		Logger:    logger,
		Tables:    NewTables(),
	}
}

// All returns every processor in dependency order.
func All() []Processor {
	return []Processor{
		OpenMetadataTypes{},
		DeployedImplementationTypes{},
		ConnectorTypes{},
		Templates{},
		IntegrationConnectors{},
		GovernanceEngines{},
		RequestTypes{},
		GovernanceActionProcesses{},
	}
}
