// Package catalogue holds the declarative definitions an archive is built from.
//
// # Overview
//
// A catalogue is a directory of YAML files, one per definition category:
//
//	types.yaml                          open metadata types and their enumerated values
//	deployed-implementation-types.yaml  technologies templates and connectors refer to
//	connectors.yaml                     connector directory, categories and connector types
//	templates.yaml                      catalog templates
//	integration.yaml                    integration groups and connectors
//	engines.yaml                        governance engines and services
//	request-types.yaml                  request type bindings and action targets
//	processes.yaml                      governance action processes
//
// A missing file is an empty category. Records are immutable after loading;
// derived values such as qualified names are methods on the records.
//
// # Validation
//
// Validate checks names, GUID syntax, uniqueness and every reference between
// records, and reports all problems at once as DefinitionErrors. The build
// itself relies on the graph checks and does not require a validated
// catalogue, but the CLI validates before building.
//
// # Default Catalogue
//
// Default returns the catalogue embedded in the binary, used when no
// catalogue directory is configured.
package catalogue
