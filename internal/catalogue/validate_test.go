package catalogue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// minimal returns a small valid catalogue with one record per category.
func minimal() *Catalogue {
	return &Catalogue{
		Types: []OpenMetadataType{{
			TypeName:   "DataFile",
			Properties: []EnumProperty{{Name: "fileType", Values: []EnumValue{{Value: "csv", IsDefault: true}}}},
		}},
		DeployedImplementationTypes: []DeployedImplementationType{
			{Name: "File Folder", AssociatedTypeName: "FileFolder"},
		},
		ConnectorDirectory:  ConnectorDirectory{Name: "Directory"},
		ConnectorCategories: []ConnectorCategory{{Name: "Files"}},
		ConnectorTypes: []ConnectorType{
			{Name: "Folder Connector", ConnectorCategory: "Files", ConnectorProviderClassName: "x.FolderProvider"},
		},
		Templates: []Template{{
			Name: "Folder", TypeName: "FileFolder", DeployedImplementationType: "File Folder",
			Connection: &TemplateConnection{ConnectorType: "Folder Connector"},
		}},
		IntegrationGroups: []IntegrationGroup{{Name: "Default"}},
		IntegrationConnectors: []IntegrationConnector{
			{Name: "Monitor", Group: "Default", ConnectorType: "Folder Connector", Targets: []string{"File Folder"}},
		},
		GovernanceEngines:  []GovernanceEngine{{Name: "Survey", TypeName: "SurveyActionEngine"}},
		GovernanceServices: []GovernanceService{{Name: "FolderSurvey", TypeName: "SurveyActionService", ConnectorType: "Folder Connector"}},
		RequestTypes: []RequestType{{
			Engine: "Survey", Service: "FolderSurvey", GovernanceRequestType: "survey-folder",
			ActionTargets: []ActionTarget{{Name: "monitor", Kind: TargetIntegrationConnector, Target: "Monitor"}},
		}},
		Processes: []GovernanceActionProcess{{
			Name: "Onboard", FirstStep: "survey",
			Steps: []ProcessStep{{Name: "survey", Engine: "Survey", RequestType: "survey-folder"}},
		}},
	}
}

func TestValidate_Minimal(t *testing.T) {
	result := Validate(minimal())
	assert.True(t, result.Valid)
	assert.False(t, result.HasErrors())
	assert.NoError(t, result.Err())
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalogue)
		field  string
		cause  error
	}{
		{
			name:   "bad guid",
			mutate: func(c *Catalogue) { c.ConnectorTypes[0].GUID = "not-a-guid" },
			field:  "guid",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "nil guid",
			mutate: func(c *Catalogue) { c.GovernanceEngines[0].GUID = "00000000-0000-0000-0000-000000000000" },
			field:  "guid",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name: "guid shared across categories",
			mutate: func(c *Catalogue) {
				c.GovernanceEngines[0].GUID = "1b2e3f40-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
				c.Templates[0].GUID = "1b2e3f40-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
			},
			field: "guid",
			cause: omarchive.ErrGUIDConflict,
		},
		{
			name: "same qualified name with two guids",
			mutate: func(c *Catalogue) {
				c.Templates[0].QualifiedNameOverride = "PostgreSQLServer:template"
				c.Templates[0].GUID = "1b2e3f40-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
				dup := c.Templates[0]
				dup.Name = "Other"
				dup.GUID = "3c4d5e6f-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
				c.Templates = append(c.Templates, dup)
			},
			field: "guid",
			cause: omarchive.ErrGUIDConflict,
		},
		{
			name: "duplicate name",
			mutate: func(c *Catalogue) {
				c.GovernanceEngines = append(c.GovernanceEngines, c.GovernanceEngines[0])
			},
			cause: omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "type name with level separator",
			mutate: func(c *Catalogue) { c.Types[0].TypeName = "Data.File" },
			field:  "typeName",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "property name with map brackets",
			mutate: func(c *Catalogue) { c.Types[0].Properties[0].Name = "fileType[csv]" },
			field:  "properties.name",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "missing name",
			mutate: func(c *Catalogue) { c.IntegrationGroups = append(c.IntegrationGroups, IntegrationGroup{}) },
			field:  "name",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "template without deployed implementation type",
			mutate: func(c *Catalogue) { c.Templates[0].DeployedImplementationType = "Nope" },
			field:  "deployedImplementationType",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "connector type in unknown category",
			mutate: func(c *Catalogue) { c.ConnectorTypes[0].ConnectorCategory = "Nope" },
			field:  "category",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "integration connector unknown target",
			mutate: func(c *Catalogue) { c.IntegrationConnectors[0].Targets = []string{"Nope"} },
			field:  "targets",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "request type unknown service",
			mutate: func(c *Catalogue) { c.RequestTypes[0].Service = "Nope" },
			field:  "service",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "action target unknown kind",
			mutate: func(c *Catalogue) { c.RequestTypes[0].ActionTargets[0].Kind = "asset" },
			field:  "actionTargets.kind",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "action target missing",
			mutate: func(c *Catalogue) { c.RequestTypes[0].ActionTargets[0].Target = "Nope" },
			field:  "actionTargets.target",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "process step unknown request type",
			mutate: func(c *Catalogue) { c.Processes[0].Steps[0].RequestType = "survey-file" },
			field:  "steps.requestType",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "process unknown first step",
			mutate: func(c *Catalogue) { c.Processes[0].FirstStep = "start" },
			field:  "firstStep",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name: "transition without guard",
			mutate: func(c *Catalogue) {
				c.Processes[0].Steps[0].Next = []NextStep{{Step: "survey"}}
			},
			field: "steps.next.guard",
			cause: omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "parent deployed implementation type missing",
			mutate: func(c *Catalogue) { c.DeployedImplementationTypes[0].IsATypeOf = "Nope" },
			field:  "isATypeOf",
			cause:  omarchive.ErrInvalidCatalogue,
		},
		{
			name: "two default values",
			mutate: func(c *Catalogue) {
				c.Types[0].Properties[0].Values = append(c.Types[0].Properties[0].Values, EnumValue{Value: "json", IsDefault: true})
			},
			field: "values.isDefault",
			cause: omarchive.ErrInvalidCatalogue,
		},
		{
			name:   "connector directory missing",
			mutate: func(c *Catalogue) { c.ConnectorDirectory = ConnectorDirectory{} },
			field:  "name",
			cause:  omarchive.ErrInvalidCatalogue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := minimal()
			tt.mutate(c)

			result := Validate(c)
			require.False(t, result.Valid)
			require.NotEmpty(t, result.Errors)
			assert.True(t, errors.Is(result.Err(), tt.cause), "got %v", result.Err())

			if tt.field != "" {
				fields := make([]string, 0, len(result.Errors))
				for _, e := range result.Errors {
					fields = append(fields, e.Field)
				}
				assert.Contains(t, fields, tt.field)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := minimal()
	c.Templates[0].TypeName = ""
	c.RequestTypes[0].Service = "Nope"
	c.Processes[0].FirstStep = "start"

	result := Validate(c)
	assert.Len(t, result.Errors, 3)
}
