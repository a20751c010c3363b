package processors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/identity"
	"github.com/vvka-141/omarchive/internal/logging"
	"github.com/vvka-141/omarchive/internal/vocabulary"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

const (
	postgresTemplateGUID = "4d105ffb-cc2b-4057-8ff3-78f47861a30f"
	otherGUID            = "1b2e3f40-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
)

func newState(t *testing.T, cat *catalogue.Catalogue) *State {
	t.Helper()
	return NewState(identity.New(), cat, logging.NewNullLogger())
}

func defaultCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	cat, err := catalogue.Default()
	require.NoError(t, err)
	return cat
}

func run(s *State, procs ...Processor) error {
	for _, p := range procs {
		if err := p.Process(s); err != nil {
			return err
		}
	}
	return nil
}

func snapshot(s *State) *archive.Archive {
	entities, relationships := s.Assembler.Snapshot()
	return &archive.Archive{Entities: entities, Relationships: relationships}
}

func TestAll_DeclaredOrder(t *testing.T) {
	want := []string{
		NameOpenMetadataTypes,
		NameDeployedImplementationTypes,
		NameConnectorTypes,
		NameTemplates,
		NameIntegrationConnectors,
		NameGovernanceEngines,
		NameRequestTypes,
		NameGovernanceActionProcesses,
	}
	var got []string
	seen := map[string]bool{}
	for _, p := range All() {
		for _, req := range p.Requires() {
			assert.True(t, seen[req], "%s requires %s, which runs later", p.Name(), req)
		}
		seen[p.Name()] = true
		got = append(got, p.Name())
	}
	assert.Equal(t, want, got)
}

func TestNewState_PanicsOnNil(t *testing.T) {
	cat := &catalogue.Catalogue{}
	assert.Panics(t, func() { NewState(nil, cat, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewState(identity.New(), nil, logging.NewNullLogger()) })
	assert.Panics(t, func() { NewState(identity.New(), cat, nil) })
}

func TestAll_DefaultCatalogue(t *testing.T) {
	cat := defaultCatalogue(t)
	s := newState(t, cat)

	require.NoError(t, run(s, All()...))

	arc := snapshot(s)
	require.NoError(t, arc.CheckReferences())

	assert.Equal(t, len(cat.DeployedImplementationTypes), s.Tables.DeployedImplementationTypes.Len())
	assert.Equal(t, len(cat.ConnectorTypes), s.Tables.ConnectorTypes.Len())
	assert.Equal(t, len(cat.Templates), s.Tables.Templates.Len())
	assert.Equal(t, len(cat.IntegrationConnectors), s.Tables.IntegrationConnectors.Len())
	assert.Equal(t, len(cat.GovernanceEngines), s.Tables.Engines.Len())
	assert.Equal(t, len(cat.GovernanceServices), s.Tables.Services.Len())
	assert.Equal(t, len(cat.RequestTypes), s.Tables.GovernanceActionTypes.Len())

	for _, p := range cat.Processes {
		_, ok := arc.EntityByQualifiedName(p.QualifiedName())
		assert.True(t, ok, "process %s missing", p.Name)
	}
}

func TestRequestTypesBeforeIntegrationConnectors_IsDangling(t *testing.T) {
	s := newState(t, defaultCatalogue(t))

	err := run(s,
		OpenMetadataTypes{},
		DeployedImplementationTypes{},
		ConnectorTypes{},
		Templates{},
		GovernanceEngines{},
		RequestTypes{},
		IntegrationConnectors{},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrDanglingReference))

	var lookup *LookupError
	require.True(t, errors.As(err, &lookup))
	assert.Equal(t, "integration connector", lookup.Table)
	assert.Equal(t, "FilesMonitorIntegrationConnector", lookup.Key)
}

func TestTemplatesBeforeConnectorTypes_IsDangling(t *testing.T) {
	s := newState(t, defaultCatalogue(t))
	err := run(s, OpenMetadataTypes{}, DeployedImplementationTypes{}, Templates{})
	assert.True(t, errors.Is(err, omarchive.ErrDanglingReference))
}

func TestTemplates_WellKnownGUIDWithAndWithoutPriorRegistry(t *testing.T) {
	cat := defaultCatalogue(t)

	s := newState(t, cat)
	require.NoError(t, run(s, All()...))
	guid, ok := s.Assembler.Lookup("PostgreSQLServer:template")
	require.True(t, ok)
	assert.Equal(t, postgresTemplateGUID, guid)

	// Second build over the populated registry.
	s2 := NewState(s.Registry, cat, logging.NewNullLogger())
	require.NoError(t, run(s2, All()...))
	guid, ok = s2.Assembler.Lookup("PostgreSQLServer:template")
	require.True(t, ok)
	assert.Equal(t, postgresTemplateGUID, guid)
}

func TestTemplates_SameNameDifferentGUIDs(t *testing.T) {
	cat := defaultCatalogue(t)
	dup := cat.Templates[0]
	require.Equal(t, "PostgreSQLServer:template", dup.QualifiedName())
	dup.GUID = otherGUID
	cat.Templates = append(cat.Templates, dup)

	err := run(newState(t, cat), All()...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrGUIDConflict))
	assert.Equal(t, omarchive.ExitGUIDConflict, omarchive.ExitCodeForError(err))
}

func TestTemplates_RegistryConflict(t *testing.T) {
	reg := identity.New()
	_, err := reg.Reserve("PostgreSQLServer:template", otherGUID)
	require.NoError(t, err)

	err = run(NewState(reg, defaultCatalogue(t), logging.NewNullLogger()), All()...)
	assert.True(t, errors.Is(err, omarchive.ErrGUIDConflict))
}

func TestTemplates_Structure(t *testing.T) {
	s := newState(t, defaultCatalogue(t))
	require.NoError(t, run(s, All()...))
	arc := snapshot(s)

	server, ok := arc.EntityByQualifiedName("PostgreSQLServer:template")
	require.True(t, ok)
	assert.True(t, server.HasClassification(vocabulary.Template))
	assert.Equal(t, "PostgreSQL Server", server.Properties[vocabulary.PropDeployedImplementationType])

	dit, err := s.Tables.DeployedImplementationTypes.Get("PostgreSQL Server")
	require.NoError(t, err)

	var catalogTemplate, serverEndpoint, assignments int
	for _, r := range arc.Relationships {
		switch {
		case r.TypeName == vocabulary.CatalogTemplate && r.End2GUID == server.GUID:
			assert.Equal(t, dit, r.End1GUID)
			catalogTemplate++
		case r.TypeName == vocabulary.ServerEndpoint && r.End1GUID == server.GUID:
			serverEndpoint++
		case r.TypeName == vocabulary.SpecificationPropertyAssignment && r.End1GUID == server.GUID:
			assignments++
		}
	}
	assert.Equal(t, 1, catalogTemplate)
	assert.Equal(t, 1, serverEndpoint)
	assert.Equal(t, 7, assignments, "six placeholders and one replacement attribute")

	csv, ok := arc.EntityByQualifiedName("CSV Data File:CSV Data File:Template")
	require.True(t, ok)
	assert.True(t, csv.HasClassification("DataStoreEncoding"))

	// Shared placeholders exist once.
	placeholders := 0
	for _, e := range arc.Entities {
		if e.QualifiedName == catalogue.PlaceholderQualifiedName("hostIdentifier") {
			placeholders++
		}
	}
	assert.Equal(t, 1, placeholders)
}

func TestTemplates_CapabilityTemplate(t *testing.T) {
	s := newState(t, defaultCatalogue(t))
	require.NoError(t, run(s, All()...))

	guid, err := s.Tables.Templates.Get("Apache Kafka Server:Apache Kafka Event Broker:Template")
	require.NoError(t, err)
	node, ok := s.Assembler.Node(guid)
	require.True(t, ok)
	assert.Equal(t, "EventBroker", node.TypeName)
}

func TestDeployedImplementationTypes_ParentAfterChild(t *testing.T) {
	cat := &catalogue.Catalogue{
		DeployedImplementationTypes: []catalogue.DeployedImplementationType{
			{Name: "CSV Data File", AssociatedTypeName: "CSVFile", IsATypeOf: "Data File"},
			{Name: "Data File", AssociatedTypeName: "DataFile"},
		},
	}
	s := newState(t, cat)
	require.NoError(t, run(s, OpenMetadataTypes{}, DeployedImplementationTypes{}))

	child, _ := s.Tables.DeployedImplementationTypes.Get("CSV Data File")
	parent, _ := s.Tables.DeployedImplementationTypes.Get("Data File")

	found := false
	for _, r := range snapshot(s).RelationshipsOfType(vocabulary.ValidValueAssociation) {
		if r.End1GUID == child && r.End2GUID == parent {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDeployedImplementationTypes_UnknownParent(t *testing.T) {
	cat := &catalogue.Catalogue{
		DeployedImplementationTypes: []catalogue.DeployedImplementationType{
			{Name: "CSV Data File", AssociatedTypeName: "CSVFile", IsATypeOf: "Data File"},
		},
	}
	err := run(newState(t, cat), OpenMetadataTypes{}, DeployedImplementationTypes{})
	assert.True(t, errors.Is(err, omarchive.ErrDanglingReference))
}

func TestOpenMetadataTypes_TaxonomyUniqueness(t *testing.T) {
	cat := defaultCatalogue(t)
	s := newState(t, cat)
	require.NoError(t, run(s, All()...))
	arc := snapshot(s)

	for _, key := range s.Taxonomy.Keys() {
		count := 0
		for _, e := range arc.Entities {
			if e.QualifiedName == key.QualifiedName() {
				count++
			}
		}
		assert.Equal(t, 1, count, "category %s", key.QualifiedName())
	}

	// Every value is a member of exactly one category: the one it was recorded under.
	parents := map[string][]string{}
	for _, r := range arc.RelationshipsOfType(vocabulary.ValidValuesMember) {
		parents[r.End2GUID] = append(parents[r.End2GUID], r.End1GUID)
	}
	for _, e := range arc.Entities {
		key, ok := s.Taxonomy.CategoryOf(e.GUID)
		if !ok {
			continue
		}
		category, ok := s.Taxonomy.Lookup(key)
		require.True(t, ok)
		assert.Equal(t, []string{category}, parents[e.GUID], "value %s", e.QualifiedName)
	}
}

func TestGovernanceActionProcesses_Transitions(t *testing.T) {
	cat := defaultCatalogue(t)
	s := newState(t, cat)
	require.NoError(t, run(s, All()...))
	arc := snapshot(s)

	process, ok := arc.EntityByQualifiedName("GovernanceActionProcess:OnboardCSVFile")
	require.True(t, ok)

	flows := arc.RelationshipsOfType(vocabulary.GovernanceActionProcessFlow)
	var first string
	for _, f := range flows {
		if f.End1GUID == process.GUID {
			first = f.End2GUID
		}
	}
	survey, ok := arc.EntityByQualifiedName("GovernanceActionProcess:OnboardCSVFile:survey")
	require.True(t, ok)
	assert.Equal(t, survey.GUID, first)

	guards := map[string]interface{}{}
	for _, r := range arc.RelationshipsOfType(vocabulary.NextGovernanceActionProcessStep) {
		if r.End1GUID == survey.GUID {
			guards[r.Properties[vocabulary.PropGuard].(string)] = r.Properties[vocabulary.PropMandatoryGuard]
		}
	}
	assert.Equal(t, map[string]interface{}{"survey-completed": true, "survey-failed": false}, guards)
}

func TestGovernanceActionProcesses_UnknownRequestType(t *testing.T) {
	cat := defaultCatalogue(t)
	cat.Processes[0].Steps[0].RequestType = "survey-everything"

	err := run(newState(t, cat), All()...)
	require.Error(t, err)
	var lookup *LookupError
	require.True(t, errors.As(err, &lookup))
	assert.Equal(t, "governance request type", lookup.Table)
}

func TestRequestTypes_UnknownTargetKind(t *testing.T) {
	cat := defaultCatalogue(t)
	cat.RequestTypes[0].ActionTargets[0].Kind = "asset"

	err := run(newState(t, cat), All()...)
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))
}

func TestTable(t *testing.T) {
	table := newTable("widget")
	table.Put("b", "2")
	table.Put("a", "1")

	guid, err := table.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", guid)
	assert.Equal(t, []string{"a", "b"}, table.Keys())
	assert.Equal(t, 2, table.Len())

	_, err = table.Get("c")
	assert.EqualError(t, err, `dangling reference: no widget named "c" has been materialized`)
	assert.True(t, errors.Is(err, omarchive.ErrDanglingReference))
}
