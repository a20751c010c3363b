package assembler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/identity"
	"github.com/vvka-141/omarchive/internal/vocabulary"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// NodeSpec describes a node to add.
type NodeSpec struct {
	TypeName        string
	QualifiedName   string
	DisplayName     string
	Description     string
	GUID            string // Well-known GUID, empty to let the registry decide
	Properties      archive.Properties
	Classifications []archive.Classification
}

// EdgeSpec describes a relationship to add.
type EdgeSpec struct {
	TypeName      string
	End1          string
	End2          string
	Discriminator string // Distinguishes several edges of one type between the same ends
	Properties    archive.Properties
	EffectiveFrom *time.Time
	EffectiveTo   *time.Time
}

// Stats counts the nodes, edges and classifications in the graph.
type Stats struct {
	Nodes           int
	Edges           int
	Classifications int
}

// Assembler holds the working graph of one build.
// Thread-Safety: NOT safe for concurrent use; a build is single threaded.
type Assembler struct {
	registry *identity.Registry
	logger   omarchive.Logger

	nodes  map[string]*archive.Entity // GUID -> node
	byName map[string]string          // qualified name -> GUID
	edges  map[string]*archive.Relationship
	tuples map[string]string // edge key -> edge GUID

	classifications int
}

// New creates an Assembler that takes identities from registry.
// Panics on nil dependencies: these are wiring errors, not runtime conditions.
func New(registry *identity.Registry, logger omarchive.Logger) *Assembler {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Assembler{
		registry: registry,
		logger:   logger,
		nodes:    make(map[string]*archive.Entity),
		byName:   make(map[string]string),
		edges:    make(map[string]*archive.Relationship),
		tuples:   make(map[string]string),
	}
}

// AddNode creates a node and returns its GUID.
func (a *Assembler) AddNode(spec NodeSpec) (string, error) {
	if spec.TypeName == "" {
		return "", fmt.Errorf("node %q has no type name: %w", spec.QualifiedName, omarchive.ErrInvalidArgument)
	}
	if strings.TrimSpace(spec.QualifiedName) == "" {
		return "", fmt.Errorf("%s node has no qualified name: %w", spec.TypeName, omarchive.ErrInvalidArgument)
	}

	// Reserve first: a second definition with a different well-known GUID is
	// a conflict, not a duplicate.
	guid, err := a.registry.Reserve(spec.QualifiedName, spec.GUID)
	if err != nil {
		return "", fmt.Errorf("add %s node: %w", spec.TypeName, err)
	}
	if _, ok := a.byName[spec.QualifiedName]; ok {
		return "", fmt.Errorf("%s %q (GUID %s): %w", spec.TypeName, spec.QualifiedName, guid, ErrDuplicateNode)
	}
	if err := assertWellKnownGUID(spec, guid); err != nil {
		return "", err
	}

	props := make(archive.Properties, len(spec.Properties)+3)
	for k, v := range spec.Properties {
		props[k] = v
	}
	props[vocabulary.PropQualifiedName] = spec.QualifiedName
	if spec.DisplayName != "" {
		props[vocabulary.PropDisplayName] = spec.DisplayName
	}
	if spec.Description != "" {
		props[vocabulary.PropDescription] = spec.Description
	}

	node := &archive.Entity{
		GUID:          guid,
		TypeName:      spec.TypeName,
		QualifiedName: spec.QualifiedName,
		Properties:    props,
	}
	a.nodes[guid] = node
	a.byName[spec.QualifiedName] = guid

	for _, c := range spec.Classifications {
		if err := a.AddClassification(guid, c); err != nil {
			return "", err
		}
	}
	return guid, nil
}

// assertWellKnownGUID fails when a node declared with a well-known GUID was
// given any other GUID.
func assertWellKnownGUID(spec NodeSpec, guid string) error {
	if spec.GUID == "" {
		return nil
	}
	declared, err := identity.NormalizeGUID(spec.GUID)
	if err != nil {
		return fmt.Errorf("node %q: %w", spec.QualifiedName, err)
	}
	if declared != guid {
		return &identity.ConflictError{
			QualifiedName: spec.QualifiedName,
			ExistingGUID:  guid,
			RequestedGUID: declared,
		}
	}
	return nil
}

// AddEdge creates a relationship between two existing nodes and returns its GUID.
func (a *Assembler) AddEdge(spec EdgeSpec) (string, error) {
	if spec.TypeName == "" {
		return "", fmt.Errorf("relationship has no type name: %w", omarchive.ErrInvalidArgument)
	}
	if _, ok := a.nodes[spec.End1]; !ok {
		return "", &DanglingReferenceError{Kind: "relationship", TypeName: spec.TypeName, Role: "end1", GUID: spec.End1}
	}
	if _, ok := a.nodes[spec.End2]; !ok {
		return "", &DanglingReferenceError{Kind: "relationship", TypeName: spec.TypeName, Role: "end2", GUID: spec.End2}
	}
	if spec.EffectiveFrom != nil && spec.EffectiveTo != nil && spec.EffectiveTo.Before(*spec.EffectiveFrom) {
		return "", fmt.Errorf("%s effective window ends before it starts: %w", spec.TypeName, omarchive.ErrInvalidArgument)
	}

	key := edgeKey(spec)
	if existing, ok := a.tuples[key]; ok {
		return "", fmt.Errorf("%s (GUID %s): %w", key, existing, ErrDuplicateEdge)
	}

	guid, err := a.registry.Reserve(key, "")
	if err != nil {
		return "", fmt.Errorf("add %s relationship: %w", spec.TypeName, err)
	}

	var props archive.Properties
	if len(spec.Properties) > 0 {
		props = make(archive.Properties, len(spec.Properties))
		for k, v := range spec.Properties {
			props[k] = v
		}
	}

	a.edges[guid] = &archive.Relationship{
		GUID:          guid,
		TypeName:      spec.TypeName,
		End1GUID:      spec.End1,
		End2GUID:      spec.End2,
		Properties:    props,
		EffectiveFrom: utcPtr(spec.EffectiveFrom),
		EffectiveTo:   utcPtr(spec.EffectiveTo),
	}
	a.tuples[key] = guid
	return guid, nil
}

// edgeKey is the registry key of a relationship. End GUIDs are stable, so the
// key (and with it the relationship GUID) is stable too.
func edgeKey(spec EdgeSpec) string {
	key := "Relationship:" + spec.TypeName + ":" + spec.End1 + "->" + spec.End2
	if spec.Discriminator != "" {
		key += ":" + spec.Discriminator
	}
	return key
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// AddClassification attaches a classification to an existing node.
func (a *Assembler) AddClassification(guid string, c archive.Classification) error {
	if c.Name == "" {
		return fmt.Errorf("classification has no name: %w", omarchive.ErrInvalidArgument)
	}
	node, ok := a.nodes[guid]
	if !ok {
		return &DanglingReferenceError{Kind: "classification", TypeName: c.Name, Role: "target", GUID: guid}
	}

	var props archive.Properties
	if len(c.Properties) > 0 {
		props = make(archive.Properties, len(c.Properties))
		for k, v := range c.Properties {
			props[k] = v
		}
	}
	node.Classifications = append(node.Classifications, archive.Classification{Name: c.Name, Properties: props})
	a.classifications++
	return nil
}

// Has reports whether guid is a node in the graph.
func (a *Assembler) Has(guid string) bool {
	_, ok := a.nodes[guid]
	return ok
}

// Lookup returns the GUID of the node with the given qualified name.
func (a *Assembler) Lookup(qualifiedName string) (string, bool) {
	guid, ok := a.byName[qualifiedName]
	return guid, ok
}

// Node returns a copy of the node with the given GUID.
func (a *Assembler) Node(guid string) (archive.Entity, bool) {
	node, ok := a.nodes[guid]
	if !ok {
		return archive.Entity{}, false
	}
	return *node, true
}

// Stats returns current graph counts.
func (a *Assembler) Stats() Stats {
	return Stats{Nodes: len(a.nodes), Edges: len(a.edges), Classifications: a.classifications}
}

// Snapshot returns the graph as sorted slices. Entities are ordered by
// qualified name; relationships by type, ends and GUID.
func (a *Assembler) Snapshot() ([]archive.Entity, []archive.Relationship) {
	entities := make([]archive.Entity, 0, len(a.nodes))
	for _, n := range a.nodes {
		e := *n
		e.Classifications = append([]archive.Classification(nil), n.Classifications...)
		entities = append(entities, e)
	}
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].QualifiedName < entities[j].QualifiedName
	})

	relationships := make([]archive.Relationship, 0, len(a.edges))
	for _, r := range a.edges {
		relationships = append(relationships, *r)
	}
	sort.Slice(relationships, func(i, j int) bool {
		ri, rj := relationships[i], relationships[j]
		if ri.TypeName != rj.TypeName {
			return ri.TypeName < rj.TypeName
		}
		if ri.End1GUID != rj.End1GUID {
			return ri.End1GUID < rj.End1GUID
		}
		if ri.End2GUID != rj.End2GUID {
			return ri.End2GUID < rj.End2GUID
		}
		return ri.GUID < rj.GUID
	})

	return entities, relationships
}
