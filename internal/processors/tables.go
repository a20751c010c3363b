package processors

import (
	"fmt"
	"sort"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// LookupError reports a key that is missing from a lookup table.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("dangling reference: no %s named %q has been materialized", e.Table, e.Key)
}

// Unwrap allows errors.Is(err, omarchive.ErrDanglingReference).
func (e *LookupError) Unwrap() error {
	return omarchive.ErrDanglingReference
}

// Table maps definition names to the GUIDs of their nodes.
type Table struct {
	name    string
	entries map[string]string
}

func newTable(name string) *Table {
	return &Table{name: name, entries: make(map[string]string)}
}

// Name returns the table name used in errors.
func (t *Table) Name() string { return t.name }

// Put records the GUID for key.
func (t *Table) Put(key, guid string) {
	t.entries[key] = guid
}

// Get returns the GUID for key or a *LookupError.
func (t *Table) Get(key string) (string, error) {
	guid, ok := t.entries[key]
	if !ok {
		return "", &LookupError{Table: t.name, Key: key}
	}
	return guid, nil
}

// Has reports whether key is in the table.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Keys returns the table keys, sorted.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tables are the lookup tables shared between processors.
type Tables struct {
	DeployedImplementationTypes *Table // name -> valid value GUID
	ConnectorCategories         *Table // name -> GUID
	ConnectorTypes              *Table // name -> GUID
	Templates                   *Table // template qualified name -> asset GUID
	SpecificationProperties     *Table // placeholder or replacement attribute qualified name -> GUID
	IntegrationGroups           *Table // name -> GUID
	IntegrationConnectors       *Table // name -> GUID
	Engines                     *Table // name -> GUID
	Services                    *Table // name -> GUID
	GovernanceActionTypes       *Table // "<engine>:<request type>" -> GUID
}

// NewTables creates empty tables.
func NewTables() *Tables {
	return &Tables{
		DeployedImplementationTypes: newTable("deployed implementation type"),
		ConnectorCategories:         newTable("connector category"),
		ConnectorTypes:              newTable("connector type"),
		Templates:                   newTable("template"),
		SpecificationProperties:     newTable("specification property"),
		IntegrationGroups:           newTable("integration group"),
		IntegrationConnectors:       newTable("integration connector"),
		Engines:                     newTable("governance engine"),
		Services:                    newTable("governance service"),
		GovernanceActionTypes:       newTable("governance request type"),
	}
}
