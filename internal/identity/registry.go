package identity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// Entry is one qualified-name binding.
type Entry struct {
	QualifiedName string
	GUID          string
}

// Registry assigns and remembers one GUID per qualified name.
// Thread-Safety: NOT safe for concurrent use; a build owns its registry.
type Registry struct {
	guids    map[string]string // qualified name -> GUID
	owners   map[string]string // GUID -> qualified name ("" for a retired name)
	reserved bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		guids:  make(map[string]string),
		owners: make(map[string]string),
	}
}

// Reserve returns the GUID for qualifiedName, assigning one if the name is new.
//
// When requestedGUID is non-empty it must be a valid UUID. If the name is
// already bound to another GUID, or the requested GUID already belongs to
// another name, Reserve fails with a *ConflictError.
func (r *Registry) Reserve(qualifiedName, requestedGUID string) (string, error) {
	if strings.TrimSpace(qualifiedName) == "" {
		return "", fmt.Errorf("qualified name is required: %w", omarchive.ErrInvalidArgument)
	}
	r.reserved = true

	requested := ""
	if requestedGUID != "" {
		normalized, err := NormalizeGUID(requestedGUID)
		if err != nil {
			return "", fmt.Errorf("reserve %s: %w", qualifiedName, err)
		}
		requested = normalized
	}

	if existing, ok := r.guids[qualifiedName]; ok {
		if requested != "" && requested != existing {
			return "", &ConflictError{
				QualifiedName: qualifiedName,
				ExistingGUID:  existing,
				RequestedGUID: requested,
			}
		}
		return existing, nil
	}

	guid := requested
	if guid == "" {
		guid = GenerateGUID(qualifiedName)
	}

	if owner, used := r.owners[guid]; used && owner != qualifiedName {
		return "", &ConflictError{
			QualifiedName: qualifiedName,
			ExistingGUID:  guid,
			RequestedGUID: guid,
			Owner:         owner,
			Retired:       owner == "",
		}
	}

	r.guids[qualifiedName] = guid
	r.owners[guid] = qualifiedName
	return guid, nil
}

// Lookup returns the GUID bound to qualifiedName without assigning one.
func (r *Registry) Lookup(qualifiedName string) (string, bool) {
	guid, ok := r.guids[qualifiedName]
	return guid, ok
}

// Owner returns the qualified name bound to guid. A GUID kept only in the
// used set (a retired name) reports ok with an empty name.
func (r *Registry) Owner(guid string) (string, bool) {
	name, ok := r.owners[guid]
	return name, ok
}

// Len returns the number of qualified names in the registry.
func (r *Registry) Len() int {
	return len(r.guids)
}

// Entries returns all bindings sorted by qualified name.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.guids))
	for name, guid := range r.guids {
		entries = append(entries, Entry{QualifiedName: name, GUID: guid})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].QualifiedName < entries[j].QualifiedName
	})
	return entries
}

// UsedGUIDs returns every GUID ever issued, sorted.
func (r *Registry) UsedGUIDs() []string {
	used := make([]string, 0, len(r.owners))
	for guid := range r.owners {
		used = append(used, guid)
	}
	sort.Strings(used)
	return used
}

// merge folds a previously persisted state into the registry.
func (r *Registry) merge(state *persistedState) error {
	for name, guid := range state.GUIDs {
		normalized, err := NormalizeGUID(guid)
		if err != nil {
			return fmt.Errorf("entry %q: %w", name, err)
		}
		if owner, used := r.owners[normalized]; used && owner != "" && owner != name {
			return &ConflictError{QualifiedName: name, ExistingGUID: normalized, RequestedGUID: normalized, Owner: owner}
		}
		r.guids[name] = normalized
		r.owners[normalized] = name
	}
	for _, guid := range state.UsedGUIDs {
		normalized, err := NormalizeGUID(guid)
		if err != nil {
			return fmt.Errorf("used GUID list: %w", err)
		}
		if _, known := r.owners[normalized]; !known {
			r.owners[normalized] = ""
		}
	}
	return nil
}
