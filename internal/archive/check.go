package archive

import (
	"errors"
	"fmt"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// CheckReferences verifies that every relationship end names an entity in the
// archive and that no GUID or qualified name is used twice.
func (a *Archive) CheckReferences() error {
	var errs []error

	guids := make(map[string]bool, len(a.Entities))
	names := make(map[string]bool, len(a.Entities))
	for _, e := range a.Entities {
		if guids[e.GUID] {
			errs = append(errs, fmt.Errorf("entity GUID %s appears twice: %w", e.GUID, omarchive.ErrGUIDConflict))
		}
		if names[e.QualifiedName] {
			errs = append(errs, fmt.Errorf("qualified name %q appears twice: %w", e.QualifiedName, omarchive.ErrGUIDConflict))
		}
		guids[e.GUID] = true
		names[e.QualifiedName] = true
	}

	seen := make(map[string]bool, len(a.Relationships))
	for _, r := range a.Relationships {
		if seen[r.GUID] || guids[r.GUID] {
			errs = append(errs, fmt.Errorf("relationship GUID %s is not unique: %w", r.GUID, omarchive.ErrGUIDConflict))
		}
		seen[r.GUID] = true
		if !guids[r.End1GUID] {
			errs = append(errs, fmt.Errorf("%s %s end1 %s: %w", r.TypeName, r.GUID, r.End1GUID, omarchive.ErrDanglingReference))
		}
		if !guids[r.End2GUID] {
			errs = append(errs, fmt.Errorf("%s %s end2 %s: %w", r.TypeName, r.GUID, r.End2GUID, omarchive.ErrDanglingReference))
		}
	}

	return errors.Join(errs...)
}
