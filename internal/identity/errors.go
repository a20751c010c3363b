package identity

import (
	"fmt"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// ConflictError reports a qualified name that resolved to two different GUIDs,
// or a GUID that two qualified names tried to claim.
type ConflictError struct {
	QualifiedName string // Name being reserved
	ExistingGUID  string // GUID already bound to the name (or the claimed GUID)
	RequestedGUID string // GUID the caller asked for
	Owner         string // Qualified name that already owns RequestedGUID, if any
	Retired       bool   // RequestedGUID is in the used set without a current owner
}

func (e *ConflictError) Error() string {
	if e.Owner != "" {
		return fmt.Sprintf("guid conflict: %s cannot take GUID %s, already used by %q",
			e.QualifiedName, e.RequestedGUID, e.Owner)
	}
	if e.Retired {
		return fmt.Sprintf("guid conflict: %s cannot take GUID %s, it belongs to a retired qualified name",
			e.QualifiedName, e.RequestedGUID)
	}
	return fmt.Sprintf("guid conflict: %s is bound to %s but %s was requested",
		e.QualifiedName, e.ExistingGUID, e.RequestedGUID)
}

// Unwrap allows errors.Is(err, omarchive.ErrGUIDConflict).
func (e *ConflictError) Unwrap() error {
	return omarchive.ErrGUIDConflict
}
