package assembler

import (
	"fmt"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// DanglingReferenceError reports a relationship end or classification target
// that is not in the graph.
type DanglingReferenceError struct {
	Kind     string // "relationship" or "classification"
	TypeName string // Relationship or classification type
	Role     string // "end1", "end2" or "target"
	GUID     string // Missing node GUID
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference: %s %s %s %q is not in the graph", e.Kind, e.TypeName, e.Role, e.GUID)
}

// Unwrap allows errors.Is(err, omarchive.ErrDanglingReference).
func (e *DanglingReferenceError) Unwrap() error {
	return omarchive.ErrDanglingReference
}

// ErrDuplicateNode is wrapped when a qualified name is added to the graph twice.
var ErrDuplicateNode = fmt.Errorf("node already exists: %w", omarchive.ErrInvalidArgument)

// ErrDuplicateEdge is wrapped when the same relationship tuple is added twice.
var ErrDuplicateEdge = fmt.Errorf("relationship already exists: %w", omarchive.ErrInvalidArgument)
