package catalogue

import (
	"fmt"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// DefinitionError is a problem with one catalogue record.
type DefinitionError struct {
	Category string // Definition category, e.g. "templates"
	Name     string // Record name ("" for file-level problems)
	Field    string // Offending field, if any
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
	Cause    error  // Sentinel to classify the problem; ErrInvalidCatalogue when nil
}

func (e *DefinitionError) Error() string {
	location := e.Category
	if e.Name != "" {
		location = fmt.Sprintf("%s %q", e.Category, e.Name)
	}

	msg := fmt.Sprintf("catalogue error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("catalogue error in %s [field: %s]: %s", location, e.Field, e.Message)
	}
	if e.Hint != "" {
		msg += "\n  Hint: " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, omarchive.ErrInvalidCatalogue), or the more
// specific Cause when one is set.
func (e *DefinitionError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return omarchive.ErrInvalidCatalogue
}
