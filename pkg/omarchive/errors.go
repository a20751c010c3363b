package omarchive

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of an archive build.
// Structured error types elsewhere in the module wrap these so callers can
// classify a failure with errors.Is().
//
// Example usage:
//
//	_, err := builder.Run(cfg)
//	if errors.Is(err, omarchive.ErrGUIDConflict) {
//	    // a definition was re-keyed with a different well-known GUID
//	}
var (
	// ErrInvalidConfig indicates the build configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGUIDConflict indicates a qualified name resolved to two different GUIDs,
	// or one GUID was claimed by two qualified names.
	ErrGUIDConflict = errors.New("guid conflict")

	// ErrDanglingReference indicates a relationship, classification or lookup
	// referenced a node that does not exist in the working graph.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrDuplicateTaxonomyNode indicates the valid-value hierarchy tried to create
	// a category node that already exists.
	ErrDuplicateTaxonomyNode = errors.New("duplicate taxonomy node")

	// ErrPersistenceFailure indicates the identifier registry could not be loaded or saved.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrInvalidArgument indicates a malformed request to one of the build components.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCatalogue indicates the definition catalogue failed validation.
	ErrInvalidCatalogue = errors.New("invalid catalogue")

	// ErrOrdering indicates the declared processor order violates a processor dependency.
	ErrOrdering = errors.New("processor ordering violation")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrGUIDConflict):
		return ExitGUIDConflict
	case errors.Is(err, ErrOrdering):
		// Plan errors also match ErrDanglingReference; the plan is the cause.
		return ExitOrderingError
	case errors.Is(err, ErrDanglingReference):
		return ExitDanglingReference
	case errors.Is(err, ErrDuplicateTaxonomyNode):
		return ExitDuplicateTaxonomyNode
	case errors.Is(err, ErrPersistenceFailure):
		return ExitPersistenceFailure
	case errors.Is(err, ErrInvalidCatalogue):
		return ExitInvalidCatalogue
	}

	// Check for cobra's flag and argument errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}
	if strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"flag needs an argument",
	"required flag",
}
