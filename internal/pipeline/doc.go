// Package pipeline runs an archive build from configuration to file.
//
// # Build Flow
//
//  1. Validate the configuration and the processor plan
//  2. Load the catalogue (directory or embedded default)
//  3. Load the identifier registry from its file
//  4. Run every processor of the plan in order; the first error aborts
//  5. Snapshot the graph, check references and compute the content fingerprint
//
// Run adds the output step: the archive is staged next to its destination,
// the registry is persisted, and only then is the archive renamed into place.
// A failed build leaves neither a new archive nor a changed registry.
//
// # Plans
//
// A Plan is the explicit processor order. Validate rejects unknown or
// duplicate names, requirements that run later than the processor needing
// them, and dependency cycles, all as omarchive.ErrOrdering. Except for
// duplicates these also match omarchive.ErrDanglingReference, the failure the
// misordered processors would otherwise hit mid build.
package pipeline
