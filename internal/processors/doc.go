// Package processors turns catalogue definitions into archive graph content.
//
// There is one Processor per definition category. A processor reads its
// records from State.Catalogue, creates nodes and relationships through
// State.Assembler and State.Taxonomy, and records the GUIDs later processors
// need in State.Tables.
//
// Processors never reach into each other: the only shared data are the
// tables, and Requires names the processors whose tables a processor reads.
// A table miss is a *LookupError wrapping omarchive.ErrDanglingReference, so
// running a processor before one it requires fails fast instead of producing
// a partial graph.
//
// All returns the processors in the order they must run.
package processors
