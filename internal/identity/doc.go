// Package identity implements the identifier registry of an archive build.
//
// # Overview
//
// Every node and relationship in an archive is keyed by a qualified name. The
// registry maps each qualified name to exactly one GUID and remembers the
// mapping between builds, so the repository that loads successive releases of
// the archive sees the same identity for the same definition.
//
// # Identity Rules
//
//   - A qualified name seen before (this build or a loaded prior build) always
//     returns its original GUID.
//   - A caller may request a well-known GUID. Requesting a GUID that differs from
//     the one already bound to the name is a GUID conflict.
//   - A GUID can belong to one qualified name only. The set of used GUIDs is
//     persisted alongside the map so retired names keep their GUIDs reserved.
//   - Fresh GUIDs are UUID v5 of a fixed namespace and the qualified name, so an
//     empty registry still produces the same GUIDs on every build.
//
// # Persistence
//
//	reg := identity.New()
//	if err := reg.Load(path); err != nil { ... }   // missing file is an empty registry
//	guid, err := reg.Reserve("DeployedImplementationType:PostgreSQL Server", "")
//	...
//	if err := reg.Persist(path); err != nil { ... }
//
// Load must happen before the first Reserve. Persist writes a temporary file in
// the target directory and renames it into place.
package identity
