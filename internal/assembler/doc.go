// Package assembler builds the working graph of an archive.
//
// The Assembler is the only code that mutates the graph. It owns three checks
// every processor relies on:
//
//   - Identity: each node's GUID comes from the identifier registry, and a node
//     declared with a well-known GUID must end up with exactly that GUID.
//   - Existence: a relationship or classification may only reference nodes that
//     are already in the graph. A miss is a *DanglingReferenceError, which is
//     how a processor running before its dependencies is detected.
//   - Uniqueness: a qualified name becomes a node once, and a relationship tuple
//     (type, end1, end2, discriminator) becomes an edge once.
//
// Typed helpers (AddAsset, AddConnection, AddConnectorType, ...) wrap AddNode
// and AddEdge with the property layout of each open metadata type.
package assembler
