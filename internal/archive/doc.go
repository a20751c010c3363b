// Package archive defines the artifact an archive build produces: a header
// plus the complete set of entities (nodes), relationships (edges) and the
// classifications attached to entities.
//
// The serialized form is indented JSON. Entities are ordered by qualified name
// and relationships by (type, end1, end2, GUID), and map keys are written
// sorted, so the same graph always serializes the same way apart from the
// header creation time.
package archive
