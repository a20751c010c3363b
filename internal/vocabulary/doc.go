// Package vocabulary names the open metadata types an archive build emits.
//
// Entity, relationship and classification type names are plain strings in the
// archive. Keeping them here means every processor spells a type the same way
// and a renamed type changes in one place.
package vocabulary
