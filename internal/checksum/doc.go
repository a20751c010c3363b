// Package checksum computes content fingerprints for archive builds.
//
// Two builds with the same definitions and the same starting identifier
// registry must produce the same graph. The fingerprint is a SHA-256 over a
// canonical encoding of the graph content (entities and relationships, not the
// header), so equal fingerprints mean equal content even when creation times
// or serialization layout differ.
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(fileContent)
//	content, err := calculator.CalculateCanonical(archive.Content())
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
