package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified bytes.
	CalculateRaw(content []byte) string

	// CalculateCanonical computes a checksum of the canonical encoding of v.
	CalculateCanonical(v interface{}) (string, error)
}

// SHA256 implements checksum calculation using SHA-256.
//
// The canonical encoding is compact JSON. encoding/json writes struct fields in
// declaration order and map keys sorted, so any value built only from structs,
// slices, maps and scalars has exactly one encoding. Callers are responsible
// for ordering slices.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateCanonical computes SHA-256 of the canonical JSON encoding of v.
func (c SHA256) CalculateCanonical(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("canonical encoding failed: %w", err)
	}
	return c.CalculateRaw(data), nil
}
