package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal encodes the archive as indented JSON with a trailing newline.
func Marshal(a *Archive) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return nil, fmt.Errorf("encode archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes an archive produced by Marshal.
func Unmarshal(data []byte) (*Archive, error) {
	var a Archive
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode archive: %w", err)
	}
	return &a, nil
}

// ReadFile loads an archive file written from Marshal output.
func ReadFile(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}
	return Unmarshal(data)
}
