package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// NamespaceQualifiedName is the UUID namespace for name-based GUIDs, derived
// from the URL namespace and "omarchive/qualified-name/v1".
var NamespaceQualifiedName = uuid.NewSHA1(uuid.NameSpaceURL, []byte("omarchive/qualified-name/v1"))

// GenerateGUID returns the deterministic UUID v5 for a qualified name.
// Unlike file paths, qualified names are case-sensitive and used verbatim.
func GenerateGUID(qualifiedName string) string {
	return uuid.NewSHA1(NamespaceQualifiedName, []byte(qualifiedName)).String()
}

// NormalizeGUID parses a GUID in any form uuid.Parse accepts and returns
// its canonical lowercase string.
func NormalizeGUID(guid string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(guid))
	if err != nil {
		return "", fmt.Errorf("%q is not a valid GUID: %w", guid, omarchive.ErrInvalidArgument)
	}
	if id == uuid.Nil {
		return "", fmt.Errorf("the nil UUID cannot identify a node: %w", omarchive.ErrInvalidArgument)
	}
	return id.String(), nil
}
