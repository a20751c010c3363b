package taxonomy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/vocabulary"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// RootQualifiedName is the qualified name of the taxonomy root.
const RootQualifiedName = "OpenMetadataTypes:ValidValues"

// valuePrefix prefixes the qualified name of every valid value.
const valuePrefix = "ValidMetadataValue:"

// Key identifies one category level. Empty fields are absent levels.
type Key struct {
	TypeName     string
	PropertyName string
	MapName      string
}

// reservedChars separate the levels of a qualified name and may not appear
// in type or property names.
const reservedChars = ".[]="

// Validate reports whether the key forms a valid prefix chain whose levels
// render to a qualified name no other key shares.
func (k Key) Validate() error {
	if strings.ContainsAny(k.TypeName, reservedChars) {
		return fmt.Errorf("type name %q contains one of %q: %w", k.TypeName, reservedChars, omarchive.ErrInvalidArgument)
	}
	if strings.ContainsAny(k.PropertyName, reservedChars) {
		return fmt.Errorf("property name %q contains one of %q: %w", k.PropertyName, reservedChars, omarchive.ErrInvalidArgument)
	}
	if k.MapName != "" && k.PropertyName == "" {
		return fmt.Errorf("map name %q without property name: %w", k.MapName, omarchive.ErrInvalidArgument)
	}
	if k.PropertyName != "" && k.TypeName == "" {
		return fmt.Errorf("property name %q without type name: %w", k.PropertyName, omarchive.ErrInvalidArgument)
	}
	return nil
}

// Parent returns the key one level up. The root is its own parent.
func (k Key) Parent() Key {
	switch {
	case k.MapName != "":
		return Key{TypeName: k.TypeName, PropertyName: k.PropertyName}
	case k.PropertyName != "":
		return Key{TypeName: k.TypeName}
	default:
		return Key{}
	}
}

// IsRoot reports whether k is the root key.
func (k Key) IsRoot() bool {
	return k == Key{}
}

// path renders the key below the root, e.g. "Asset.deployedImplementationType[x]".
func (k Key) path() string {
	p := k.TypeName
	if k.PropertyName != "" {
		p += "." + k.PropertyName
	}
	if k.MapName != "" {
		p += "[" + k.MapName + "]"
	}
	return p
}

// QualifiedName returns the qualified name of the category node for k.
func (k Key) QualifiedName() string {
	if k.IsRoot() {
		return RootQualifiedName
	}
	return RootQualifiedName + ":" + k.path()
}

// ValueQualifiedName returns the qualified name of a value under k.
func (k Key) ValueQualifiedName(value string) string {
	return valuePrefix + k.path() + "=" + value
}

// ValidValue describes one enumerated value.
type ValidValue struct {
	Value        string // Preferred value, part of the qualified name
	DisplayName  string
	Description  string
	DataType     string
	GUID         string // Optional well-known GUID
	IsDefault    bool
	IsDeprecated bool
	Additional   map[string]string
}

// Builder creates category and value nodes through an assembler.
// Thread-Safety: NOT safe for concurrent use.
type Builder struct {
	assembler *assembler.Assembler
	logger    omarchive.Logger
	cache     map[Key]string
	values    map[string]Key // value GUID -> category
}

// New creates a Builder that writes into a.
func New(a *assembler.Assembler, logger omarchive.Logger) *Builder {
	if a == nil {
		panic("assembler cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Builder{
		assembler: a,
		logger:    logger,
		cache:     make(map[Key]string),
		values:    make(map[string]Key),
	}
}

// Category returns the GUID of the category node for the given levels,
// creating it and any missing ancestors. Empty strings are absent levels.
func (b *Builder) Category(typeName, propertyName, mapName string) (string, error) {
	key := Key{TypeName: typeName, PropertyName: propertyName, MapName: mapName}
	if err := key.Validate(); err != nil {
		return "", err
	}
	return b.category(key)
}

func (b *Builder) category(key Key) (string, error) {
	if guid, ok := b.cache[key]; ok {
		return guid, nil
	}

	var parentGUID string
	if !key.IsRoot() {
		guid, err := b.category(key.Parent())
		if err != nil {
			return "", err
		}
		parentGUID = guid
	}

	guid, err := b.assembler.AddValidValue(categorySpec(key))
	if err != nil {
		if errors.Is(err, assembler.ErrDuplicateNode) {
			return "", fmt.Errorf("category %s: %w", key.QualifiedName(), omarchive.ErrDuplicateTaxonomyNode)
		}
		return "", fmt.Errorf("category %s: %w", key.QualifiedName(), err)
	}
	if parentGUID != "" {
		if _, err := b.assembler.AddEdge(assembler.EdgeSpec{
			TypeName: vocabulary.ValidValuesMember,
			End1:     parentGUID,
			End2:     guid,
		}); err != nil {
			return "", fmt.Errorf("category %s: %w", key.QualifiedName(), err)
		}
	}

	b.cache[key] = guid
	b.logger.Verbose("Valid value category %s (%s)", key.QualifiedName(), guid)
	return guid, nil
}

func categorySpec(key Key) assembler.ValidValueSpec {
	spec := assembler.ValidValueSpec{
		TypeName:      vocabulary.ValidValueSet,
		QualifiedName: key.QualifiedName(),
	}
	if key.IsRoot() {
		spec.DisplayName = "Open Metadata Types Valid Values"
		spec.Description = "Valid values for open metadata types and their properties."
		return spec
	}
	spec.DisplayName = key.path()
	spec.Category = key.path()
	switch {
	case key.MapName != "":
		spec.Description = fmt.Sprintf("Valid values for the %s map name of %s.%s.", key.MapName, key.TypeName, key.PropertyName)
	case key.PropertyName != "":
		spec.Description = fmt.Sprintf("Valid values for the %s property of %s.", key.PropertyName, key.TypeName)
	default:
		spec.Description = fmt.Sprintf("Valid values for properties of %s.", key.TypeName)
	}
	return spec
}

// Value creates a valid value under the (typeName, propertyName, mapName)
// category and links it to that category. A value needs at least a type and
// a property.
func (b *Builder) Value(typeName, propertyName, mapName string, v ValidValue) (string, error) {
	key := Key{TypeName: typeName, PropertyName: propertyName, MapName: mapName}
	if err := key.Validate(); err != nil {
		return "", err
	}
	if propertyName == "" {
		return "", fmt.Errorf("valid value %q needs a property name: %w", v.Value, omarchive.ErrInvalidArgument)
	}
	if v.Value == "" {
		return "", fmt.Errorf("valid value under %s has no value: %w", key.QualifiedName(), omarchive.ErrInvalidArgument)
	}

	parent, err := b.category(key)
	if err != nil {
		return "", err
	}

	displayName := v.DisplayName
	if displayName == "" {
		displayName = v.Value
	}
	guid, err := b.assembler.AddValidValue(assembler.ValidValueSpec{
		TypeName:       vocabulary.ValidValueDefinition,
		QualifiedName:  key.ValueQualifiedName(v.Value),
		DisplayName:    displayName,
		Description:    v.Description,
		GUID:           v.GUID,
		Category:       key.path(),
		PreferredValue: v.Value,
		DataType:       v.DataType,
		IsDeprecated:   v.IsDeprecated,
		Additional:     v.Additional,
	})
	if err != nil {
		return "", fmt.Errorf("valid value %s: %w", v.Value, err)
	}

	if _, err := b.assembler.AddEdge(assembler.EdgeSpec{
		TypeName:   vocabulary.ValidValuesMember,
		End1:       parent,
		End2:       guid,
		Properties: archive.Properties{vocabulary.PropIsDefaultValue: v.IsDefault},
	}); err != nil {
		return "", fmt.Errorf("valid value %s: %w", v.Value, err)
	}
	b.values[guid] = key
	return guid, nil
}

// Len returns the number of category nodes created so far.
func (b *Builder) Len() int {
	return len(b.cache)
}

// Keys returns the cached category keys ordered by qualified name.
func (b *Builder) Keys() []Key {
	keys := make([]Key, 0, len(b.cache))
	for k := range b.cache {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].QualifiedName() < keys[j].QualifiedName()
	})
	return keys
}

// Lookup returns the GUID of an already created category.
func (b *Builder) Lookup(key Key) (string, bool) {
	guid, ok := b.cache[key]
	return guid, ok
}

// CategoryOf returns the category a value was recorded under.
func (b *Builder) CategoryOf(valueGUID string) (Key, bool) {
	k, ok := b.values[valueGUID]
	return k, ok
}
