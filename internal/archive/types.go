package archive

import (
	"time"
)

// Properties holds the typed properties of an entity, relationship or
// classification. Values are strings, booleans, integers, string slices or
// string maps.
type Properties map[string]interface{}

// Header identifies an archive and the archives it builds upon.
type Header struct {
	GUID                   string    `json:"archiveGUID"`
	Name                   string    `json:"archiveName"`
	Description            string    `json:"archiveDescription,omitempty"`
	Version                string    `json:"archiveVersion"`
	Type                   string    `json:"archiveType"`
	OriginatorName         string    `json:"originatorName"`
	OriginatorOrganization string    `json:"originatorOrganization,omitempty"`
	License                string    `json:"originatorLicense,omitempty"`
	CreationTime           time.Time `json:"creationDate"`
	DependsOn              []string  `json:"dependsOnArchives,omitempty"`
	Fingerprint            string    `json:"contentFingerprint"`
}

// Classification is a typed attachment to an entity.
type Classification struct {
	Name       string     `json:"classificationName"`
	Properties Properties `json:"properties,omitempty"`
}

// Entity is one node of the archive graph.
type Entity struct {
	GUID            string           `json:"guid"`
	TypeName        string           `json:"typeName"`
	QualifiedName   string           `json:"qualifiedName"`
	Properties      Properties       `json:"properties,omitempty"`
	Classifications []Classification `json:"classifications,omitempty"`
}

// Relationship is one typed edge between two entities. End1 and End2 follow
// the direction of the relationship type (for example, parent then member).
type Relationship struct {
	GUID          string     `json:"guid"`
	TypeName      string     `json:"typeName"`
	End1GUID      string     `json:"end1GUID"`
	End2GUID      string     `json:"end2GUID"`
	Properties    Properties `json:"properties,omitempty"`
	EffectiveFrom *time.Time `json:"effectiveFrom,omitempty"`
	EffectiveTo   *time.Time `json:"effectiveTo,omitempty"`
}

// Archive is the complete build artifact.
type Archive struct {
	Header        Header         `json:"header"`
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// Content is the header-free part of an archive used for fingerprints and
// determinism comparisons.
type Content struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// Content returns the graph content of the archive.
func (a *Archive) Content() Content {
	return Content{Entities: a.Entities, Relationships: a.Relationships}
}

// Entity returns the entity with the given GUID.
func (a *Archive) Entity(guid string) (Entity, bool) {
	for _, e := range a.Entities {
		if e.GUID == guid {
			return e, true
		}
	}
	return Entity{}, false
}

// EntityByQualifiedName returns the entity with the given qualified name.
func (a *Archive) EntityByQualifiedName(qualifiedName string) (Entity, bool) {
	for _, e := range a.Entities {
		if e.QualifiedName == qualifiedName {
			return e, true
		}
	}
	return Entity{}, false
}

// RelationshipsOfType returns the relationships with the given type name.
func (a *Archive) RelationshipsOfType(typeName string) []Relationship {
	var result []Relationship
	for _, r := range a.Relationships {
		if r.TypeName == typeName {
			result = append(result, r)
		}
	}
	return result
}

// HasClassification reports whether the entity carries a classification with the given name.
func (e Entity) HasClassification(name string) bool {
	for _, c := range e.Classifications {
		if c.Name == name {
			return true
		}
	}
	return false
}
