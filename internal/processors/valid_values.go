package processors

import (
	"fmt"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/taxonomy"
	"github.com/vvka-141/omarchive/internal/vocabulary"
)

// OpenMetadataTypes builds the taxonomy root and the enumerated values of
// open metadata type properties.
type OpenMetadataTypes struct{}

func (OpenMetadataTypes) Name() string       { return NameOpenMetadataTypes }
func (OpenMetadataTypes) Requires() []string { return nil }

func (OpenMetadataTypes) Process(s *State) error {
	if _, err := s.Taxonomy.Category("", "", ""); err != nil {
		return err
	}
	for _, t := range s.Catalogue.Types {
		if _, err := s.Taxonomy.Category(t.TypeName, "", ""); err != nil {
			return fmt.Errorf("type %s: %w", t.TypeName, err)
		}
		for _, p := range t.Properties {
			if _, err := s.Taxonomy.Category(t.TypeName, p.Name, p.MapName); err != nil {
				return fmt.Errorf("type %s: %w", t.TypeName, err)
			}
			for _, v := range p.Values {
				guid, err := s.Taxonomy.Value(t.TypeName, p.Name, p.MapName, taxonomy.ValidValue{
					Value:        v.Value,
					DisplayName:  v.DisplayName,
					Description:  v.Description,
					DataType:     p.DataType,
					GUID:         v.GUID,
					IsDefault:    v.IsDefault,
					IsDeprecated: v.Deprecated,
					Additional:   v.Additional,
				})
				if err != nil {
					return fmt.Errorf("type %s: %w", t.TypeName, err)
				}
				s.Logger.Verbose("Valid value %s.%s=%s (%s)", t.TypeName, p.Name, v.Value, guid)
			}
		}
	}
	return nil
}

// DeployedImplementationTypes creates one valid value per deployed
// implementation type and links subtypes to their parents.
type DeployedImplementationTypes struct{}

func (DeployedImplementationTypes) Name() string { return NameDeployedImplementationTypes }

func (DeployedImplementationTypes) Requires() []string {
	return []string{NameOpenMetadataTypes}
}

func (DeployedImplementationTypes) Process(s *State) error {
	key := catalogue.DeployedImplementationTypeKey
	for _, d := range s.Catalogue.DeployedImplementationTypes {
		additional := map[string]string{}
		if d.WikiLink != "" {
			additional["wikiLink"] = d.WikiLink
		}
		if d.AssociatedTypeName != "" {
			additional["associatedTypeName"] = d.AssociatedTypeName
		}
		guid, err := s.Taxonomy.Value(key.TypeName, key.PropertyName, key.MapName, taxonomy.ValidValue{
			Value:       d.Name,
			Description: d.Description,
			DataType:    "string",
			GUID:        d.GUID,
			Additional:  additional,
		})
		if err != nil {
			return fmt.Errorf("deployed implementation type %s: %w", d.Name, err)
		}
		s.Tables.DeployedImplementationTypes.Put(d.Name, guid)
		s.Logger.Verbose("Deployed implementation type %s (%s)", d.Name, guid)
	}

	// Parents may be listed after their subtypes, so link once all exist.
	for _, d := range s.Catalogue.DeployedImplementationTypes {
		if d.IsATypeOf == "" {
			continue
		}
		child, err := s.Tables.DeployedImplementationTypes.Get(d.Name)
		if err != nil {
			return err
		}
		parent, err := s.Tables.DeployedImplementationTypes.Get(d.IsATypeOf)
		if err != nil {
			return fmt.Errorf("deployed implementation type %s: %w", d.Name, err)
		}
		if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
			TypeName:   vocabulary.ValidValueAssociation,
			End1:       child,
			End2:       parent,
			Properties: archive.Properties{"associationName": "isA"},
		}); err != nil {
			return fmt.Errorf("deployed implementation type %s: %w", d.Name, err)
		}
	}
	return nil
}
