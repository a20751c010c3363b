package processors

import (
	"fmt"
	"strconv"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/vocabulary"
)

// Templates creates catalog templates: the template asset or capability, its
// endpoint and connection, the CatalogTemplate link from its deployed
// implementation type, and its placeholder properties and replacement
// attributes.
type Templates struct{}

func (Templates) Name() string { return NameTemplates }

func (Templates) Requires() []string {
	return []string{NameDeployedImplementationTypes, NameConnectorTypes}
}

func (Templates) Process(s *State) error {
	for _, t := range s.Catalogue.Templates {
		guid, err := addTemplate(s, t)
		if err != nil {
			return fmt.Errorf("template %s: %w", t.QualifiedName(), err)
		}
		s.Tables.Templates.Put(t.QualifiedName(), guid)
		s.Logger.Verbose("Template %s (%s)", t.QualifiedName(), guid)
	}
	return nil
}

func addTemplate(s *State, t catalogue.Template) (string, error) {
	dit, err := s.Tables.DeployedImplementationTypes.Get(t.DeployedImplementationType)
	if err != nil {
		return "", err
	}

	classifications := make([]archive.Classification, 0, len(t.Classifications)+1)
	templateProps := archive.Properties{vocabulary.PropName: t.Name}
	if t.Description != "" {
		templateProps[vocabulary.PropDescription] = t.Description
	}
	if t.VersionIdentifier != "" {
		templateProps[vocabulary.PropVersionIdentifier] = t.VersionIdentifier
	}
	classifications = append(classifications, archive.Classification{Name: vocabulary.Template, Properties: templateProps})
	for _, c := range t.Classifications {
		var props archive.Properties
		if len(c.Properties) > 0 {
			props = make(archive.Properties, len(c.Properties))
			for k, v := range c.Properties {
				props[k] = v
			}
		}
		classifications = append(classifications, archive.Classification{Name: c.Name, Properties: props})
	}

	var guid string
	if t.Capability {
		guid, err = s.Assembler.AddSoftwareCapability(assembler.CapabilitySpec{
			TypeName:                   t.TypeName,
			QualifiedName:              t.QualifiedName(),
			Name:                       t.Name,
			Description:                t.Description,
			GUID:                       t.GUID,
			VersionIdentifier:          t.VersionIdentifier,
			DeployedImplementationType: t.DeployedImplementationType,
			Classifications:            classifications,
		})
	} else {
		guid, err = s.Assembler.AddAsset(assembler.AssetSpec{
			TypeName:                   t.TypeName,
			QualifiedName:              t.QualifiedName(),
			Name:                       t.Name,
			Description:                t.Description,
			GUID:                       t.GUID,
			VersionIdentifier:          t.VersionIdentifier,
			DeployedImplementationType: t.DeployedImplementationType,
			Classifications:            classifications,
		})
	}
	if err != nil {
		return "", err
	}

	var endpoint string
	if t.Endpoint != nil {
		endpoint, err = s.Assembler.AddEndpoint(assembler.EndpointSpec{
			QualifiedName:  t.EndpointQualifiedName(),
			Name:           t.Name + " Endpoint",
			NetworkAddress: t.Endpoint.NetworkAddress,
			Protocol:       t.Endpoint.Protocol,
		})
		if err != nil {
			return "", err
		}
		if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
			TypeName: vocabulary.ServerEndpoint,
			End1:     guid,
			End2:     endpoint,
		}); err != nil {
			return "", err
		}
	}

	if t.Connection != nil {
		connectorType, err := s.Tables.ConnectorTypes.Get(t.Connection.ConnectorType)
		if err != nil {
			return "", err
		}
		if _, err := s.Assembler.AddConnection(assembler.ConnectionSpec{
			QualifiedName:           t.ConnectionQualifiedName(),
			DisplayName:             t.Name + " Connection",
			UserID:                  t.Connection.UserID,
			ConfigurationProperties: t.Connection.ConfigurationProperties,
			ConnectorTypeGUID:       connectorType,
			EndpointGUID:            endpoint,
			AssetGUID:               guid,
			AssetSummary:            "Connection to the " + t.Name + " described by this template.",
		}); err != nil {
			return "", err
		}
	}

	if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
		TypeName: vocabulary.CatalogTemplate,
		End1:     dit,
		End2:     guid,
	}); err != nil {
		return "", err
	}

	for _, p := range t.Placeholders {
		if err := assignSpecificationProperty(s, guid, vocabulary.PlaceholderProperty, catalogue.PlaceholderQualifiedName(p.Name), p); err != nil {
			return "", err
		}
	}
	for _, r := range t.ReplacementAttributes {
		if err := assignSpecificationProperty(s, guid, vocabulary.ReplacementAttribute, catalogue.ReplacementAttributeQualifiedName(r.Name), r); err != nil {
			return "", err
		}
	}
	return guid, nil
}

// assignSpecificationProperty links a template to a placeholder or replacement
// attribute, creating the shared valid value on first use.
func assignSpecificationProperty(s *State, template, propertyType, qualifiedName string, attr catalogue.TemplateAttribute) error {
	table := s.Tables.SpecificationProperties
	if !table.Has(qualifiedName) {
		additional := map[string]string{"required": strconv.FormatBool(attr.Required)}
		if attr.Example != "" {
			additional["example"] = attr.Example
		}
		guid, err := s.Assembler.AddValidValue(assembler.ValidValueSpec{
			QualifiedName:  qualifiedName,
			DisplayName:    attr.Name,
			Description:    attr.Description,
			Category:       propertyType,
			PreferredValue: attr.Name,
			DataType:       attr.DataType,
			Additional:     additional,
		})
		if err != nil {
			return err
		}
		table.Put(qualifiedName, guid)
	}

	guid, err := table.Get(qualifiedName)
	if err != nil {
		return err
	}
	_, err = s.Assembler.AddEdge(assembler.EdgeSpec{
		TypeName: vocabulary.SpecificationPropertyAssignment,
		End1:     template,
		End2:     guid,
		Properties: archive.Properties{
			vocabulary.PropPropertyType: propertyType,
			vocabulary.PropName:         attr.Name,
		},
	})
	return err
}
