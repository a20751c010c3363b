package processors

import (
	"fmt"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/vocabulary"
)

// ConnectorTypes creates the connector directory, its categories and the
// connector types in each category.
type ConnectorTypes struct{}

func (ConnectorTypes) Name() string { return NameConnectorTypes }

func (ConnectorTypes) Requires() []string {
	return []string{NameDeployedImplementationTypes}
}

func (ConnectorTypes) Process(s *State) error {
	c := s.Catalogue

	var directory string
	if c.ConnectorDirectory.Name != "" {
		guid, err := s.Assembler.AddNode(assembler.NodeSpec{
			TypeName:      vocabulary.ConnectorTypeDirectory,
			QualifiedName: c.ConnectorDirectory.QualifiedName(),
			DisplayName:   c.ConnectorDirectory.Name,
			Description:   c.ConnectorDirectory.Description,
			GUID:          c.ConnectorDirectory.GUID,
		})
		if err != nil {
			return fmt.Errorf("connector directory: %w", err)
		}
		directory = guid
	}

	for _, cat := range c.ConnectorCategories {
		props := archive.Properties{}
		if cat.TargetTechnologyName != "" {
			props["targetTechnologyName"] = cat.TargetTechnologyName
		}
		if cat.TargetTechnologySource != "" {
			props["targetTechnologySource"] = cat.TargetTechnologySource
		}
		guid, err := s.Assembler.AddNode(assembler.NodeSpec{
			TypeName:      vocabulary.ConnectorCategory,
			QualifiedName: cat.QualifiedName(),
			DisplayName:   cat.Name,
			Description:   cat.Description,
			GUID:          cat.GUID,
			Properties:    props,
		})
		if err != nil {
			return fmt.Errorf("connector category %s: %w", cat.Name, err)
		}
		if directory != "" {
			if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
				TypeName: vocabulary.ConnectorDirectoryCategory,
				End1:     directory,
				End2:     guid,
			}); err != nil {
				return fmt.Errorf("connector category %s: %w", cat.Name, err)
			}
		}
		s.Tables.ConnectorCategories.Put(cat.Name, guid)
		s.Logger.Verbose("Connector category %s (%s)", cat.Name, guid)
	}

	for _, ct := range c.ConnectorTypes {
		category, err := s.Tables.ConnectorCategories.Get(ct.ConnectorCategory)
		if err != nil {
			return fmt.Errorf("connector type %s: %w", ct.Name, err)
		}
		guid, err := s.Assembler.AddConnectorType(assembler.ConnectorTypeSpec{
			QualifiedName:                       ct.QualifiedName(),
			DisplayName:                         ct.Name,
			Description:                         ct.Description,
			GUID:                                ct.GUID,
			ConnectorProviderClassName:          ct.ConnectorProviderClassName,
			ConnectorFrameworkName:              ct.ConnectorFrameworkName,
			ConnectorInterfaceLanguage:          ct.ConnectorInterfaceLanguage,
			SupportedAssetTypeName:              ct.SupportedAssetTypeName,
			SupportedDeployedImplementationType: ct.DeployedImplementationType,
			ExpectedDataFormat:                  ct.ExpectedDataFormat,
			RecognizedConfigurationProperties:   ct.RecognizedConfigurationProperties,
		})
		if err != nil {
			return fmt.Errorf("connector type %s: %w", ct.Name, err)
		}
		if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
			TypeName: vocabulary.ConnectorImplementationChoice,
			End1:     category,
			End2:     guid,
		}); err != nil {
			return fmt.Errorf("connector type %s: %w", ct.Name, err)
		}
		if ct.DeployedImplementationType != "" {
			dit, err := s.Tables.DeployedImplementationTypes.Get(ct.DeployedImplementationType)
			if err != nil {
				return fmt.Errorf("connector type %s: %w", ct.Name, err)
			}
			if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
				TypeName: vocabulary.ConnectorTypeDeployedImplementationType,
				End1:     guid,
				End2:     dit,
			}); err != nil {
				return fmt.Errorf("connector type %s: %w", ct.Name, err)
			}
		}
		s.Tables.ConnectorTypes.Put(ct.Name, guid)
		s.Logger.Verbose("Connector type %s (%s)", ct.Name, guid)
	}
	return nil
}
