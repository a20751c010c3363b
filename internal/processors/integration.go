package processors

import (
	"fmt"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/vocabulary"
)

// IntegrationConnectors creates integration groups and registers each
// integration connector with its group and the technologies it catalogs.
type IntegrationConnectors struct{}

func (IntegrationConnectors) Name() string { return NameIntegrationConnectors }

func (IntegrationConnectors) Requires() []string {
	return []string{NameDeployedImplementationTypes, NameConnectorTypes}
}

func (IntegrationConnectors) Process(s *State) error {
	for _, g := range s.Catalogue.IntegrationGroups {
		guid, err := s.Assembler.AddSoftwareCapability(assembler.CapabilitySpec{
			TypeName:      vocabulary.IntegrationGroup,
			QualifiedName: g.QualifiedName(),
			Name:          g.Name,
			Description:   g.Description,
			GUID:          g.GUID,
		})
		if err != nil {
			return fmt.Errorf("integration group %s: %w", g.Name, err)
		}
		s.Tables.IntegrationGroups.Put(g.Name, guid)
		s.Logger.Verbose("Integration group %s (%s)", g.Name, guid)
	}

	for _, ic := range s.Catalogue.IntegrationConnectors {
		group, err := s.Tables.IntegrationGroups.Get(ic.Group)
		if err != nil {
			return fmt.Errorf("integration connector %s: %w", ic.Name, err)
		}
		connectorType, err := s.Tables.ConnectorTypes.Get(ic.ConnectorType)
		if err != nil {
			return fmt.Errorf("integration connector %s: %w", ic.Name, err)
		}

		guid, err := s.Assembler.AddGovernanceService(assembler.ServiceSpec{
			TypeName:                   vocabulary.IntegrationConnector,
			QualifiedName:              ic.QualifiedName(),
			Name:                       ic.Name,
			Description:                ic.Description,
			GUID:                       ic.GUID,
			DeployedImplementationType: ic.DeployedImplementationType,
			ConnectorTypeGUID:          connectorType,
			ConfigurationProperties:    ic.ConfigurationProperties,
			UserID:                     ic.UserID,
		})
		if err != nil {
			return fmt.Errorf("integration connector %s: %w", ic.Name, err)
		}

		registration := archive.Properties{"connectorName": ic.Name, "refreshTimeInterval": ic.RefreshTimeInterval}
		if ic.UserID != "" {
			registration["connectorUserId"] = ic.UserID
		}
		if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
			TypeName:   vocabulary.RegisteredIntegrationConnector,
			End1:       group,
			End2:       guid,
			Properties: registration,
		}); err != nil {
			return fmt.Errorf("integration connector %s: %w", ic.Name, err)
		}

		for _, target := range ic.Targets {
			dit, err := s.Tables.DeployedImplementationTypes.Get(target)
			if err != nil {
				return fmt.Errorf("integration connector %s: %w", ic.Name, err)
			}
			if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
				TypeName:   vocabulary.ResourceList,
				End1:       guid,
				End2:       dit,
				Properties: archive.Properties{vocabulary.PropResourceUse: "Catalog Technology"},
			}); err != nil {
				return fmt.Errorf("integration connector %s: %w", ic.Name, err)
			}
		}

		s.Tables.IntegrationConnectors.Put(ic.Name, guid)
		s.Logger.Verbose("Integration connector %s (%s)", ic.Name, guid)
	}
	return nil
}
