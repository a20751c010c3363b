package assembler

import (
	"fmt"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/vocabulary"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// ValidValueSpec describes a valid value set or definition.
type ValidValueSpec struct {
	TypeName        string // vocabulary.ValidValueSet or vocabulary.ValidValueDefinition
	QualifiedName   string
	DisplayName     string
	Description     string
	GUID            string
	Category        string
	PreferredValue  string
	DataType        string
	IsDeprecated    bool
	Additional      map[string]string
	Classifications []archive.Classification
}

// AddValidValue creates a valid value node.
func (a *Assembler) AddValidValue(spec ValidValueSpec) (string, error) {
	typeName := spec.TypeName
	if typeName == "" {
		typeName = vocabulary.ValidValueDefinition
	}
	props := archive.Properties{vocabulary.PropIsDeprecated: spec.IsDeprecated}
	setIf(props, vocabulary.PropCategory, spec.Category)
	setIf(props, vocabulary.PropPreferredValue, spec.PreferredValue)
	setIf(props, vocabulary.PropDataType, spec.DataType)
	if len(spec.Additional) > 0 {
		props["additionalProperties"] = CopyStrings(spec.Additional)
	}
	return a.AddNode(NodeSpec{
		TypeName:        typeName,
		QualifiedName:   spec.QualifiedName,
		DisplayName:     spec.DisplayName,
		Description:     spec.Description,
		GUID:            spec.GUID,
		Properties:      props,
		Classifications: spec.Classifications,
	})
}

// AssetSpec describes an asset such as a server, file or folder.
type AssetSpec struct {
	TypeName                   string
	QualifiedName              string
	Name                       string
	Description                string
	GUID                       string
	VersionIdentifier          string
	DeployedImplementationType string
	Properties                 archive.Properties
	Classifications            []archive.Classification
}

// AddAsset creates an asset node.
func (a *Assembler) AddAsset(spec AssetSpec) (string, error) {
	props := merge(spec.Properties)
	setIf(props, vocabulary.PropName, spec.Name)
	setIf(props, vocabulary.PropVersionIdentifier, spec.VersionIdentifier)
	setIf(props, vocabulary.PropDeployedImplementationType, spec.DeployedImplementationType)
	return a.AddNode(NodeSpec{
		TypeName:        spec.TypeName,
		QualifiedName:   spec.QualifiedName,
		Description:     spec.Description,
		GUID:            spec.GUID,
		Properties:      props,
		Classifications: spec.Classifications,
	})
}

// CapabilitySpec describes a software capability such as a governance engine
// or an integration group.
type CapabilitySpec struct {
	TypeName                   string
	QualifiedName              string
	Name                       string
	Description                string
	GUID                       string
	VersionIdentifier          string
	DeployedImplementationType string
	Properties                 archive.Properties
	Classifications            []archive.Classification
}

// AddSoftwareCapability creates a software capability node.
func (a *Assembler) AddSoftwareCapability(spec CapabilitySpec) (string, error) {
	typeName := spec.TypeName
	if typeName == "" {
		typeName = vocabulary.SoftwareCapability
	}
	props := merge(spec.Properties)
	setIf(props, vocabulary.PropName, spec.Name)
	setIf(props, vocabulary.PropVersionIdentifier, spec.VersionIdentifier)
	setIf(props, vocabulary.PropDeployedImplementationType, spec.DeployedImplementationType)
	return a.AddNode(NodeSpec{
		TypeName:        typeName,
		QualifiedName:   spec.QualifiedName,
		Description:     spec.Description,
		GUID:            spec.GUID,
		Properties:      props,
		Classifications: spec.Classifications,
	})
}

// EndpointSpec describes a network endpoint.
type EndpointSpec struct {
	QualifiedName  string
	Name           string
	Description    string
	GUID           string
	NetworkAddress string
	Protocol       string
}

// AddEndpoint creates an endpoint node.
func (a *Assembler) AddEndpoint(spec EndpointSpec) (string, error) {
	props := archive.Properties{}
	setIf(props, vocabulary.PropName, spec.Name)
	setIf(props, "networkAddress", spec.NetworkAddress)
	setIf(props, "protocol", spec.Protocol)
	return a.AddNode(NodeSpec{
		TypeName:      vocabulary.Endpoint,
		QualifiedName: spec.QualifiedName,
		Description:   spec.Description,
		GUID:          spec.GUID,
		Properties:    props,
	})
}

// ConnectionSpec describes a connection and the elements it links.
// ConnectorTypeGUID is required; EndpointGUID and AssetGUID are optional.
type ConnectionSpec struct {
	QualifiedName           string
	DisplayName             string
	Description             string
	GUID                    string
	UserID                  string
	ConfigurationProperties map[string]string
	ConnectorTypeGUID       string
	EndpointGUID            string
	AssetGUID               string
	AssetSummary            string
}

// AddConnection creates a connection node plus its ConnectionConnectorType,
// ConnectionEndpoint and ConnectionToAsset relationships.
func (a *Assembler) AddConnection(spec ConnectionSpec) (string, error) {
	if spec.ConnectorTypeGUID == "" {
		return "", fmt.Errorf("connection %q has no connector type: %w", spec.QualifiedName, omarchive.ErrInvalidArgument)
	}

	props := archive.Properties{}
	setIf(props, "userId", spec.UserID)
	if len(spec.ConfigurationProperties) > 0 {
		props["configurationProperties"] = CopyStrings(spec.ConfigurationProperties)
	}

	guid, err := a.AddNode(NodeSpec{
		TypeName:      vocabulary.Connection,
		QualifiedName: spec.QualifiedName,
		DisplayName:   spec.DisplayName,
		Description:   spec.Description,
		GUID:          spec.GUID,
		Properties:    props,
	})
	if err != nil {
		return "", err
	}

	if _, err := a.AddEdge(EdgeSpec{TypeName: vocabulary.ConnectionConnectorType, End1: guid, End2: spec.ConnectorTypeGUID}); err != nil {
		return "", fmt.Errorf("connection %s: %w", spec.QualifiedName, err)
	}
	if spec.EndpointGUID != "" {
		if _, err := a.AddEdge(EdgeSpec{TypeName: vocabulary.ConnectionEndpoint, End1: spec.EndpointGUID, End2: guid}); err != nil {
			return "", fmt.Errorf("connection %s: %w", spec.QualifiedName, err)
		}
	}
	if spec.AssetGUID != "" {
		var edgeProps archive.Properties
		if spec.AssetSummary != "" {
			edgeProps = archive.Properties{"assetSummary": spec.AssetSummary}
		}
		if _, err := a.AddEdge(EdgeSpec{TypeName: vocabulary.ConnectionToAsset, End1: guid, End2: spec.AssetGUID, Properties: edgeProps}); err != nil {
			return "", fmt.Errorf("connection %s: %w", spec.QualifiedName, err)
		}
	}
	return guid, nil
}

// ConnectorTypeSpec describes a connector type.
type ConnectorTypeSpec struct {
	QualifiedName                       string
	DisplayName                         string
	Description                         string
	GUID                                string
	ConnectorProviderClassName          string
	ConnectorFrameworkName              string
	ConnectorInterfaceLanguage          string
	SupportedAssetTypeName              string
	SupportedDeployedImplementationType string
	ExpectedDataFormat                  string
	RecognizedConfigurationProperties   []string
}

// AddConnectorType creates a connector type node.
func (a *Assembler) AddConnectorType(spec ConnectorTypeSpec) (string, error) {
	props := archive.Properties{}
	setIf(props, "connectorProviderClassName", spec.ConnectorProviderClassName)
	setIf(props, "connectorFrameworkName", spec.ConnectorFrameworkName)
	setIf(props, "connectorInterfaceLanguage", spec.ConnectorInterfaceLanguage)
	setIf(props, "supportedAssetTypeName", spec.SupportedAssetTypeName)
	setIf(props, "supportedDeployedImplementationType", spec.SupportedDeployedImplementationType)
	setIf(props, "expectedDataFormat", spec.ExpectedDataFormat)
	if len(spec.RecognizedConfigurationProperties) > 0 {
		props["recognizedConfigurationProperties"] = append([]string(nil), spec.RecognizedConfigurationProperties...)
	}
	return a.AddNode(NodeSpec{
		TypeName:      vocabulary.ConnectorType,
		QualifiedName: spec.QualifiedName,
		DisplayName:   spec.DisplayName,
		Description:   spec.Description,
		GUID:          spec.GUID,
		Properties:    props,
	})
}

// ServiceSpec describes a deployed connector, such as a governance service or
// an integration connector, together with the connection that instantiates it.
type ServiceSpec struct {
	TypeName                   string
	QualifiedName              string
	Name                       string
	Description                string
	GUID                       string
	VersionIdentifier          string
	DeployedImplementationType string
	ConnectorTypeGUID          string
	ConfigurationProperties    map[string]string
	UserID                     string
}

// AddGovernanceService creates the service asset and its connection and
// returns the asset GUID. The connection qualified name is the service
// qualified name with a ":Connection" suffix.
func (a *Assembler) AddGovernanceService(spec ServiceSpec) (string, error) {
	guid, err := a.AddAsset(AssetSpec{
		TypeName:                   spec.TypeName,
		QualifiedName:              spec.QualifiedName,
		Name:                       spec.Name,
		Description:                spec.Description,
		GUID:                       spec.GUID,
		VersionIdentifier:          spec.VersionIdentifier,
		DeployedImplementationType: spec.DeployedImplementationType,
	})
	if err != nil {
		return "", err
	}
	_, err = a.AddConnection(ConnectionSpec{
		QualifiedName:           spec.QualifiedName + ":Connection",
		DisplayName:             spec.Name + " Connection",
		UserID:                  spec.UserID,
		ConfigurationProperties: spec.ConfigurationProperties,
		ConnectorTypeGUID:       spec.ConnectorTypeGUID,
		AssetGUID:               guid,
		AssetSummary:            "Connection to create an instance of the " + spec.Name + " service.",
	})
	if err != nil {
		return "", err
	}
	return guid, nil
}

// AddGovernanceEngine creates a governance engine capability.
func (a *Assembler) AddGovernanceEngine(spec CapabilitySpec) (string, error) {
	if spec.TypeName == "" {
		return "", fmt.Errorf("governance engine %q has no engine type: %w", spec.QualifiedName, omarchive.ErrInvalidArgument)
	}
	return a.AddSoftwareCapability(spec)
}

func setIf(props archive.Properties, key, value string) {
	if value != "" {
		props[key] = value
	}
}

func merge(src archive.Properties) archive.Properties {
	props := make(archive.Properties, len(src)+3)
	for k, v := range src {
		props[k] = v
	}
	return props
}

// CopyStrings returns a copy of src for use as a nested property value, so
// later changes to the definition record do not leak into the graph.
func CopyStrings(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
