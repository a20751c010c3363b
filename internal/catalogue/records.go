package catalogue

import (
	"github.com/vvka-141/omarchive/internal/taxonomy"
)

// Definition categories. Each record reports one of these from Category().
const (
	CategoryTypes                       = "open-metadata-types"
	CategoryDeployedImplementationTypes = "deployed-implementation-types"
	CategoryConnectorDirectory          = "connector-directory"
	CategoryConnectorCategories         = "connector-categories"
	CategoryConnectorTypes              = "connector-types"
	CategoryTemplates                   = "templates"
	CategoryIntegrationGroups           = "integration-groups"
	CategoryIntegrationConnectors       = "integration-connectors"
	CategoryGovernanceEngines           = "governance-engines"
	CategoryGovernanceServices          = "governance-services"
	CategoryRequestTypes                = "request-types"
	CategoryProcesses                   = "governance-action-processes"
)

// Action target kinds of a request type.
const (
	TargetDeployedImplementationType = "deployedImplementationType"
	TargetConnectorType              = "connectorType"
	TargetTemplate                   = "template"
	TargetIntegrationConnector       = "integrationConnector"
)

// DeployedImplementationTypeKey is the taxonomy category of deployed
// implementation type values.
var DeployedImplementationTypeKey = taxonomy.Key{TypeName: "Referenceable", PropertyName: "deployedImplementationType"}

// Catalogue is the complete set of definitions for one build.
type Catalogue struct {
	Source                      string
	Types                       []OpenMetadataType
	DeployedImplementationTypes []DeployedImplementationType
	ConnectorDirectory          ConnectorDirectory
	ConnectorCategories         []ConnectorCategory
	ConnectorTypes              []ConnectorType
	Templates                   []Template
	IntegrationGroups           []IntegrationGroup
	IntegrationConnectors       []IntegrationConnector
	GovernanceEngines           []GovernanceEngine
	GovernanceServices          []GovernanceService
	RequestTypes                []RequestType
	Processes                   []GovernanceActionProcess
}

// CategoryCount is the number of records in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// Counts returns the record count of every category in build order.
func (c *Catalogue) Counts() []CategoryCount {
	return []CategoryCount{
		{CategoryTypes, len(c.Types)},
		{CategoryDeployedImplementationTypes, len(c.DeployedImplementationTypes)},
		{CategoryConnectorCategories, len(c.ConnectorCategories)},
		{CategoryConnectorTypes, len(c.ConnectorTypes)},
		{CategoryTemplates, len(c.Templates)},
		{CategoryIntegrationGroups, len(c.IntegrationGroups)},
		{CategoryIntegrationConnectors, len(c.IntegrationConnectors)},
		{CategoryGovernanceEngines, len(c.GovernanceEngines)},
		{CategoryGovernanceServices, len(c.GovernanceServices)},
		{CategoryRequestTypes, len(c.RequestTypes)},
		{CategoryProcesses, len(c.Processes)},
	}
}

// OpenMetadataType lists the enumerated properties of one open metadata type.
type OpenMetadataType struct {
	TypeName    string         `yaml:"typeName"`
	Description string         `yaml:"description,omitempty"`
	Properties  []EnumProperty `yaml:"properties"`
}

func (t OpenMetadataType) Category() string { return CategoryTypes }

// QualifiedName is the qualified name of the type's taxonomy category.
func (t OpenMetadataType) QualifiedName() string {
	return taxonomy.Key{TypeName: t.TypeName}.QualifiedName()
}

// EnumProperty is a property with a closed set of values. MapName selects
// one key of a map-valued property.
type EnumProperty struct {
	Name     string      `yaml:"name"`
	MapName  string      `yaml:"mapName,omitempty"`
	DataType string      `yaml:"dataType,omitempty"`
	Values   []EnumValue `yaml:"values"`
}

// EnumValue is one allowed value of an EnumProperty.
type EnumValue struct {
	Value       string            `yaml:"value"`
	DisplayName string            `yaml:"displayName,omitempty"`
	Description string            `yaml:"description,omitempty"`
	GUID        string            `yaml:"guid,omitempty"`
	IsDefault   bool              `yaml:"isDefault,omitempty"`
	Deprecated  bool              `yaml:"deprecated,omitempty"`
	Additional  map[string]string `yaml:"additionalProperties,omitempty"`
}

// DeployedImplementationType names a technology that templates, connectors
// and engines refer to.
type DeployedImplementationType struct {
	Name               string `yaml:"name"`
	GUID               string `yaml:"guid,omitempty"`
	Description        string `yaml:"description,omitempty"`
	WikiLink           string `yaml:"wikiLink,omitempty"`
	AssociatedTypeName string `yaml:"associatedTypeName"`
	IsATypeOf          string `yaml:"isATypeOf,omitempty"`
}

func (d DeployedImplementationType) Category() string { return CategoryDeployedImplementationTypes }

func (d DeployedImplementationType) QualifiedName() string {
	return DeployedImplementationTypeKey.ValueQualifiedName(d.Name)
}

// ConnectorDirectory is the root of the connector categories.
type ConnectorDirectory struct {
	Name        string `yaml:"name"`
	GUID        string `yaml:"guid,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func (d ConnectorDirectory) Category() string { return CategoryConnectorDirectory }

func (d ConnectorDirectory) QualifiedName() string { return "ConnectorTypeDirectory:" + d.Name }

// ConnectorCategory groups connector types for one family of technologies.
type ConnectorCategory struct {
	Name                   string `yaml:"name"`
	GUID                   string `yaml:"guid,omitempty"`
	Description            string `yaml:"description,omitempty"`
	TargetTechnologyName   string `yaml:"targetTechnologyName,omitempty"`
	TargetTechnologySource string `yaml:"targetTechnologySource,omitempty"`
}

func (c ConnectorCategory) Category() string { return CategoryConnectorCategories }

func (c ConnectorCategory) QualifiedName() string { return "ConnectorCategory:" + c.Name }

// ConnectorType describes one connector implementation.
type ConnectorType struct {
	Name                              string   `yaml:"name"`
	GUID                              string   `yaml:"guid,omitempty"`
	Description                       string   `yaml:"description,omitempty"`
	ConnectorCategory                 string   `yaml:"category"`
	DeployedImplementationType        string   `yaml:"deployedImplementationType,omitempty"`
	ConnectorProviderClassName        string   `yaml:"connectorProviderClassName"`
	ConnectorFrameworkName            string   `yaml:"connectorFrameworkName,omitempty"`
	ConnectorInterfaceLanguage        string   `yaml:"connectorInterfaceLanguage,omitempty"`
	SupportedAssetTypeName            string   `yaml:"supportedAssetTypeName,omitempty"`
	ExpectedDataFormat                string   `yaml:"expectedDataFormat,omitempty"`
	RecognizedConfigurationProperties []string `yaml:"recognizedConfigurationProperties,omitempty"`
}

func (c ConnectorType) Category() string { return CategoryConnectorTypes }

func (c ConnectorType) QualifiedName() string { return "ConnectorType:" + c.Name }

// Template describes a catalog template for one deployed implementation type.
type Template struct {
	Name                       string                   `yaml:"name"`
	QualifiedNameOverride      string                   `yaml:"qualifiedName,omitempty"`
	GUID                       string                   `yaml:"guid,omitempty"`
	Description                string                   `yaml:"description,omitempty"`
	TypeName                   string                   `yaml:"typeName"`
	Capability                 bool                     `yaml:"capability,omitempty"`
	DeployedImplementationType string                   `yaml:"deployedImplementationType"`
	VersionIdentifier          string                   `yaml:"versionIdentifier,omitempty"`
	Classifications            []TemplateClassification `yaml:"classifications,omitempty"`
	Endpoint                   *TemplateEndpoint        `yaml:"endpoint,omitempty"`
	Connection                 *TemplateConnection      `yaml:"connection,omitempty"`
	Placeholders               []TemplateAttribute      `yaml:"placeholders,omitempty"`
	ReplacementAttributes      []TemplateAttribute      `yaml:"replacementAttributes,omitempty"`
}

func (t Template) Category() string { return CategoryTemplates }

// QualifiedName defaults to "<deployed implementation type>:<name>:Template".
func (t Template) QualifiedName() string {
	if t.QualifiedNameOverride != "" {
		return t.QualifiedNameOverride
	}
	return t.DeployedImplementationType + ":" + t.Name + ":Template"
}

// EndpointQualifiedName is the qualified name of the template's endpoint.
func (t Template) EndpointQualifiedName() string { return t.QualifiedName() + ":Endpoint" }

// ConnectionQualifiedName is the qualified name of the template's connection.
func (t Template) ConnectionQualifiedName() string { return t.QualifiedName() + ":Connection" }

// TemplateClassification is an extra classification on a template asset.
type TemplateClassification struct {
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

// TemplateEndpoint is the network endpoint of a template.
type TemplateEndpoint struct {
	NetworkAddress string `yaml:"networkAddress"`
	Protocol       string `yaml:"protocol,omitempty"`
}

// TemplateConnection is the connection of a template.
type TemplateConnection struct {
	ConnectorType           string            `yaml:"connectorType"`
	UserID                  string            `yaml:"userId,omitempty"`
	ConfigurationProperties map[string]string `yaml:"configurationProperties,omitempty"`
}

// TemplateAttribute is a placeholder property or replacement attribute.
type TemplateAttribute struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	DataType    string `yaml:"dataType,omitempty"`
	Example     string `yaml:"example,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

// PlaceholderQualifiedName is shared by every template using the placeholder.
func PlaceholderQualifiedName(name string) string { return "PlaceholderProperty:" + name }

// ReplacementAttributeQualifiedName is shared by every template using the attribute.
func ReplacementAttributeQualifiedName(name string) string { return "ReplacementAttribute:" + name }

// IntegrationGroup collects integration connectors run together.
type IntegrationGroup struct {
	Name        string `yaml:"name"`
	GUID        string `yaml:"guid,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func (g IntegrationGroup) Category() string { return CategoryIntegrationGroups }

func (g IntegrationGroup) QualifiedName() string { return "IntegrationGroup:" + g.Name }

// IntegrationConnector is a connector registered with an integration group.
type IntegrationConnector struct {
	Name                       string            `yaml:"name"`
	GUID                       string            `yaml:"guid,omitempty"`
	Description                string            `yaml:"description,omitempty"`
	Group                      string            `yaml:"group"`
	ConnectorType              string            `yaml:"connectorType"`
	DeployedImplementationType string            `yaml:"deployedImplementationType,omitempty"`
	UserID                     string            `yaml:"userId,omitempty"`
	RefreshTimeInterval        int               `yaml:"refreshTimeInterval,omitempty"`
	ConfigurationProperties    map[string]string `yaml:"configurationProperties,omitempty"`
	Targets                    []string          `yaml:"targets,omitempty"`
}

func (c IntegrationConnector) Category() string { return CategoryIntegrationConnectors }

func (c IntegrationConnector) QualifiedName() string { return "IntegrationConnector:" + c.Name }

// GovernanceEngine hosts governance services.
type GovernanceEngine struct {
	Name        string   `yaml:"name"`
	GUID        string   `yaml:"guid,omitempty"`
	Description string   `yaml:"description,omitempty"`
	TypeName    string   `yaml:"typeName"`
	Resources   []string `yaml:"resources,omitempty"`
}

func (e GovernanceEngine) Category() string { return CategoryGovernanceEngines }

func (e GovernanceEngine) QualifiedName() string { return "GovernanceEngine:" + e.Name }

// GovernanceService is a connector run by governance engines.
type GovernanceService struct {
	Name                       string            `yaml:"name"`
	GUID                       string            `yaml:"guid,omitempty"`
	Description                string            `yaml:"description,omitempty"`
	TypeName                   string            `yaml:"typeName"`
	ConnectorType              string            `yaml:"connectorType"`
	DeployedImplementationType string            `yaml:"deployedImplementationType,omitempty"`
	ConfigurationProperties    map[string]string `yaml:"configurationProperties,omitempty"`
}

func (s GovernanceService) Category() string { return CategoryGovernanceServices }

func (s GovernanceService) QualifiedName() string { return "GovernanceService:" + s.Name }

// RequestType binds a governance request type of an engine to a service.
type RequestType struct {
	Engine                string            `yaml:"engine"`
	Service               string            `yaml:"service"`
	GovernanceRequestType string            `yaml:"governanceRequestType"`
	ServiceRequestType    string            `yaml:"serviceRequestType,omitempty"`
	GUID                  string            `yaml:"guid,omitempty"`
	DisplayName           string            `yaml:"displayName,omitempty"`
	Description           string            `yaml:"description,omitempty"`
	RequestParameters     map[string]string `yaml:"requestParameters,omitempty"`
	ActionTargets         []ActionTarget    `yaml:"actionTargets,omitempty"`
}

func (r RequestType) Category() string { return CategoryRequestTypes }

// QualifiedName is the qualified name of the governance action type.
func (r RequestType) QualifiedName() string {
	return "GovernanceActionType:" + r.Engine + ":" + r.GovernanceRequestType
}

// Key identifies the request type within its engine.
func (r RequestType) Key() string { return RequestTypeKey(r.Engine, r.GovernanceRequestType) }

// RequestTypeKey joins an engine name and governance request type.
func RequestTypeKey(engine, requestType string) string { return engine + ":" + requestType }

// ActionTarget is a pre-declared target of a governance action type.
type ActionTarget struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Kind        string `yaml:"kind"`
	Target      string `yaml:"target"`
}

// GovernanceActionProcess is a multi-step governance flow.
type GovernanceActionProcess struct {
	Name        string        `yaml:"name"`
	GUID        string        `yaml:"guid,omitempty"`
	Description string        `yaml:"description,omitempty"`
	FirstStep   string        `yaml:"firstStep"`
	FirstGuard  string        `yaml:"firstGuard,omitempty"`
	Steps       []ProcessStep `yaml:"steps"`
}

func (p GovernanceActionProcess) Category() string { return CategoryProcesses }

func (p GovernanceActionProcess) QualifiedName() string { return "GovernanceActionProcess:" + p.Name }

// StepQualifiedName is the qualified name of one of the process's steps.
func (p GovernanceActionProcess) StepQualifiedName(step string) string {
	return p.QualifiedName() + ":" + step
}

// ProcessStep runs one request type and names the steps that may follow it.
type ProcessStep struct {
	Name              string            `yaml:"name"`
	GUID              string            `yaml:"guid,omitempty"`
	Description       string            `yaml:"description,omitempty"`
	Engine            string            `yaml:"engine"`
	RequestType       string            `yaml:"requestType"`
	RequestParameters map[string]string `yaml:"requestParameters,omitempty"`
	Next              []NextStep        `yaml:"next,omitempty"`
}

// NextStep is a guarded transition to another step.
type NextStep struct {
	Step      string `yaml:"step"`
	Guard     string `yaml:"guard"`
	Mandatory bool   `yaml:"mandatory,omitempty"`
}
