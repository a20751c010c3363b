package vocabulary

// Entity types.
const (
	ValidValueSet               = "ValidValueSet"
	ValidValueDefinition        = "ValidValueDefinition"
	ConnectorTypeDirectory      = "ConnectorTypeDirectory"
	ConnectorCategory           = "ConnectorCategory"
	ConnectorType               = "ConnectorType"
	Connection                  = "Connection"
	Endpoint                    = "Endpoint"
	IntegrationGroup            = "IntegrationGroup"
	IntegrationConnector        = "IntegrationConnector"
	GovernanceActionType        = "GovernanceActionType"
	GovernanceActionProcess     = "GovernanceActionProcess"
	GovernanceActionProcessStep = "GovernanceActionProcessStep"
	SoftwareCapability          = "SoftwareCapability"
)

// Relationship types. End1 is listed first in each comment.
const (
	// ValidValuesMember: set -> member value or child set.
	ValidValuesMember = "ValidValuesMember"
	// ValidValueAssociation: value -> associated value (for example, isA parent type).
	ValidValueAssociation = "ValidValueAssociation"
	// CatalogTemplate: deployed implementation type -> template element.
	CatalogTemplate = "CatalogTemplate"
	// SpecificationPropertyAssignment: element -> placeholder or replacement attribute value.
	SpecificationPropertyAssignment = "SpecificationPropertyAssignment"
	// ConnectorDirectoryCategory: directory -> category.
	ConnectorDirectoryCategory = "ConnectorDirectoryCategory"
	// ConnectorImplementationChoice: category -> connector type.
	ConnectorImplementationChoice = "ConnectorImplementationChoice"
	// ConnectorTypeDeployedImplementationType: connector type -> deployed implementation type.
	ConnectorTypeDeployedImplementationType = "ConnectorTypeDeployedImplementationType"
	// ConnectionConnectorType: connection -> connector type.
	ConnectionConnectorType = "ConnectionConnectorType"
	// ConnectionEndpoint: endpoint -> connection.
	ConnectionEndpoint = "ConnectionEndpoint"
	// ConnectionToAsset: connection -> asset.
	ConnectionToAsset = "ConnectionToAsset"
	// ServerEndpoint: asset -> endpoint.
	ServerEndpoint = "ServerEndpoint"
	// RegisteredIntegrationConnector: integration group -> integration connector.
	RegisteredIntegrationConnector = "RegisteredIntegrationConnector"
	// ResourceList: consumer -> resource it works with.
	ResourceList = "ResourceList"
	// SupportedGovernanceService: governance engine -> governance service.
	SupportedGovernanceService = "SupportedGovernanceService"
	// GovernanceActionTypeExecutor: governance action type -> governance engine.
	GovernanceActionTypeExecutor = "GovernanceActionTypeExecutor"
	// TargetForGovernanceActionType: governance action type -> action target element.
	TargetForGovernanceActionType = "TargetForGovernanceActionType"
	// GovernanceActionProcessFlow: process -> first step.
	GovernanceActionProcessFlow = "GovernanceActionProcessFlow"
	// NextGovernanceActionProcessStep: step -> following step.
	NextGovernanceActionProcessStep = "NextGovernanceActionProcessStep"
	// GovernanceActionExecutor: process step -> governance engine.
	GovernanceActionExecutor = "GovernanceActionExecutor"
)

// Template is the classification that marks an entity as a template.
const Template = "Template"

// Property names shared across processors.
const (
	PropQualifiedName              = "qualifiedName"
	PropDisplayName                = "displayName"
	PropName                       = "name"
	PropDescription                = "description"
	PropCategory                   = "category"
	PropPreferredValue             = "preferredValue"
	PropDataType                   = "dataType"
	PropIsDeprecated               = "isDeprecated"
	PropIsDefaultValue             = "isDefaultValue"
	PropDeployedImplementationType = "deployedImplementationType"
	PropPropertyType               = "propertyType"
	PropRequestType                = "requestType"
	PropServiceRequestType         = "serviceRequestType"
	PropRequestParameters          = "requestParameters"
	PropActionTargetName           = "actionTargetName"
	PropGuard                      = "guard"
	PropMandatoryGuard             = "mandatoryGuard"
	PropResourceUse                = "resourceUse"
	PropVersionIdentifier          = "versionIdentifier"
)

// Values of the SpecificationPropertyAssignment propertyType property.
const (
	PlaceholderProperty  = "placeholderProperty"
	ReplacementAttribute = "replacementAttribute"
)
