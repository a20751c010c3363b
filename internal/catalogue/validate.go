package catalogue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/omarchive/internal/taxonomy"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// ValidationResult contains the outcome of catalogue validation.
// If Valid is false, Errors lists every problem found.
type ValidationResult struct {
	Valid  bool
	Errors []*DefinitionError
}

// Add records a problem and marks the result invalid.
func (v *ValidationResult) Add(err *DefinitionError) {
	v.Valid = false
	v.Errors = append(v.Errors, err)
}

// HasErrors returns true if the validation result contains errors.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Errors) > 0
}

// Err returns all problems joined, or nil when the catalogue is valid.
func (v *ValidationResult) Err() error {
	if len(v.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(v.Errors))
	for i, e := range v.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// validator accumulates problems and the GUIDs seen so far.
type validator struct {
	result ValidationResult
	guids  map[string]string // normalized GUID -> "category name"
}

func (v *validator) add(category, name, field, format string, args ...interface{}) {
	v.result.Add(&DefinitionError{
		Category: category,
		Name:     name,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Validate checks required names, GUID syntax, uniqueness and references.
//
// Two records that claim the same GUID, or the same qualified name with
// different GUIDs, are reported with omarchive.ErrGUIDConflict as the cause.
func Validate(c *Catalogue) ValidationResult {
	v := &validator{
		result: ValidationResult{Valid: true},
		guids:  make(map[string]string),
	}

	v.types(c)
	dits := v.deployedImplementationTypes(c)
	connectorTypes := v.connectors(c, dits)
	templates := v.templates(c, dits, connectorTypes)
	integrationConnectors := v.integration(c, dits, connectorTypes)
	engines, services := v.engines(c, dits, connectorTypes)
	requestTypes := v.requestTypes(c, engines, services, dits, connectorTypes, templates, integrationConnectors)
	v.processes(c, requestTypes)

	return v.result
}

// guid checks syntax and cross-record uniqueness of an optional explicit GUID.
func (v *validator) guid(category, name, guid string) {
	if guid == "" {
		return
	}
	id, err := uuid.Parse(strings.TrimSpace(guid))
	if err != nil || id == uuid.Nil {
		v.result.Add(&DefinitionError{
			Category: category,
			Name:     name,
			Field:    "guid",
			Message:  fmt.Sprintf("%q is not a valid GUID", guid),
			Hint:     "Use a lowercase RFC 4122 UUID, e.g. generated with uuidgen. Omit the field to derive the GUID from the qualified name.",
		})
		return
	}
	owner := category + " " + name
	if prior, ok := v.guids[id.String()]; ok && prior != owner {
		v.result.Add(&DefinitionError{
			Category: category,
			Name:     name,
			Field:    "guid",
			Message:  fmt.Sprintf("GUID %s is already used by %s", id, prior),
			Cause:    omarchive.ErrGUIDConflict,
		})
		return
	}
	v.guids[id.String()] = owner
}

// names tracks qualified names within one category.
type names struct {
	v        *validator
	category string
	seen     map[string]string // qualified name -> explicit GUID
}

func (v *validator) names(category string) *names {
	return &names{v: v, category: category, seen: make(map[string]string)}
}

// add registers a record; it returns false when the name is missing or taken.
func (n *names) add(name, qualifiedName, guid string) bool {
	if strings.TrimSpace(name) == "" {
		n.v.add(n.category, "", "name", "name is required")
		return false
	}
	if prior, ok := n.seen[qualifiedName]; ok {
		err := &DefinitionError{
			Category: n.category,
			Name:     name,
			Message:  fmt.Sprintf("qualified name %q is defined more than once", qualifiedName),
			Hint:     "Each definition must have a unique name within its category.",
		}
		if prior != "" && guid != "" && !strings.EqualFold(prior, guid) {
			err.Field = "guid"
			err.Message = fmt.Sprintf("qualified name %q is declared with GUIDs %s and %s", qualifiedName, prior, guid)
			err.Cause = omarchive.ErrGUIDConflict
		}
		n.v.result.Add(err)
		return false
	}
	n.seen[qualifiedName] = guid
	n.v.guid(n.category, name, guid)
	return true
}

func (v *validator) types(c *Catalogue) {
	types := v.names(CategoryTypes)
	for _, t := range c.Types {
		if !types.add(t.TypeName, t.QualifiedName(), "") {
			continue
		}
		if err := (taxonomy.Key{TypeName: t.TypeName}).Validate(); err != nil {
			v.add(CategoryTypes, t.TypeName, "typeName", "%v", err)
			continue
		}
		properties := make(map[string]bool)
		for _, p := range t.Properties {
			if p.Name == "" {
				v.add(CategoryTypes, t.TypeName, "properties.name", "property name is required")
				continue
			}
			if err := (taxonomy.Key{TypeName: t.TypeName, PropertyName: p.Name, MapName: p.MapName}).Validate(); err != nil {
				v.add(CategoryTypes, t.TypeName, "properties.name", "%v", err)
				continue
			}
			key := p.Name + "[" + p.MapName + "]"
			if properties[key] {
				v.add(CategoryTypes, t.TypeName, "properties", "property %s is listed more than once", key)
				continue
			}
			properties[key] = true

			values := make(map[string]bool)
			defaults := 0
			for _, val := range p.Values {
				if val.Value == "" {
					v.add(CategoryTypes, t.TypeName, "values.value", "property %s has an empty value", p.Name)
					continue
				}
				if values[val.Value] {
					v.add(CategoryTypes, t.TypeName, "values", "property %s lists value %q more than once", p.Name, val.Value)
					continue
				}
				values[val.Value] = true
				if val.IsDefault {
					defaults++
				}
				v.guid(CategoryTypes, t.TypeName+"."+p.Name+"="+val.Value, val.GUID)
			}
			if defaults > 1 {
				v.add(CategoryTypes, t.TypeName, "values.isDefault", "property %s has %d default values", p.Name, defaults)
			}
		}
	}
}

func (v *validator) deployedImplementationTypes(c *Catalogue) map[string]bool {
	dits := v.names(CategoryDeployedImplementationTypes)
	known := make(map[string]bool)
	for _, d := range c.DeployedImplementationTypes {
		if !dits.add(d.Name, d.QualifiedName(), d.GUID) {
			continue
		}
		known[d.Name] = true
		if d.AssociatedTypeName == "" {
			v.add(CategoryDeployedImplementationTypes, d.Name, "associatedTypeName", "associated type name is required")
		}
	}
	for _, d := range c.DeployedImplementationTypes {
		if d.IsATypeOf == "" {
			continue
		}
		if d.IsATypeOf == d.Name {
			v.add(CategoryDeployedImplementationTypes, d.Name, "isATypeOf", "a deployed implementation type cannot be a type of itself")
		} else if !known[d.IsATypeOf] {
			v.unknown(CategoryDeployedImplementationTypes, d.Name, "isATypeOf", CategoryDeployedImplementationTypes, d.IsATypeOf)
		}
	}
	return known
}

func (v *validator) connectors(c *Catalogue, dits map[string]bool) map[string]bool {
	categories := make(map[string]bool)
	connectorTypes := make(map[string]bool)
	if len(c.ConnectorCategories) > 0 || len(c.ConnectorTypes) > 0 {
		if c.ConnectorDirectory.Name == "" {
			v.add(CategoryConnectorDirectory, "", "name", "a connector directory is required when connector categories are defined")
		} else {
			v.guid(CategoryConnectorDirectory, c.ConnectorDirectory.Name, c.ConnectorDirectory.GUID)
		}
	}

	names := v.names(CategoryConnectorCategories)
	for _, cat := range c.ConnectorCategories {
		if names.add(cat.Name, cat.QualifiedName(), cat.GUID) {
			categories[cat.Name] = true
		}
	}

	names = v.names(CategoryConnectorTypes)
	for _, ct := range c.ConnectorTypes {
		if !names.add(ct.Name, ct.QualifiedName(), ct.GUID) {
			continue
		}
		connectorTypes[ct.Name] = true
		if ct.ConnectorProviderClassName == "" {
			v.add(CategoryConnectorTypes, ct.Name, "connectorProviderClassName", "connector provider class name is required")
		}
		if !categories[ct.ConnectorCategory] {
			v.unknown(CategoryConnectorTypes, ct.Name, "category", CategoryConnectorCategories, ct.ConnectorCategory)
		}
		if ct.DeployedImplementationType != "" && !dits[ct.DeployedImplementationType] {
			v.unknown(CategoryConnectorTypes, ct.Name, "deployedImplementationType", CategoryDeployedImplementationTypes, ct.DeployedImplementationType)
		}
	}
	return connectorTypes
}

func (v *validator) templates(c *Catalogue, dits, connectorTypes map[string]bool) map[string]bool {
	known := make(map[string]bool)
	names := v.names(CategoryTemplates)
	for _, t := range c.Templates {
		if !names.add(t.Name, t.QualifiedName(), t.GUID) {
			continue
		}
		known[t.QualifiedName()] = true
		if t.TypeName == "" {
			v.add(CategoryTemplates, t.Name, "typeName", "template type name is required")
		}
		if !dits[t.DeployedImplementationType] {
			v.unknown(CategoryTemplates, t.Name, "deployedImplementationType", CategoryDeployedImplementationTypes, t.DeployedImplementationType)
		}
		if t.Connection != nil && !connectorTypes[t.Connection.ConnectorType] {
			v.unknown(CategoryTemplates, t.Name, "connection.connectorType", CategoryConnectorTypes, t.Connection.ConnectorType)
		}
		if t.Endpoint != nil && t.Endpoint.NetworkAddress == "" {
			v.add(CategoryTemplates, t.Name, "endpoint.networkAddress", "endpoint network address is required")
		}
		for _, cl := range t.Classifications {
			if cl.Name == "" {
				v.add(CategoryTemplates, t.Name, "classifications.name", "classification name is required")
			}
		}
		v.attributes(t.Name, "placeholders", t.Placeholders)
		v.attributes(t.Name, "replacementAttributes", t.ReplacementAttributes)
	}
	return known
}

func (v *validator) attributes(template, field string, attrs []TemplateAttribute) {
	seen := make(map[string]bool)
	for _, a := range attrs {
		if a.Name == "" {
			v.add(CategoryTemplates, template, field+".name", "name is required")
			continue
		}
		if seen[a.Name] {
			v.add(CategoryTemplates, template, field, "%q is listed more than once", a.Name)
		}
		seen[a.Name] = true
	}
}

func (v *validator) integration(c *Catalogue, dits, connectorTypes map[string]bool) map[string]bool {
	groups := make(map[string]bool)
	names := v.names(CategoryIntegrationGroups)
	for _, g := range c.IntegrationGroups {
		if names.add(g.Name, g.QualifiedName(), g.GUID) {
			groups[g.Name] = true
		}
	}

	known := make(map[string]bool)
	names = v.names(CategoryIntegrationConnectors)
	for _, ic := range c.IntegrationConnectors {
		if !names.add(ic.Name, ic.QualifiedName(), ic.GUID) {
			continue
		}
		known[ic.Name] = true
		if !groups[ic.Group] {
			v.unknown(CategoryIntegrationConnectors, ic.Name, "group", CategoryIntegrationGroups, ic.Group)
		}
		if !connectorTypes[ic.ConnectorType] {
			v.unknown(CategoryIntegrationConnectors, ic.Name, "connectorType", CategoryConnectorTypes, ic.ConnectorType)
		}
		if ic.RefreshTimeInterval < 0 {
			v.add(CategoryIntegrationConnectors, ic.Name, "refreshTimeInterval", "refresh time interval cannot be negative")
		}
		for _, target := range ic.Targets {
			if !dits[target] {
				v.unknown(CategoryIntegrationConnectors, ic.Name, "targets", CategoryDeployedImplementationTypes, target)
			}
		}
	}
	return known
}

func (v *validator) engines(c *Catalogue, dits, connectorTypes map[string]bool) (map[string]bool, map[string]bool) {
	engines := make(map[string]bool)
	names := v.names(CategoryGovernanceEngines)
	for _, e := range c.GovernanceEngines {
		if !names.add(e.Name, e.QualifiedName(), e.GUID) {
			continue
		}
		engines[e.Name] = true
		if e.TypeName == "" {
			v.add(CategoryGovernanceEngines, e.Name, "typeName", "engine type name is required")
		}
		for _, r := range e.Resources {
			if !dits[r] {
				v.unknown(CategoryGovernanceEngines, e.Name, "resources", CategoryDeployedImplementationTypes, r)
			}
		}
	}

	services := make(map[string]bool)
	names = v.names(CategoryGovernanceServices)
	for _, s := range c.GovernanceServices {
		if !names.add(s.Name, s.QualifiedName(), s.GUID) {
			continue
		}
		services[s.Name] = true
		if s.TypeName == "" {
			v.add(CategoryGovernanceServices, s.Name, "typeName", "service type name is required")
		}
		if !connectorTypes[s.ConnectorType] {
			v.unknown(CategoryGovernanceServices, s.Name, "connectorType", CategoryConnectorTypes, s.ConnectorType)
		}
	}
	return engines, services
}

func (v *validator) requestTypes(c *Catalogue, engines, services, dits, connectorTypes, templates, integrationConnectors map[string]bool) map[string]bool {
	known := make(map[string]bool)
	names := v.names(CategoryRequestTypes)
	for _, rt := range c.RequestTypes {
		if rt.Engine == "" || rt.GovernanceRequestType == "" {
			v.add(CategoryRequestTypes, rt.Key(), "governanceRequestType", "engine and governance request type are required")
			continue
		}
		if !names.add(rt.Key(), rt.QualifiedName(), rt.GUID) {
			continue
		}
		known[rt.Key()] = true
		if !engines[rt.Engine] {
			v.unknown(CategoryRequestTypes, rt.Key(), "engine", CategoryGovernanceEngines, rt.Engine)
		}
		if !services[rt.Service] {
			v.unknown(CategoryRequestTypes, rt.Key(), "service", CategoryGovernanceServices, rt.Service)
		}
		for _, at := range rt.ActionTargets {
			if at.Name == "" {
				v.add(CategoryRequestTypes, rt.Key(), "actionTargets.name", "action target name is required")
			}
			var pool map[string]bool
			var category string
			switch at.Kind {
			case TargetDeployedImplementationType:
				pool, category = dits, CategoryDeployedImplementationTypes
			case TargetConnectorType:
				pool, category = connectorTypes, CategoryConnectorTypes
			case TargetTemplate:
				pool, category = templates, CategoryTemplates
			case TargetIntegrationConnector:
				pool, category = integrationConnectors, CategoryIntegrationConnectors
			default:
				v.result.Add(&DefinitionError{
					Category: CategoryRequestTypes,
					Name:     rt.Key(),
					Field:    "actionTargets.kind",
					Message:  fmt.Sprintf("unknown action target kind %q", at.Kind),
					Hint: fmt.Sprintf("Use one of %s, %s, %s or %s.",
						TargetDeployedImplementationType, TargetConnectorType, TargetTemplate, TargetIntegrationConnector),
				})
				continue
			}
			if !pool[at.Target] {
				v.unknown(CategoryRequestTypes, rt.Key(), "actionTargets.target", category, at.Target)
			}
		}
	}
	return known
}

func (v *validator) processes(c *Catalogue, requestTypes map[string]bool) {
	names := v.names(CategoryProcesses)
	for _, p := range c.Processes {
		if !names.add(p.Name, p.QualifiedName(), p.GUID) {
			continue
		}
		steps := make(map[string]bool)
		for _, s := range p.Steps {
			if s.Name == "" {
				v.add(CategoryProcesses, p.Name, "steps.name", "step name is required")
				continue
			}
			if steps[s.Name] {
				v.add(CategoryProcesses, p.Name, "steps", "step %q is defined more than once", s.Name)
				continue
			}
			steps[s.Name] = true
			v.guid(CategoryProcesses, p.StepQualifiedName(s.Name), s.GUID)
			if !requestTypes[RequestTypeKey(s.Engine, s.RequestType)] {
				v.unknown(CategoryProcesses, p.Name, "steps.requestType", CategoryRequestTypes, RequestTypeKey(s.Engine, s.RequestType))
			}
		}
		if !steps[p.FirstStep] {
			v.unknown(CategoryProcesses, p.Name, "firstStep", "steps", p.FirstStep)
		}
		for _, s := range p.Steps {
			for _, next := range s.Next {
				if !steps[next.Step] {
					v.unknown(CategoryProcesses, p.Name, "steps.next.step", "steps", next.Step)
				}
				if next.Guard == "" {
					v.add(CategoryProcesses, p.Name, "steps.next.guard", "transition from %q to %q has no guard", s.Name, next.Step)
				}
			}
		}
	}
}

func (v *validator) unknown(category, name, field, targetCategory, target string) {
	v.result.Add(&DefinitionError{
		Category: category,
		Name:     name,
		Field:    field,
		Message:  fmt.Sprintf("refers to unknown %s %q", targetCategory, target),
		Hint:     fmt.Sprintf("Define %q in %s or correct the reference.", target, targetCategory),
	})
}
