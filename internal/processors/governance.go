package processors

import (
	"fmt"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/assembler"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/vocabulary"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// GovernanceEngines creates governance engines and the services they run.
type GovernanceEngines struct{}

func (GovernanceEngines) Name() string { return NameGovernanceEngines }

func (GovernanceEngines) Requires() []string {
	return []string{NameDeployedImplementationTypes, NameConnectorTypes}
}

func (GovernanceEngines) Process(s *State) error {
	for _, e := range s.Catalogue.GovernanceEngines {
		guid, err := s.Assembler.AddGovernanceEngine(assembler.CapabilitySpec{
			TypeName:      e.TypeName,
			QualifiedName: e.QualifiedName(),
			Name:          e.Name,
			Description:   e.Description,
			GUID:          e.GUID,
		})
		if err != nil {
			return fmt.Errorf("governance engine %s: %w", e.Name, err)
		}
		for _, resource := range e.Resources {
			dit, err := s.Tables.DeployedImplementationTypes.Get(resource)
			if err != nil {
				return fmt.Errorf("governance engine %s: %w", e.Name, err)
			}
			if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
				TypeName:   vocabulary.ResourceList,
				End1:       guid,
				End2:       dit,
				Properties: archive.Properties{vocabulary.PropResourceUse: "Supported Technology"},
			}); err != nil {
				return fmt.Errorf("governance engine %s: %w", e.Name, err)
			}
		}
		s.Tables.Engines.Put(e.Name, guid)
		s.Logger.Verbose("Governance engine %s (%s)", e.Name, guid)
	}

	for _, svc := range s.Catalogue.GovernanceServices {
		connectorType, err := s.Tables.ConnectorTypes.Get(svc.ConnectorType)
		if err != nil {
			return fmt.Errorf("governance service %s: %w", svc.Name, err)
		}
		guid, err := s.Assembler.AddGovernanceService(assembler.ServiceSpec{
			TypeName:                   svc.TypeName,
			QualifiedName:              svc.QualifiedName(),
			Name:                       svc.Name,
			Description:                svc.Description,
			GUID:                       svc.GUID,
			DeployedImplementationType: svc.DeployedImplementationType,
			ConnectorTypeGUID:          connectorType,
			ConfigurationProperties:    svc.ConfigurationProperties,
		})
		if err != nil {
			return fmt.Errorf("governance service %s: %w", svc.Name, err)
		}
		s.Tables.Services.Put(svc.Name, guid)
		s.Logger.Verbose("Governance service %s (%s)", svc.Name, guid)
	}
	return nil
}

// RequestTypes binds request types to services and materializes each as a
// governance action type with its pre-declared action targets.
type RequestTypes struct{}

func (RequestTypes) Name() string { return NameRequestTypes }

func (RequestTypes) Requires() []string {
	return []string{
		NameDeployedImplementationTypes,
		NameConnectorTypes,
		NameTemplates,
		NameIntegrationConnectors,
		NameGovernanceEngines,
	}
}

func (RequestTypes) Process(s *State) error {
	for _, rt := range s.Catalogue.RequestTypes {
		guid, err := addRequestType(s, rt)
		if err != nil {
			return fmt.Errorf("request type %s: %w", rt.Key(), err)
		}
		s.Tables.GovernanceActionTypes.Put(rt.Key(), guid)
		s.Logger.Verbose("Request type %s (%s)", rt.Key(), guid)
	}
	return nil
}

func addRequestType(s *State, rt catalogue.RequestType) (string, error) {
	engine, err := s.Tables.Engines.Get(rt.Engine)
	if err != nil {
		return "", err
	}
	service, err := s.Tables.Services.Get(rt.Service)
	if err != nil {
		return "", err
	}

	binding := archive.Properties{vocabulary.PropRequestType: rt.GovernanceRequestType}
	if rt.ServiceRequestType != "" {
		binding[vocabulary.PropServiceRequestType] = rt.ServiceRequestType
	}
	if len(rt.RequestParameters) > 0 {
		binding[vocabulary.PropRequestParameters] = assembler.CopyStrings(rt.RequestParameters)
	}
	if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
		TypeName:      vocabulary.SupportedGovernanceService,
		End1:          engine,
		End2:          service,
		Discriminator: rt.GovernanceRequestType,
		Properties:    binding,
	}); err != nil {
		return "", err
	}

	displayName := rt.DisplayName
	if displayName == "" {
		displayName = rt.GovernanceRequestType
	}
	guid, err := s.Assembler.AddNode(assembler.NodeSpec{
		TypeName:      vocabulary.GovernanceActionType,
		QualifiedName: rt.QualifiedName(),
		DisplayName:   displayName,
		Description:   rt.Description,
		GUID:          rt.GUID,
	})
	if err != nil {
		return "", err
	}

	executor := archive.Properties{vocabulary.PropRequestType: rt.GovernanceRequestType}
	if len(rt.RequestParameters) > 0 {
		executor[vocabulary.PropRequestParameters] = assembler.CopyStrings(rt.RequestParameters)
	}
	if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
		TypeName:   vocabulary.GovernanceActionTypeExecutor,
		End1:       guid,
		End2:       engine,
		Properties: executor,
	}); err != nil {
		return "", err
	}

	for _, at := range rt.ActionTargets {
		target, err := resolveActionTarget(s, at)
		if err != nil {
			return "", err
		}
		props := archive.Properties{vocabulary.PropActionTargetName: at.Name}
		if at.Description != "" {
			props[vocabulary.PropDescription] = at.Description
		}
		if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
			TypeName:      vocabulary.TargetForGovernanceActionType,
			End1:          guid,
			End2:          target,
			Discriminator: at.Name,
			Properties:    props,
		}); err != nil {
			return "", err
		}
	}
	return guid, nil
}

func resolveActionTarget(s *State, at catalogue.ActionTarget) (string, error) {
	switch at.Kind {
	case catalogue.TargetDeployedImplementationType:
		return s.Tables.DeployedImplementationTypes.Get(at.Target)
	case catalogue.TargetConnectorType:
		return s.Tables.ConnectorTypes.Get(at.Target)
	case catalogue.TargetTemplate:
		return s.Tables.Templates.Get(at.Target)
	case catalogue.TargetIntegrationConnector:
		return s.Tables.IntegrationConnectors.Get(at.Target)
	}
	return "", fmt.Errorf("action target %s has unknown kind %q: %w", at.Name, at.Kind, omarchive.ErrInvalidArgument)
}

// GovernanceActionProcesses creates processes, their steps and the guarded
// transitions between steps.
type GovernanceActionProcesses struct{}

func (GovernanceActionProcesses) Name() string { return NameGovernanceActionProcesses }

func (GovernanceActionProcesses) Requires() []string {
	return []string{NameGovernanceEngines, NameRequestTypes}
}

func (GovernanceActionProcesses) Process(s *State) error {
	for _, p := range s.Catalogue.Processes {
		guid, err := addProcess(s, p)
		if err != nil {
			return fmt.Errorf("governance action process %s: %w", p.Name, err)
		}
		s.Logger.Verbose("Governance action process %s (%s)", p.Name, guid)
	}
	return nil
}

func addProcess(s *State, p catalogue.GovernanceActionProcess) (string, error) {
	process, err := s.Assembler.AddNode(assembler.NodeSpec{
		TypeName:      vocabulary.GovernanceActionProcess,
		QualifiedName: p.QualifiedName(),
		DisplayName:   p.Name,
		Description:   p.Description,
		GUID:          p.GUID,
	})
	if err != nil {
		return "", err
	}

	steps := newTable("step of " + p.Name)
	for _, step := range p.Steps {
		if _, err := s.Tables.GovernanceActionTypes.Get(catalogue.RequestTypeKey(step.Engine, step.RequestType)); err != nil {
			return "", fmt.Errorf("step %s: %w", step.Name, err)
		}
		engine, err := s.Tables.Engines.Get(step.Engine)
		if err != nil {
			return "", fmt.Errorf("step %s: %w", step.Name, err)
		}

		guid, err := s.Assembler.AddNode(assembler.NodeSpec{
			TypeName:      vocabulary.GovernanceActionProcessStep,
			QualifiedName: p.StepQualifiedName(step.Name),
			DisplayName:   step.Name,
			Description:   step.Description,
			GUID:          step.GUID,
		})
		if err != nil {
			return "", err
		}

		executor := archive.Properties{vocabulary.PropRequestType: step.RequestType}
		if len(step.RequestParameters) > 0 {
			executor[vocabulary.PropRequestParameters] = assembler.CopyStrings(step.RequestParameters)
		}
		if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
			TypeName:   vocabulary.GovernanceActionExecutor,
			End1:       guid,
			End2:       engine,
			Properties: executor,
		}); err != nil {
			return "", fmt.Errorf("step %s: %w", step.Name, err)
		}
		steps.Put(step.Name, guid)
	}

	first, err := steps.Get(p.FirstStep)
	if err != nil {
		return "", err
	}
	var flow archive.Properties
	if p.FirstGuard != "" {
		flow = archive.Properties{vocabulary.PropGuard: p.FirstGuard}
	}
	if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
		TypeName:   vocabulary.GovernanceActionProcessFlow,
		End1:       process,
		End2:       first,
		Properties: flow,
	}); err != nil {
		return "", err
	}

	for _, step := range p.Steps {
		from, err := steps.Get(step.Name)
		if err != nil {
			return "", err
		}
		for _, next := range step.Next {
			to, err := steps.Get(next.Step)
			if err != nil {
				return "", fmt.Errorf("step %s: %w", step.Name, err)
			}
			if _, err := s.Assembler.AddEdge(assembler.EdgeSpec{
				TypeName:      vocabulary.NextGovernanceActionProcessStep,
				End1:          from,
				End2:          to,
				Discriminator: next.Guard,
				Properties: archive.Properties{
					vocabulary.PropGuard:          next.Guard,
					vocabulary.PropMandatoryGuard: next.Mandatory,
				},
			}); err != nil {
				return "", fmt.Errorf("step %s: %w", step.Name, err)
			}
		}
	}
	return process, nil
}
