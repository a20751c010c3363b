package pipeline

import (
	"fmt"

	"github.com/vvka-141/omarchive/internal/processors"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// Plan is an ordered list of processors.
type Plan []processors.Processor

// DefaultPlan returns every processor in dependency order.
func DefaultPlan() Plan {
	return Plan(processors.All())
}

// Names returns the processor names in plan order.
func (p Plan) Names() []string {
	names := make([]string, len(p))
	for i, proc := range p {
		names[i] = proc.Name()
	}
	return names
}

// Validate checks that every requirement of a processor runs before it.
// A requirement that is missing, cyclic or runs later would leave the
// processor referencing nodes that do not exist yet, so those errors match
// both omarchive.ErrOrdering and omarchive.ErrDanglingReference.
func (p Plan) Validate() error {
	position := make(map[string]int, len(p))
	for i, proc := range p {
		if _, ok := position[proc.Name()]; ok {
			return fmt.Errorf("processor %q appears more than once: %w", proc.Name(), omarchive.ErrOrdering)
		}
		position[proc.Name()] = i
	}

	for _, proc := range p {
		for _, req := range proc.Requires() {
			if _, ok := position[req]; !ok {
				return fmt.Errorf("processor %q requires %q, which is not in the plan: %w: %w",
					proc.Name(), req, omarchive.ErrOrdering, omarchive.ErrDanglingReference)
			}
		}
	}

	if err := p.detectCycles(); err != nil {
		return err
	}

	for i, proc := range p {
		for _, req := range proc.Requires() {
			if position[req] > i {
				return fmt.Errorf("processor %q requires %q, which runs after it: %w: %w",
					proc.Name(), req, omarchive.ErrOrdering, omarchive.ErrDanglingReference)
			}
		}
	}
	return nil
}

// detectCycles walks Requires depth first. A processor met again while still
// on the walk is part of a cycle.
func (p Plan) detectCycles() error {
	byName := make(map[string]processors.Processor, len(p))
	for _, proc := range p {
		byName[proc.Name()] = proc
	}

	// temporary: processors on the current walk.
	// permanent: processors fully visited and known to be acyclic.
	temporary := make(map[string]bool)
	permanent := make(map[string]bool)

	var visit func(name string) error
	visit = func(name string) error {
		if permanent[name] {
			return nil
		}
		if temporary[name] {
			return fmt.Errorf("dependency cycle involving processor %q: %w: %w",
				name, omarchive.ErrOrdering, omarchive.ErrDanglingReference)
		}
		temporary[name] = true
		for _, req := range byName[name].Requires() {
			if err := visit(req); err != nil {
				return err
			}
		}
		delete(temporary, name)
		permanent[name] = true
		return nil
	}

	for _, proc := range p {
		if err := visit(proc.Name()); err != nil {
			return err
		}
	}
	return nil
}
