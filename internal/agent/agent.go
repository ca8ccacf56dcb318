package agent

import (
	"errors"
	"fmt"
)

var ErrUnknownTool = errors.New("agent references an unregistered tool")

// Definition is the declarative description of an agent handed to the
// orchestrator. Which agent runs when is decided by the orchestrator.
type Definition struct {
	Name        string       `json:"name"`
	Model       string       `json:"model"`
	Description string       `json:"description"`
	Instruction string       `json:"instruction"`
	Tools       []string     `json:"tools"`
	SubAgents   []Definition `json:"sub_agents,omitempty"`
}

type toolLookup interface {
	Has(name string) bool
}

// Validate checks the tree only references tools the registry knows.
func (d Definition) Validate(tools toolLookup) error {
	var errs []error

	for _, tool := range d.Tools {
		if !tools.Has(tool) {
			errs = append(errs, fmt.Errorf("%w: %s uses %s", ErrUnknownTool, d.Name, tool))
		}
	}

	for _, sub := range d.SubAgents {
		if err := sub.Validate(tools); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Find returns the agent named name anywhere in the tree.
func (d Definition) Find(name string) (Definition, bool) {
	if d.Name == name {
		return d, true
	}

	for _, sub := range d.SubAgents {
		if found, ok := sub.Find(name); ok {
			return found, true
		}
	}

	return Definition{}, false
}
