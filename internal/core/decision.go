package core

import "fmt"

type DecisionKind int

const (
	NoTool DecisionKind = iota
	InvokeTool
)

// ToolDecision is the model's transient tool-selection verdict. It is
// consumed immediately after the call that produced it and never stored.
type ToolDecision struct {
	Kind DecisionKind
	Name string
	Args map[string]string
}

// Decision is the structured outcome of a reasoning call: either a tool
// invocation or a textual answer.
type Decision struct {
	Tool   ToolDecision
	Answer string
}

var toolRegistry = map[string]struct{}{
	RetrievalToolName: {},
}

// ValidateTool rejects decisions naming a tool outside the fixed registry.
func ValidateTool(d ToolDecision) error {
	if d.Kind != InvokeTool {
		return nil
	}
	if _, ok := toolRegistry[d.Name]; !ok {
		return fmt.Errorf("unrecognized tool: %q", d.Name)
	}
	return nil
}
