package corpus

import (
	"fmt"
	"slices"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
)

// Example is one training record: exactly three messages (instruction,
// user utterance, assistant turn) plus the tool specs exposed for the turn.
type Example struct {
	Messages []Message          `json:"messages"`
	Tools    []catalog.ToolSpec `json:"tools"`
}

// New builds a single-call example: the assistant answers with a reasoning
// trace and one tool call.
func New(user, tool string, args map[string]any, tools []catalog.ToolSpec, trace string) Example {
	return NewMulti(user, []ToolCall{{Name: tool, Args: args}}, tools, trace)
}

// NewMulti builds an example whose assistant turn issues the given ordered calls.
func NewMulti(user string, calls []ToolCall, tools []catalog.ToolSpec, trace string) Example {
	return Example{
		Messages: []Message{Developer(), User(user), AssistantCalls(trace, calls...)},
		Tools:    tools,
	}
}

// NewPlain builds a negative example: the assistant answers in plain text
// and makes no tool call despite the attached specs.
func NewPlain(user, answer string, tools []catalog.ToolSpec) Example {
	return Example{
		Messages: []Message{Developer(), User(user), AssistantText(answer)},
		Tools:    tools,
	}
}

// User returns the user utterance, or "" for a malformed record.
func (e Example) User() string {
	if len(e.Messages) != 3 {
		return ""
	}
	return e.Messages[1].Content
}

// Assistant returns the assistant turn, or a zero Message for a malformed record.
func (e Example) Assistant() Message {
	if len(e.Messages) != 3 {
		return Message{}
	}
	return e.Messages[2]
}

// IsNegative reports whether the assistant turn carries no tool calls.
func (e Example) IsNegative() bool { return len(e.Assistant().ToolCalls) == 0 }

// IsMultiTool reports whether the assistant turn carries more than one call.
func (e Example) IsMultiTool() bool { return len(e.Assistant().ToolCalls) > 1 }

// WithUser clones the example with a replaced user utterance. The label
// (assistant turn, tool specs) is shared unchanged: lexical variants and
// typo copies must keep the exact tool/argument target of their source.
func (e Example) WithUser(text string) Example {
	msgs := slices.Clone(e.Messages)
	if len(msgs) == 3 {
		msgs[1] = User(text)
	}
	return Example{Messages: msgs, Tools: e.Tools}
}

// Check verifies the structural invariants of a record:
//   - exactly three messages with roles developer, user, assistant;
//   - tool_calls present iff the assistant content is think-wrapped;
//   - every called tool appears in the record's tools with all of its
//     required parameters present among the argument keys.
func (e Example) Check() error {
	if len(e.Messages) != 3 {
		return fmt.Errorf("expected 3 messages, got %d", len(e.Messages))
	}
	for i, role := range []string{RoleDeveloper, RoleUser, RoleAssistant} {
		if e.Messages[i].Role != role {
			return fmt.Errorf("message %d: expected role %q, got %q", i, role, e.Messages[i].Role)
		}
	}
	assistant := e.Messages[2]
	_, hasTrace := assistant.Trace()
	if hasTrace != (len(assistant.ToolCalls) > 0) {
		return fmt.Errorf("assistant content and tool_calls disagree: trace=%t calls=%d", hasTrace, len(assistant.ToolCalls))
	}
	for _, call := range assistant.ToolCalls {
		spec, ok := e.findTool(call.Name)
		if !ok {
			return fmt.Errorf("tool call %q: spec not attached to record", call.Name)
		}
		for _, req := range spec.Parameters.Required {
			if _, ok := call.Args[req]; !ok {
				return fmt.Errorf("tool call %q: missing required argument %q", call.Name, req)
			}
		}
	}
	return nil
}

func (e Example) findTool(name string) (catalog.ToolSpec, bool) {
	for _, spec := range e.Tools {
		if spec.Name == name {
			return spec, true
		}
	}
	return catalog.ToolSpec{}, false
}
