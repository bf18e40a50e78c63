// Package corpus defines the training record model (messages, tool calls,
// examples) and its line-delimited JSON serialization, plus the validator
// and distribution statistics computed over a written corpus.
package corpus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Message roles as they appear on the wire.
const (
	RoleDeveloper = "developer"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Instruction is the static system text carried by every record's first message.
const Instruction = "You are a model that can do function calling with the following functions"

const (
	traceOpen  = "<think>"
	traceClose = "</think>"
)

// ToolCall is one concrete invocation the assistant should emit.
// On the wire it is {"type":"function","function":{"name":...,"arguments":{...}}}.
type ToolCall struct {
	Name string
	Args map[string]any
}

type wireFunction struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

type wireToolCall struct {
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

// MarshalJSON writes the function-call envelope. Nil Args serialize as {}
// so argless calls still carry an arguments object.
func (c ToolCall) MarshalJSON() ([]byte, error) {
	args := c.Args
	if args == nil {
		args = map[string]any{}
	}
	return json.Marshal(wireToolCall{
		Type:     "function",
		Function: wireFunction{Name: c.Name, Arguments: args},
	})
}

// UnmarshalJSON parses the envelope and rejects unknown call types.
func (c *ToolCall) UnmarshalJSON(data []byte) error {
	var w wireToolCall
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type != "function" {
		return fmt.Errorf("unsupported tool call type %q", w.Type)
	}
	if w.Function.Name == "" {
		return fmt.Errorf("tool call without function name")
	}
	c.Name = w.Function.Name
	c.Args = w.Function.Arguments
	if c.Args == nil {
		c.Args = map[string]any{}
	}
	return nil
}

// Message is one conversation turn. The assistant variant is polymorphic:
// plain text (no ToolCalls), or a reasoning trace wrapped in <think> tags
// followed by one or more ordered tool calls.
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Developer returns the static instruction message.
func Developer() Message {
	return Message{Role: RoleDeveloper, Content: Instruction}
}

// User returns a user utterance message.
func User(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantText returns a plain-text assistant turn with no tool calls.
func AssistantText(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// AssistantCalls returns an assistant turn whose content is the reasoning
// trace wrapped in think tags, followed by the given ordered calls.
func AssistantCalls(trace string, calls ...ToolCall) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   traceOpen + trace + traceClose,
		ToolCalls: calls,
	}
}

// Trace returns the reasoning trace if the content is think-wrapped.
func (m Message) Trace() (string, bool) {
	if !strings.HasPrefix(m.Content, traceOpen) || !strings.HasSuffix(m.Content, traceClose) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(m.Content, traceOpen), traceClose), true
}
