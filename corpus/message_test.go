package corpus

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantCalls_TraceWrapping(t *testing.T) {
	m := AssistantCalls("User wants jazz.", ToolCall{Name: "play_music", Args: map[string]any{"query": "jazz"}})
	assert.Equal(t, RoleAssistant, m.Role)
	assert.Equal(t, "<think>User wants jazz.</think>", m.Content)
	trace, ok := m.Trace()
	require.True(t, ok)
	assert.Equal(t, "User wants jazz.", trace)

	plain := AssistantText("Paris is the capital of France.")
	_, ok = plain.Trace()
	assert.False(t, ok)
	assert.Empty(t, plain.ToolCalls)
}

func TestToolCall_MarshalShape(t *testing.T) {
	call := ToolCall{Name: "get_tasks", Args: map[string]any{"status": "pending"}}
	raw, err := json.Marshal(call)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"function","function":{"name":"get_tasks","arguments":{"status":"pending"}}}`, string(raw))
}

func TestToolCall_MarshalNilArgs(t *testing.T) {
	raw, err := json.Marshal(ToolCall{Name: "list_files"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"function","function":{"name":"list_files","arguments":{}}}`, string(raw))
}

func TestToolCall_Unmarshal(t *testing.T) {
	var call ToolCall
	err := json.Unmarshal([]byte(`{"type":"function","function":{"name":"navigate","arguments":{"url":"https://github.com"}}}`), &call)
	require.NoError(t, err)
	assert.Equal(t, "navigate", call.Name)
	assert.Equal(t, map[string]any{"url": "https://github.com"}, call.Args)

	err = json.Unmarshal([]byte(`{"type":"magic","function":{"name":"navigate","arguments":{}}}`), &call)
	require.Error(t, err)

	err = json.Unmarshal([]byte(`{"type":"function","function":{"arguments":{}}}`), &call)
	require.Error(t, err)
}

func TestDeveloper_Instruction(t *testing.T) {
	m := Developer()
	assert.Equal(t, RoleDeveloper, m.Role)
	assert.Equal(t, Instruction, m.Content)
}
