package corpus

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_OneRecordPerLine(t *testing.T) {
	cat := testCatalog(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewPlain("Hello!", "Hi!", specs(t, cat, "play_music"))))
	require.NoError(t, w.Write(New("Pause", "pause_music", map[string]any{}, specs(t, cat, "pause_music"), "Pause music.")))
	require.NoError(t, w.Flush())
	assert.Equal(t, 2, w.Count())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	// Think markers are written literally, not HTML-escaped.
	assert.Contains(t, lines[1], "<think>Pause music.</think>")
}

func TestExample_RoundTrip(t *testing.T) {
	cat := testCatalog(t)
	ex := New("Remind me to stretch in 10 minutes", "create_reminder",
		map[string]any{"message": "stretch", "delay_minutes": 10},
		specs(t, cat, "create_reminder", "list_reminders"), "Create reminder in 10 minutes.")

	first, err := json.Marshal(ex)
	require.NoError(t, err)
	var parsed Example
	require.NoError(t, json.Unmarshal(first, &parsed))
	require.NoError(t, parsed.Check())
	second, err := json.Marshal(parsed)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestValidate_Stats(t *testing.T) {
	cat := testCatalog(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(New("Play jazz", "play_music",
		map[string]any{"query": "jazz", "type": "playlist"}, specs(t, cat, "play_music"), "Play music: jazz")))
	require.NoError(t, w.Write(New("Play rock", "play_music",
		map[string]any{"query": "rock", "type": "playlist"}, specs(t, cat, "play_music"), "Play music: rock")))
	require.NoError(t, w.Write(NewMulti("Check email and calendar", []ToolCall{
		{Name: "get_emails", Args: map[string]any{}},
		{Name: "get_calendar_events", Args: map[string]any{}},
	}, specs(t, cat, "get_emails", "get_calendar_events"), "Email and calendar.")))
	require.NoError(t, w.Write(NewPlain("Thanks", "You're welcome!", specs(t, cat, "navigate"))))
	require.NoError(t, w.Flush())

	stats, err := Validate(&buf, cat)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Negative)
	assert.InDelta(t, 25.0, stats.NegativePercent(), 0.001)
	assert.Equal(t, 1, stats.MultiTool)
	require.NotEmpty(t, stats.ToolCounts)
	assert.Equal(t, ToolCount{Name: "play_music", Count: 2}, stats.ToolCounts[0])
	// Ties resolve by name.
	assert.Equal(t, "get_calendar_events", stats.ToolCounts[1].Name)
	assert.Equal(t, "get_emails", stats.ToolCounts[2].Name)
	assert.Len(t, stats.Top(2), 2)
	assert.Len(t, stats.Top(100), 3)
}

func TestValidate_FailsWithLineNumber(t *testing.T) {
	cat := testCatalog(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Write(NewPlain("Hello!", "Hi!", specs(t, cat, "navigate"))))
	require.NoError(t, w.Flush())
	buf.WriteString("{not json\n")

	_, err := Validate(&buf, cat)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Line)
	assert.Contains(t, err.Error(), "line 2")
}

func TestValidate_FailsOnSchemaViolation(t *testing.T) {
	cat := testCatalog(t)
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// Present required key but wrong value type for the schema.
	require.NoError(t, w.Write(New("Set volume", "set_volume",
		map[string]any{"volume_percent": "loud"}, specs(t, cat, "set_volume"), "Set volume.")))
	require.NoError(t, w.Flush())

	_, err := Validate(&buf, cat)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Line)
}
