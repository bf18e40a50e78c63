package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func specs(t *testing.T, cat *catalog.Catalog, names ...string) []catalog.ToolSpec {
	t.Helper()
	out := make([]catalog.ToolSpec, 0, len(names))
	for _, name := range names {
		spec, err := cat.Get(name)
		require.NoError(t, err)
		out = append(out, spec)
	}
	return out
}

func TestExample_Check_Positive(t *testing.T) {
	cat := testCatalog(t)
	ex := New("Play jazz", "play_music",
		map[string]any{"query": "jazz", "type": "playlist"},
		specs(t, cat, "play_music", "pause_music"), "Play music: jazz")
	require.NoError(t, ex.Check())
	assert.False(t, ex.IsNegative())
	assert.False(t, ex.IsMultiTool())
	assert.Equal(t, "Play jazz", ex.User())
}

func TestExample_Check_Negative(t *testing.T) {
	cat := testCatalog(t)
	ex := NewPlain("What is 2 + 2?", "2 + 2 equals 4.", specs(t, cat, "play_music"))
	require.NoError(t, ex.Check())
	assert.True(t, ex.IsNegative())
}

func TestExample_Check_MultiTool(t *testing.T) {
	cat := testCatalog(t)
	calls := []ToolCall{
		{Name: "get_emails", Args: map[string]any{}},
		{Name: "get_calendar_events", Args: map[string]any{}},
	}
	ex := NewMulti("Check email and calendar", calls,
		specs(t, cat, "get_emails", "get_calendar_events"), "Email and calendar.")
	require.NoError(t, ex.Check())
	assert.True(t, ex.IsMultiTool())
	// Call order must match intent order in the utterance.
	got := ex.Assistant().ToolCalls
	require.Len(t, got, 2)
	assert.Equal(t, "get_emails", got[0].Name)
	assert.Equal(t, "get_calendar_events", got[1].Name)
}

func TestExample_Check_Violations(t *testing.T) {
	cat := testCatalog(t)
	tools := specs(t, cat, "play_music")

	t.Run("call without attached spec", func(t *testing.T) {
		ex := New("Pause", "pause_music", map[string]any{}, tools, "Pause music.")
		assert.Error(t, ex.Check())
	})
	t.Run("missing required argument", func(t *testing.T) {
		ex := New("Play jazz", "play_music", map[string]any{"type": "playlist"}, tools, "Play music: jazz")
		assert.Error(t, ex.Check())
	})
	t.Run("plain content with tool calls", func(t *testing.T) {
		ex := New("Play jazz", "play_music", map[string]any{"query": "jazz"}, tools, "Play music: jazz")
		ex.Messages[2].Content = "sure, playing jazz"
		assert.Error(t, ex.Check())
	})
	t.Run("trace without tool calls", func(t *testing.T) {
		ex := NewPlain("Hello!", "Hello! How can I help you?", tools)
		ex.Messages[2].Content = "<think>no call needed</think>"
		assert.Error(t, ex.Check())
	})
	t.Run("wrong message count", func(t *testing.T) {
		ex := NewPlain("Hello!", "Hi!", tools)
		ex.Messages = ex.Messages[:2]
		assert.Error(t, ex.Check())
	})
	t.Run("wrong role order", func(t *testing.T) {
		ex := NewPlain("Hello!", "Hi!", tools)
		ex.Messages[0], ex.Messages[1] = ex.Messages[1], ex.Messages[0]
		assert.Error(t, ex.Check())
	})
}

func TestExample_WithUser_SharesLabel(t *testing.T) {
	cat := testCatalog(t)
	ex := New("Play jazz", "play_music",
		map[string]any{"query": "jazz", "type": "playlist"},
		specs(t, cat, "play_music"), "Play music: jazz")

	variant := ex.WithUser("hey play jazz please")
	assert.Equal(t, "hey play jazz please", variant.User())
	assert.Equal(t, "Play jazz", ex.User(), "source example must not change")
	assert.Equal(t, ex.Assistant(), variant.Assistant())
	assert.Equal(t, ex.Tools, variant.Tools)
	require.NoError(t, variant.Check())
}
