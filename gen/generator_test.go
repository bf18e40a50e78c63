package gen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

// TestGenerators_ProduceValidExamples serializes every generator's output
// and runs it through the corpus validator, covering the structural
// invariants and argument schemas for the whole production surface.
func TestGenerators_ProduceValidExamples(t *testing.T) {
	cat := testCatalog(t)
	rng := testRNG(42)
	for _, g := range Generators() {
		t.Run(g.Name, func(t *testing.T) {
			examples, err := g.Run(rng, cat)
			require.NoError(t, err)
			require.NotEmpty(t, examples)

			var buf bytes.Buffer
			w := corpus.NewWriter(&buf)
			for _, ex := range examples {
				require.NoError(t, w.Write(ex))
			}
			require.NoError(t, w.Flush())
			stats, err := corpus.Validate(&buf, cat)
			require.NoError(t, err)
			assert.Equal(t, len(examples), stats.Total)
		})
	}
}

// TestGenMusic_LabelStability checks the central invariant: every lexical
// variant of a play request carries the argument label derived from the
// item table, regardless of surface phrasing.
func TestGenMusic_LabelStability(t *testing.T) {
	cat := testCatalog(t)
	examples, err := genMusic(testRNG(1), cat)
	require.NoError(t, err)

	kinds := make(map[string]string, len(musicItems))
	for _, item := range musicItems {
		kinds[item.query] = item.kind
	}
	plays := 0
	for _, ex := range examples {
		calls := ex.Assistant().ToolCalls
		require.Len(t, calls, 1)
		if calls[0].Name != "play_music" {
			continue
		}
		plays++
		query, ok := calls[0].Args["query"].(string)
		require.True(t, ok)
		assert.Equal(t, kinds[query], calls[0].Args["type"], "utterance %q", ex.User())
	}
	assert.Greater(t, plays, len(musicItems), "each item yields several phrasings and variants")
}

func TestGenMusic_PlayJazzLabel(t *testing.T) {
	cat := testCatalog(t)
	item := musicItem{query: "jazz", kind: "playlist"}
	args := playArgs(item, false)
	assert.Equal(t, map[string]any{"query": "jazz", "type": "playlist"}, args)
	args = playArgs(item, true)
	assert.Equal(t, true, args["shuffle"])

	ex := corpus.New("Play jazz", "play_music", playArgs(item, false), mustToolset(t, cat, "play_music"), "Play music: jazz")
	require.NoError(t, ex.Check())
}

func TestGenTasks_InformationalQuery(t *testing.T) {
	cat := testCatalog(t)
	examples, err := genTasks(testRNG(5), cat)
	require.NoError(t, err)

	found := false
	for _, ex := range examples {
		if ex.User() != "What are my tasks?" {
			continue
		}
		found = true
		calls := ex.Assistant().ToolCalls
		require.Len(t, calls, 1)
		assert.Equal(t, "get_tasks", calls[0].Name)
		assert.Empty(t, calls[0].Args)
	}
	assert.True(t, found, "base informational phrasing must always be emitted")
}

func TestGenMultiTool_OrderedCalls(t *testing.T) {
	cat := testCatalog(t)
	examples, err := genMultiTool(testRNG(2), cat)
	require.NoError(t, err)

	matched := 0
	for _, ex := range examples {
		calls := ex.Assistant().ToolCalls
		if len(calls) != 2 || calls[0].Name != "get_emails" {
			continue
		}
		matched++
		assert.Equal(t, "get_calendar_events", calls[1].Name)
		names := make([]string, len(ex.Tools))
		for i, spec := range ex.Tools {
			names[i] = spec.Name
		}
		assert.ElementsMatch(t, []string{"get_emails", "get_calendar_events"}, names)
	}
	assert.GreaterOrEqual(t, matched, 1, "base utterance plus variants share the call sequence")
}

func TestGenNegative_NoCallsAndDistractors(t *testing.T) {
	cat := testCatalog(t)
	examples, err := genNegative(testRNG(8), cat)
	require.NoError(t, err)
	require.NotEmpty(t, examples)
	for _, ex := range examples {
		assert.True(t, ex.IsNegative(), "utterance %q", ex.User())
		assert.Len(t, ex.Tools, distractorCount)
		_, hasTrace := ex.Assistant().Trace()
		assert.False(t, hasTrace)
	}
}

func TestToolset_UnknownToolFails(t *testing.T) {
	cat := testCatalog(t)
	_, err := toolset(cat, "get_tasks", "launch_rocket")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrToolNotFound)
}

func mustToolset(t *testing.T, cat *catalog.Catalog, names ...string) []catalog.ToolSpec {
	t.Helper()
	specs, err := toolset(cat, names...)
	require.NoError(t, err)
	return specs
}
