package gen

import (
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// multiIntent is a base utterance combining several intents with the
// ordered calls the assistant must emit. Call order follows the order the
// intents appear in the utterance; the record's tools are the union of
// the referenced specs.
type multiIntent struct {
	msg   string
	calls []corpus.ToolCall
	trace string
}

var multiIntents = []multiIntent{
	{
		msg: "Play music and show tasks",
		calls: []corpus.ToolCall{
			{Name: "play_music", Args: map[string]any{"query": "music", "type": "playlist"}},
			{Name: "get_tasks", Args: map[string]any{}},
		},
		trace: "Music and tasks.",
	},
	{
		msg: "Check email and calendar",
		calls: []corpus.ToolCall{
			{Name: "get_emails", Args: map[string]any{}},
			{Name: "get_calendar_events", Args: map[string]any{}},
		},
		trace: "Email and calendar.",
	},
	{
		msg: "System status CPU memory disk",
		calls: []corpus.ToolCall{
			{Name: "system_cpu_usage", Args: map[string]any{}},
			{Name: "system_memory", Args: map[string]any{}},
			{Name: "system_disk", Args: map[string]any{}},
		},
		trace: "Full system status.",
	},
	{
		msg: "Tasks and calendar today",
		calls: []corpus.ToolCall{
			{Name: "get_tasks", Args: map[string]any{}},
			{Name: "get_calendar_events", Args: map[string]any{"days_ahead": 1}},
		},
		trace: "Tasks and calendar.",
	},
	{
		msg: "Search knowledge and documents for API",
		calls: []corpus.ToolCall{
			{Name: "search_knowledge", Args: map[string]any{"query": "API"}},
			{Name: "search_documents", Args: map[string]any{"query": "API"}},
		},
		trace: "Search both.",
	},
	{
		msg: "Show files and reminders",
		calls: []corpus.ToolCall{
			{Name: "list_files", Args: map[string]any{}},
			{Name: "list_reminders", Args: map[string]any{}},
		},
		trace: "Files and reminders.",
	},
	{
		msg: "Docker logs and stats for luna-api",
		calls: []corpus.ToolCall{
			{Name: "docker_logs", Args: map[string]any{"container_id": "luna-api"}},
			{Name: "docker_stats", Args: map[string]any{"container_id": "luna-api"}},
		},
		trace: "Docker logs and stats.",
	},
	{
		msg: "Show backgrounds and projects",
		calls: []corpus.ToolCall{
			{Name: "get_backgrounds", Args: map[string]any{}},
			{Name: "get_projects", Args: map[string]any{}},
		},
		trace: "Backgrounds and projects.",
	},
}

func genMultiTool(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	var out []corpus.Example
	for _, intent := range multiIntents {
		names := make([]string, 0, len(intent.calls))
		for _, call := range intent.calls {
			names = append(names, call.Name)
		}
		tools, err := toolset(cat, names...)
		if err != nil {
			return nil, err
		}
		ex := corpus.NewMulti(intent.msg, intent.calls, tools, intent.trace)
		out = withVariants(rng, out, ex, 2)
	}
	return out, nil
}
