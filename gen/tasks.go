package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// taskRow maps a spoken task phrase to the deterministic create_task
// arguments: the title always, description and priority when present.
type taskRow struct {
	phrase, title, desc, priority string
}

var taskRows = []taskRow{
	{"review the code", "Review code", "", ""},
	{"finish the report", "Finish report", "Complete report", "high"},
	{"call mom", "Call mom", "", ""},
	{"deploy to production", "Deploy", "Deploy to prod", "high"},
	{"buy groceries", "Buy groceries", "", "low"},
	{"update documentation", "Update docs", "", "medium"},
	{"fix the login bug", "Fix login bug", "Fix auth issue", "high"},
	{"send invoice", "Send invoice", "", "medium"},
	{"review PRs", "Review PRs", "Review pull requests", "medium"},
	{"clean up database", "Clean DB", "Remove old entries", "low"},
	{"write unit tests", "Write tests", "Add unit tests", "medium"},
	{"backup server", "Backup server", "", "high"},
	{"update dependencies", "Update deps", "Update npm packages", "medium"},
	{"schedule meeting", "Schedule meeting", "", "low"},
	{"prepare presentation", "Prepare presentation", "Create slides", "high"},
	{"respond to emails", "Respond emails", "", "medium"},
	{"refactor auth module", "Refactor auth", "Improve auth code", "medium"},
	{"set up monitoring", "Setup monitoring", "Configure alerts", "high"},
	{"document API", "Document API", "Write API docs", "medium"},
	{"run performance tests", "Perf tests", "Run load tests", "high"},
	{"fix broken tests", "Fix tests", "Debug failing tests", "high"},
	{"optimize queries", "Optimize queries", "Improve DB queries", "medium"},
	{"review security", "Security review", "Check vulnerabilities", "high"},
	{"update README", "Update README", "", "low"},
	{"merge branches", "Merge branches", "Merge feature to main", "medium"},
}

var taskCreatePatterns = []string{
	"Add a task to {t}", "Create a todo: {t}", "Remind me to {t}", "Task: {t}",
	"I need to {t}", "todo: {t}", "add task {t}", "new task: {t}",
	"remember to {t}", "add to my list: {t}", "make a task {t}",
}

// taskListQueries are informational phrasings and their get_tasks filters.
var taskListQueries = []struct {
	msg  string
	args map[string]any
}{
	{"What are my tasks?", map[string]any{}},
	{"Show my todo list", map[string]any{}},
	{"What do I need to do?", map[string]any{}},
	{"Show pending tasks", map[string]any{"status": "pending"}},
	{"What have I completed?", map[string]any{"status": "completed"}},
	{"High priority tasks", map[string]any{"priority": "high"}},
	{"What's coming up?", map[string]any{"upcoming": true}},
	{"list my todos", map[string]any{}},
	{"my task list", map[string]any{}},
	{"tasks please", map[string]any{}},
	{"pending items", map[string]any{"status": "pending"}},
	{"medium priority", map[string]any{"priority": "medium"}},
	{"low priority stuff", map[string]any{"priority": "low"}},
}

func (r taskRow) args() map[string]any {
	args := map[string]any{"title": r.title}
	if r.desc != "" {
		args["description"] = r.desc
	}
	if r.priority != "" {
		args["priority"] = r.priority
	}
	return args
}

func genTasks(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "create_task", "get_tasks", "complete_task", "delete_task")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, row := range taskRows {
		for _, pattern := range sample(rng, taskCreatePatterns, 4) {
			msg, err := fill(pattern, "t", row.phrase)
			if err != nil {
				return nil, err
			}
			trace := fmt.Sprintf("User wants to create task: %s", row.title)
			out = withVariants(rng, out, corpus.New(msg, "create_task", row.args(), tools, trace), 2)
		}
	}
	for _, q := range taskListQueries {
		ex := corpus.New(q.msg, "get_tasks", q.args, tools, "User wants their tasks.")
		out = withVariants(rng, out, ex, 3)
	}
	return out, nil
}
