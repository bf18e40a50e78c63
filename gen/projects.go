package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var projectRows = []struct {
	name, kind, desc string
}{
	{"Website Redesign", "web", "Redesign company website"},
	{"API Migration", "development", "Migrate to new API"},
	{"Mobile App", "mobile", "Develop mobile app"},
	{"Data Pipeline", "data", "Build ETL pipeline"},
	{"Security Audit", "security", "Security review"},
	{"Performance Optimization", "optimization", "Improve performance"},
	{"Documentation", "docs", "Update documentation"},
	{"Testing Framework", "testing", "Implement tests"},
}

var projectListQueries = []string{"Show projects", "My projects", "list projects", "project list"}

func genProjects(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "create_project", "get_projects")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, row := range projectRows {
		phrasings := []string{
			fmt.Sprintf("Create project %s", row.name),
			fmt.Sprintf("New project: %s", row.name),
			fmt.Sprintf("Start project %s", row.name),
			fmt.Sprintf("create %s project", row.name),
		}
		args := map[string]any{"name": row.name, "type": row.kind, "description": row.desc}
		trace := fmt.Sprintf("Create project: %s", row.name)
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "create_project", args, tools, trace))
		}
	}
	for _, msg := range projectListQueries {
		out = append(out, corpus.New(msg, "get_projects", map[string]any{}, tools, "List projects."))
	}
	return out, nil
}
