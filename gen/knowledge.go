package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var knowledgeTerms = []string{
	"Python", "Luna project", "databases", "transformers", "consciousness", "API endpoints",
	"training", "agent architecture", "memory", "embeddings", "Docker", "security",
	"async", "vector databases", "OpenAI API", "React hooks", "TypeScript", "testing",
	"deployment", "monitoring", "authentication", "caching", "performance", "debugging",
	"logging", "error handling", "git workflow", "code review", "refactoring", "design patterns",
}

var knowledgeSearchPatterns = []string{
	"Search my notes for {t}", "Find {t} in my knowledge", "What did I write about {t}?",
	"Do I have notes on {t}?", "Look up {t} notes", "Search for {t}",
	"find {t} stuff", "search knowledge for {t}", "check my notes about {t}",
	"anything about {t}?", "{t} notes", "look for {t}",
}

// knowledgeNotes are contents the create-knowledge phrasings wrap; the
// title and category are derived from the phrasing, the content from the row.
var knowledgeNotes = []string{
	"Python list comprehensions are faster", "API key expires March 15",
	"Server IP is 192.168.1.100", "React hooks at top level",
	"TypeScript strict mode always",
}

var knowledgeCreateForms = []struct {
	pattern, title, category string
}{
	{"Save this: {c}", "Saved Note", "notes"},
	{"Remember that {c}", "Reminder", "reminders"},
	{"Note: {c}", "Note", "notes"},
}

var factQueries = []string{
	"What do you know about me?", "Show my preferences", "My profile",
	"What have you learned about me?", "my facts", "user facts",
}

func genKnowledge(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "search_knowledge", "create_knowledge", "get_user_facts")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, term := range knowledgeTerms {
		for _, pattern := range sample(rng, knowledgeSearchPatterns, 3) {
			msg, err := fill(pattern, "t", term)
			if err != nil {
				return nil, err
			}
			args := map[string]any{"query": term}
			trace := fmt.Sprintf("User wants to search knowledge for: %s", term)
			out = withVariants(rng, out, corpus.New(msg, "search_knowledge", args, tools, trace), 2)
		}
	}
	for _, form := range knowledgeCreateForms {
		for _, content := range knowledgeNotes {
			msg, err := fill(form.pattern, "c", content)
			if err != nil {
				return nil, err
			}
			args := map[string]any{"title": form.title, "content": content, "category": form.category}
			out = append(out, corpus.New(msg, "create_knowledge", args, tools, "User wants to save knowledge."))
		}
	}
	for _, q := range factQueries {
		out = append(out, corpus.New(q, "get_user_facts", map[string]any{}, tools, "User wants their facts."))
	}
	return out, nil
}
