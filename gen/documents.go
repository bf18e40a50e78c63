package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var documentSearches = []string{
	"project specs", "contract", "API docs", "meeting notes", "invoice",
	"budget", "report", "presentation", "proposal", "design", "requirements",
}

var documentListQueries = []string{"Show documents", "My documents", "list uploads", "uploaded files"}

func genDocuments(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "search_documents", "get_documents")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, term := range documentSearches {
		phrasings := []string{
			fmt.Sprintf("Search docs for %s", term),
			fmt.Sprintf("Find %s in documents", term),
			fmt.Sprintf("search documents %s", term),
			fmt.Sprintf("look for %s", term),
		}
		args := map[string]any{"query": term}
		trace := fmt.Sprintf("Search docs: %s", term)
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "search_documents", args, tools, trace))
		}
	}
	for _, msg := range documentListQueries {
		out = append(out, corpus.New(msg, "get_documents", map[string]any{}, tools, "List documents."))
	}
	return out, nil
}
