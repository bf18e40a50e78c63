package gen

import (
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// Generator is one independent producer of labeled examples.
type Generator struct {
	Name string
	Run  func(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error)
}

// Generators returns every category producer in pipeline order. Order
// matters for reproducibility: all generators draw from the same source.
func Generators() []Generator {
	return []Generator{
		{Name: "research", Run: genResearch},
		{Name: "knowledge", Run: genKnowledge},
		{Name: "tasks", Run: genTasks},
		{Name: "calendar", Run: genCalendar},
		{Name: "email", Run: genEmail},
		{Name: "music", Run: genMusic},
		{Name: "code", Run: genCode},
		{Name: "reminders", Run: genReminders},
		{Name: "files", Run: genFiles},
		{Name: "images", Run: genImages},
		{Name: "youtube", Run: genYouTube},
		{Name: "system", Run: genSystem},
		{Name: "browser", Run: genBrowser},
		{Name: "documents", Run: genDocuments},
		{Name: "mood", Run: genMood},
		{Name: "background", Run: genBackground},
		{Name: "projects", Run: genProjects},
		{Name: "negative", Run: genNegative},
		{Name: "multi-tool", Run: genMultiTool},
	}
}

// toolset resolves the named specs from the catalog, preserving order.
// A name the catalog does not know is an authoring defect and aborts.
func toolset(cat *catalog.Catalog, names ...string) ([]catalog.ToolSpec, error) {
	specs := make([]catalog.ToolSpec, 0, len(names))
	for _, name := range names {
		spec, err := cat.Get(name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// withVariants appends ex plus up to limit lexical variants of its
// utterance carrying the identical label.
func withVariants(rng *rand.Rand, out []corpus.Example, ex corpus.Example, limit int) []corpus.Example {
	out = append(out, ex)
	for _, v := range vary(rng, ex.User(), limit) {
		out = append(out, ex.WithUser(v))
	}
	return out
}
