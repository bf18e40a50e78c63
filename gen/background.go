package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var backgroundRows = []struct {
	subject, prompt, style string
}{
	{"mountains", "Mountain landscape", "nature"},
	{"abstract", "Abstract flowing shapes", "abstract"},
	{"space", "Deep space nebulas", "artistic"},
	{"forest", "Mystical forest", "nature"},
	{"minimalist", "Clean minimalist design", "abstract"},
	{"ocean", "Calm ocean waves", "nature"},
	{"city skyline", "City at night", "artistic"},
	{"geometric", "Geometric patterns", "abstract"},
	{"sunset", "Beautiful sunset", "nature"},
	{"aurora", "Northern lights", "nature"},
}

var backgroundListQueries = []string{"Show backgrounds", "My wallpapers", "background list"}

func genBackground(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "generate_background", "get_backgrounds")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, row := range backgroundRows {
		phrasings := []string{
			fmt.Sprintf("Generate background with %s", row.subject),
			fmt.Sprintf("Create %s wallpaper", row.subject),
			fmt.Sprintf("make %s background", row.subject),
			fmt.Sprintf("generate %s", row.subject),
		}
		args := map[string]any{"prompt": row.prompt, "style": row.style}
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "generate_background", args, tools, "Generate background."))
		}
	}
	for _, msg := range backgroundListQueries {
		out = append(out, corpus.New(msg, "get_backgrounds", map[string]any{}, tools, "List backgrounds."))
	}
	return out, nil
}
