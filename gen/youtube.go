package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var youtubeSearches = []string{
	"Python tutorials", "machine learning", "cooking recipes", "guitar lessons",
	"workout routines", "React tutorial", "funny cats", "space documentary",
	"music videos", "ted talks", "how to tie a tie", "gaming highlights",
	"photography tips", "meditation", "tech unboxing", "learn Spanish",
	"science experiments", "travel vlogs", "DIY projects", "coding tutorials",
}

var youtubePatterns = []string{
	"Search YouTube for {s}", "Find {s} videos", "youtube {s}",
	"look up {s} on youtube", "youtube search {s}",
}

func genYouTube(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "search_youtube")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, search := range youtubeSearches {
		args := map[string]any{"query": search}
		trace := fmt.Sprintf("YouTube search: %s", search)
		for _, pattern := range youtubePatterns {
			msg, err := fill(pattern, "s", search)
			if err != nil {
				return nil, err
			}
			out = append(out, corpus.New(msg, "search_youtube", args, tools, trace))
		}
	}
	return out, nil
}
