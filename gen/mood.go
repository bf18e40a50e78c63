package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var moodTexts = []string{
	"I'm feeling stressed about work",
	"This is the best day ever!",
	"I'm so frustrated",
	"feeling great today",
	"worried about tomorrow",
	"excited about the project",
	"tired but happy",
}

var moodHistoryQueries = []string{"Mood history", "How have I been feeling?", "mood trends", "my moods"}

func genMood(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "analyze_mood", "get_mood_history")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, text := range moodTexts {
		phrasings := []string{
			fmt.Sprintf("Analyze: %s", text),
			fmt.Sprintf("How does this sound: %s", text),
			fmt.Sprintf("Sentiment of: %s", text),
			fmt.Sprintf("mood of: %s", text),
		}
		args := map[string]any{"message": text}
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "analyze_mood", args, tools, "Analyze mood."))
		}
	}
	for _, msg := range moodHistoryQueries {
		out = append(out, corpus.New(msg, "get_mood_history", map[string]any{}, tools, "Mood history."))
	}
	return out, nil
}
