package gen

import (
	"math/rand/v2"
	"strings"

	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// typoLexicon maps common words to plausible misspellings.
var typoLexicon = map[string][]string{
	"what":   {"wat", "waht"},
	"the":    {"teh", "hte"},
	"check":  {"chekc"},
	"show":   {"shwo"},
	"search": {"serach"},
	"play":   {"paly"},
	"create": {"crate"},
}

// wordTypoProb is the per-eligible-word substitution probability.
const wordTypoProb = 0.5

// DefaultTypoRate is the per-example probability of deriving one typo copy.
const DefaultTypoRate = 0.15

// Augment appends, after the originals, a perturbed copy of roughly rate
// of the examples. Only the user utterance changes; tools, calls, and the
// reasoning trace are shared unchanged. A perturbation that leaves the
// string identical produces no copy.
func Augment(rng *rand.Rand, examples []corpus.Example, rate float64) []corpus.Example {
	var extra []corpus.Example
	for _, ex := range examples {
		if !chance(rng, rate) {
			continue
		}
		msg := ex.User()
		perturbed := corrupt(rng, msg)
		if perturbed == msg {
			continue
		}
		extra = append(extra, ex.WithUser(perturbed))
	}
	return append(examples, extra...)
}

// corrupt independently replaces each eligible word of msg with a typo.
func corrupt(rng *rand.Rand, msg string) string {
	words := strings.Fields(msg)
	for i, w := range words {
		typos, ok := typoLexicon[strings.ToLower(w)]
		if !ok || !chance(rng, wordTypoProb) {
			continue
		}
		words[i] = pick(rng, typos)
	}
	return strings.Join(words, " ")
}
