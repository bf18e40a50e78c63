package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Conversational filler vocabularies for lexical variation. Deliberately
// small: the expander trades combinatorial completeness for speed.
var (
	varyPrefixes = []string{"", "hey ", "hi ", "luna ", "hey luna ", "yo ", "um ", "ok ", "please "}
	varySuffixes = []string{"", " please", " pls", " plz", " thanks", " thx", " ty"}
)

// maxVariants is the default cap on lexical variants per base utterance.
const maxVariants = 5

// vary returns up to max lexical variants of base: sampled prefixes and
// suffixes applied to a lower-cased copy. The base string itself is never
// returned and no variant repeats; first-generated wins under the
// fingerprint dedup, with no memory across calls.
func vary(rng *rand.Rand, base string, max int) []string {
	if max <= 0 {
		return nil
	}
	lower := strings.ToLower(base)
	seen := map[uint64]struct{}{fingerprint(base, nil): {}}
	out := make([]string, 0, max)
	for _, p := range sample(rng, varyPrefixes, 3) {
		for _, s := range sample(rng, varySuffixes, 2) {
			v := strings.TrimSpace(p + lower + s)
			fp := fingerprint(v, nil)
			if _, dup := seen[fp]; dup {
				continue
			}
			seen[fp] = struct{}{}
			out = append(out, v)
			if len(out) == max {
				return out
			}
		}
	}
	return out
}

// ErrBadTemplate marks an authoring defect in a phrase pattern. It is
// fatal: templates are configuration, not runtime input.
var ErrBadTemplate = errors.New("malformed template")

// fill substitutes the {name}-style slot in pattern with value. A pattern
// missing its slot aborts generation.
func fill(pattern, name, value string) (string, error) {
	token := "{" + name + "}"
	if !strings.Contains(pattern, token) {
		return "", fmt.Errorf("%w: pattern %q has no slot %s", ErrBadTemplate, pattern, token)
	}
	return strings.ReplaceAll(pattern, token, value), nil
}
