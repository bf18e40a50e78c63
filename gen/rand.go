// Package gen produces the labeled routing corpus: per-domain category
// generators, the template expander, the multi-tool composer, the
// negative sampler, the typo augmenter, and the pipeline that assembles
// and writes the result. Every sampling decision flows through one
// explicit *rand.Rand seeded at pipeline start, so a fixed seed yields a
// byte-identical corpus.
package gen

import (
	"encoding/json"
	"hash/fnv"
	"io"
	"math/rand/v2"
	"slices"
)

// sample returns up to k distinct elements of items in random order,
// without replacement.
func sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	out := make([]T, 0, k)
	for _, i := range rng.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

// pick returns one uniformly chosen element.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// chance reports true with probability p.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// fingerprint computes a canonical content key for an utterance plus an
// optional argument map: the utterance and the arguments in sorted key
// order, hashed. Used as a cheap set key for bounded novelty detection
// inside a single expansion or generation step.
func fingerprint(utterance string, args map[string]any) uint64 {
	h := fnv.New64a()
	io.WriteString(h, utterance)
	h.Write([]byte{0})
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		io.WriteString(h, k)
		h.Write([]byte{0})
		b, err := json.Marshal(args[k])
		if err == nil {
			h.Write(b)
		}
		h.Write([]byte{0})
	}
	return h.Sum64()
}
