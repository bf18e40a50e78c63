package gen

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// Pipeline generates, augments, shuffles, and serializes the full corpus.
type Pipeline struct {
	Catalog  *catalog.Catalog
	Seed     uint64
	TypoRate float64
	Log      zerolog.Logger
}

// Build runs every generator in order, applies typo augmentation, applies
// one deterministic shuffle, and writes the records to w. The random
// source is created here from Seed and threaded through every stage, so
// the same seed and catalog yield a byte-identical corpus. No
// deduplication happens across generators.
func (p *Pipeline) Build(w io.Writer) (int, error) {
	rng := rand.New(rand.NewPCG(p.Seed, 0))

	var all []corpus.Example
	for _, g := range Generators() {
		examples, err := g.Run(rng, p.Catalog)
		if err != nil {
			return 0, fmt.Errorf("generator %s: %w", g.Name, err)
		}
		p.Log.Info().Str("generator", g.Name).Int("examples", len(examples)).Msg("generated")
		all = append(all, examples...)
	}
	base := len(all)

	all = Augment(rng, all, p.TypoRate)
	p.Log.Info().Int("base", base).Int("augmented", len(all)-base).Msg("typo augmentation")

	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	cw := corpus.NewWriter(w)
	for _, ex := range all {
		if err := cw.Write(ex); err != nil {
			return cw.Count(), fmt.Errorf("write record: %w", err)
		}
	}
	if err := cw.Flush(); err != nil {
		return cw.Count(), fmt.Errorf("flush corpus: %w", err)
	}
	return cw.Count(), nil
}
