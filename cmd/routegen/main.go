// Command routegen generates the Luna tool-routing training corpus: it
// expands the tool catalog and phrase templates into labeled JSONL
// records, validates the written file, and prints distribution stats.
// It runs the full pipeline unconditionally; configuration comes from
// routegen.yaml / ROUTEGEN_* env, not flags.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
	"github.com/Bitwarelabscom/luna-routegen/gen"
	"github.com/Bitwarelabscom/luna-routegen/internal/config"
)

const statsTopN = 20

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}
	log.Info().Int("tools", cat.Len()).Msg("catalog loaded")

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output directory")
		}
	}
	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create output file")
	}

	pipeline := &gen.Pipeline{
		Catalog:  cat,
		Seed:     cfg.Seed,
		TypoRate: cfg.TypoRate,
		Log:      log,
	}
	n, err := pipeline.Build(out)
	if err != nil {
		out.Close()
		log.Fatal().Err(err).Msg("build corpus")
	}
	if err := out.Close(); err != nil {
		log.Fatal().Err(err).Msg("close output file")
	}
	log.Info().Int("records", n).Str("path", cfg.OutputPath).Msg("corpus written")

	// Reopen read-only: validation never touches the write handle. On
	// failure the partial file is left on disk for inspection.
	in, err := os.Open(cfg.OutputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("reopen corpus")
	}
	defer in.Close()
	stats, err := corpus.Validate(in, cat)
	if err != nil {
		log.Fatal().Err(err).Msg("corpus validation failed")
	}

	fmt.Printf("\nTotal: %d\n", stats.Total)
	fmt.Printf("No tool (negative): %d (%.1f%%)\n", stats.Negative, stats.NegativePercent())
	fmt.Printf("Multi-tool: %d\n", stats.MultiTool)
	fmt.Println("\nTool distribution:")
	for _, tc := range stats.Top(statsTopN) {
		fmt.Printf("  %s: %d\n", tc.Name, tc.Count)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Load()
}
