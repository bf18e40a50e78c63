package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data/luna_routing_train.jsonl", cfg.OutputPath)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.InDelta(t, 0.15, cfg.TypoRate, 0.001)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := "output_path: out/corpus.jsonl\nseed: 7\ntypo_rate: 0.3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routegen.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "out/corpus.jsonl", cfg.OutputPath)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.InDelta(t, 0.3, cfg.TypoRate, 0.001)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routegen.yaml"), []byte("typo_rate: 2.5\n"), 0o644))
	_, err := Load()
	require.Error(t, err)
}
