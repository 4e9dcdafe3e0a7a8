package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movegen/internal/config"
	"movegen/internal/metadata"
	"movegen/internal/scan"
)

const testCSV = `id,identifier,generation_id,damage_class_id
1,pound,1,2
100,teleport,1,
355,roost,4,1
`

const testSource = `#include "constants/moves.h"

const struct BattleMove gBattleMoves[MOVES_COUNT] =
{
    [MOVE_POUND] =
    {
        .effect = EFFECT_HIT,
        .power = 40,
    },
    [MOVE_TELEPORT] =
    {
        .effect = EFFECT_TELEPORT,
        .power = 0,
    },
    [MOVE_ROOST] =
    {
        .effect = EFFECT_RESTORE_HP,
        .power = 0,
    },
    [MOVE_SKETCH] =
    {
        .effect = EFFECT_SKETCH,
        .power = 0,
    },
};
`

func testConfig(t *testing.T) config.Config {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Config{
		MetadataPath:  filepath.Join(dir, "moves.csv"),
		SourcePath:    filepath.Join(dir, "battle_moves.h"),
		OutputPath:    filepath.Join(dir, "out", "battle_moves.h"),
		MaxGeneration: 3,
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755))
	require.NoError(t, os.WriteFile(cfg.MetadataPath, []byte(testCSV), 0o644))
	require.NoError(t, os.WriteFile(cfg.SourcePath, []byte(testSource), 0o644))

	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	summary, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Included)
	assert.Equal(t, 2, summary.Skipped)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	expected := `#include "constants/moves.h"

const struct BattleMove gBattleMoves[MOVES_COUNT] =
{
    [MOVE_POUND] =
    {
        .effect = EFFECT_HIT,
        .power = 40,
        .category = 2,
    },
    [MOVE_TELEPORT] =
    {
        .effect = EFFECT_TELEPORT,
        .power = 0,
        .category = 1,
    },
    /* Skipped MOVE_ROOST (not in metadata, gen<=3) */
    /* Skipped MOVE_SKETCH (not in metadata, gen<=3) */
};
`
	assert.Equal(t, expected, string(data))
}

func TestRunIdempotent(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	first, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	_, err = Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	second, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-running unchanged inputs must be byte-identical")
}

func TestRunOrderPreserved(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)

	out := string(data)
	markers := []string{"MOVE_POUND", "MOVE_TELEPORT", "MOVE_ROOST", "MOVE_SKETCH"}

	last := -1
	for _, name := range markers {
		pos := strings.Index(out, name)
		require.GreaterOrEqual(t, pos, 0, name)
		assert.Greater(t, pos, last, "%s out of order", name)
		last = pos
	}
}

func TestRunMissingMetadata(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(cfg.MetadataPath))

	_, err := Run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrMissingInput)

	// No output is written on fatal errors
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunMissingSource(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(cfg.SourcePath))

	_, err := Run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, metadata.ErrMissingInput)
}

func TestRunStructuralError(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.SourcePath, []byte("not a move table\n"), 0o644))

	_, err := Run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, scan.ErrNoTableDecl)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheckWritesNothing(t *testing.T) {
	cfg := testConfig(t)

	summary, err := Check(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Included)
	assert.Equal(t, 2, summary.Skipped)

	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunGenerationThreshold(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxGeneration = 4

	summary, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	// roost (gen 4) is now within the threshold
	assert.Equal(t, 3, summary.Included)
	assert.Equal(t, 1, summary.Skipped)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/* Skipped MOVE_ROOST")

	// Skip markers name the threshold actually in effect
	assert.Contains(t, string(data),
		"    /* Skipped MOVE_SKETCH (not in metadata, gen<=4) */\n")
}
