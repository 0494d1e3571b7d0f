package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, Default().Validate())
		require.Equal(t, zerolog.InfoLevel, Default().Level())
	})

	t.Run("overriding defaults", func(t *testing.T) {
		path := writeConfig(t, `
games: 10
seed: 42
random_first_mover: false
delay: 300ms
log_level: debug
minimax:
  depth: 3
  adversarial: true
mcts:
  episodes: 0
  duration: 50ms
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 10, config.Games)
		require.Equal(t, uint64(42), config.Seed)
		require.False(t, config.RandomFirstMover)
		require.Equal(t, 300*time.Millisecond, config.Delay)
		require.Equal(t, zerolog.DebugLevel, config.Level())
		require.Equal(t, MinimaxConfig{Depth: 3, Goroutines: GO_ROUTINES, Adversarial: true}, config.Minimax)
		require.Equal(t, MCTSConfig{Duration: 50 * time.Millisecond, Goroutines: GO_ROUTINES}, config.MCTS)
		require.Equal(t, MAX_DEPTH, config.MaxDepth, "Missing fields should keep their defaults")
		require.Equal(t, OUTPUT_DIR, config.OutputDir)
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		path := writeConfig(t, "games: 0\nminimax:\n  depth: 0\nmcts:\n  episodes: 0\nlog_level: loud\n")

		_, err := Load(path)

		require.ErrorContains(t, err, "games must be positive")
		require.ErrorContains(t, err, "minimax.depth must be positive")
		require.ErrorContains(t, err, "mcts needs positive episodes or duration")
		require.ErrorContains(t, err, "loud")
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "games: [1, 2")

		_, err := Load(path)

		require.ErrorContains(t, err, "parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
