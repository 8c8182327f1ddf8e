package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-avl/providers/journal"
	"github.com/cryptonstudio/crypton-avl/types/avl"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	app := newApp()
	app.Writer = buf
	app.ErrWriter = buf
	err := app.Run(append([]string{"avl"}, args...))
	return buf.String(), err
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, defaultConfig, *config)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "avl.yaml")
		require.NoError(t, os.WriteFile(path, []byte("check_invariants: true\ngenerate:\n  operations: 10\n"), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		require.True(t, config.CheckInvariants)
		require.Equal(t, 10, config.Generate.Operations)
		require.Equal(t, defaultConfig.Generate.KeySpace, config.Generate.KeySpace)
		require.Equal(t, "info", config.LogLevel)
	})

	t.Run("invalid", func(t *testing.T) {
		dir := t.TempDir()
		_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)

		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("generate:\n  remove_ratio: 0.8\n  find_ratio: 0.5\n"), 0o644))
		_, err = LoadConfig(path)
		require.Error(t, err)

		require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))
		_, err = LoadConfig(path)
		require.Error(t, err)
	})
}

func TestGenerateAndReplay(t *testing.T) {
	dir := t.TempDir()
	journalPath := filepath.Join(dir, "ops.journal")
	metricsPath := filepath.Join(dir, "metrics.prom")

	out, err := runApp(t, "generate", "--operations", "5000", "--key-space", "300", "--seed", "7", journalPath)
	require.NoError(t, err)
	require.Contains(t, out, "Generated 5000 operations")

	out, err = runApp(t, "--log-level", "warn", "--check-invariants", "--verify-contents", "--metrics-file", metricsPath, "replay", journalPath)
	require.NoError(t, err)
	require.Contains(t, out, "JOURNAL MESSAGES:")
	require.Contains(t, out, "AVL TREE HANDLER:")

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(metrics), "avl_inserts_total")
	require.Contains(t, string(metrics), `avl_rotations_total{direction="left"}`)

	// Same seed produces the same journal
	againPath := filepath.Join(dir, "again.journal")
	_, err = runApp(t, "generate", "--operations", "5000", "--key-space", "300", "--seed", "7", againPath)
	require.NoError(t, err)
	first, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	second, err := os.ReadFile(againPath)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestReplayer(t *testing.T) {
	config := defaultConfig
	config.CheckInvariants = true
	config.VerifyContents = true
	replayer := NewReplayer(&config, zap.NewNop().Sugar(), nil)

	data := journal.AppendInsertMessage(nil, uint128.From64(1), 10)
	data = journal.AppendInsertMessage(data, uint128.From64(2), 20)
	data = journal.AppendInsertMessage(data, uint128.From64(3), 30)
	data = journal.AppendFindMessage(data, uint128.From64(2))
	data = journal.AppendFindMessage(data, uint128.From64(4))
	data = journal.AppendDeleteMessage(data, uint128.From64(1))
	data = journal.AppendDeleteMessage(data, uint128.From64(1))
	data, err := journal.AppendRawMessage(data, []byte{'X'})
	require.NoError(t, err)

	processor := journal.NewProcessor(replayer)
	require.NoError(t, processor.Process(bytes.NewReader(data)))
	require.NoError(t, replayer.Verify())
	require.Equal(t, 2, replayer.tree.Size())
	require.Equal(t, 1, replayer.found)
	require.Equal(t, 1, replayer.missed)
	require.Equal(t, uint64(3), replayer.stats.Inserts())
	require.Equal(t, uint64(1), replayer.stats.Removes())
	require.Equal(t, uint64(1), replayer.stats.Rotations(avl.RotationLeft))

	buf := new(bytes.Buffer)
	replayer.PrintStatistics(buf, 0)
	require.Contains(t, buf.String(), "Unknown messages            1")

	require.NoError(t, replayer.OnClearMessage(journal.ClearMessage{Type: journal.MessageTypeClear}))
	require.NoError(t, replayer.Verify())
	require.Equal(t, 0, replayer.tree.Size())
}

func TestPrintCommand(t *testing.T) {
	out, err := runApp(t, "print", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "2 [+1]\n"), out)
	require.Contains(t, out, "size 5 height 3 balanced true")

	out, err = runApp(t, "print", "--unbalanced", "--remove", "3", "1", "2", "3")
	require.NoError(t, err)
	require.Contains(t, out, "size 2 height 2 balanced true")

	_, err = runApp(t, "print", "one")
	require.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := runApp(t, "bench", "--operations", "1000", "--key-space", "500", "--sorted-operations", "100")
	require.NoError(t, err)
	require.Contains(t, out, "avl random")
	require.Contains(t, out, "bst sorted   size       100 height    100")
	require.Contains(t, out, "avl sorted   size       100 height      7")
}
