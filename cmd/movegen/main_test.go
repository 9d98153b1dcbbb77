package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chess-movegen/bitmg"
	"chess-movegen/config"
)

func loadConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Load(args))
	return cfg
}

func TestRunWhitePawns(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(loadConfig(t), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, "Normal Move from A7 => A6", lines[0])
	assert.Equal(t, "Capture Move from A7 => B6", lines[1])
	assert.Equal(t, "Capture Move from A7 => H7", lines[2])
}

func TestRunMaskedFromFEN(t *testing.T) {
	var out bytes.Buffer
	cfg := loadConfig(t, "--fen", "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", "--mask-edges")
	require.NoError(t, run(cfg, &out))
	// a2 is square 8: one push and one capture survive masking.
	assert.Equal(t, "Normal Move from A7 => A6\nCapture Move from A7 => B6\n", out.String())
}

func TestRunFENRanksReadFlipped(t *testing.T) {
	var out bytes.Buffer
	// White pawn on FEN e4: square 28, labelled E5 here.
	cfg := loadConfig(t, "--fen", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "Normal Move from E5 => E4\nCapture Move from E5 => F4\nCapture Move from E5 => D4\n", out.String())
}

func TestRunUnsupportedPiece(t *testing.T) {
	var out bytes.Buffer
	err := run(loadConfig(t, "--piece", "knight"), &out)
	assert.ErrorIs(t, err, bitmg.ErrUnsupportedPiece)
	assert.Empty(t, out.String())
}

func TestRunBadInput(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(loadConfig(t, "--side", "green"), &out), bitmg.ErrUnknownPiece)
	assert.ErrorIs(t, run(loadConfig(t, "--fen", "garbage"), &out), bitmg.ErrBadFEN)
	assert.Empty(t, out.String())
}
