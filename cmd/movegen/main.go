package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chess-movegen/bitmg"
	"chess-movegen/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg.Debug())
	log.Debug().Interface("config", cfg.AllSettings()).Msg("loaded-config")

	if err := run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("movegen-failed")
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("run", uuid.NewString()).Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

// run builds the board, generates the requested moves and prints one move
// per line in generation order.
func run(cfg *config.Config, out io.Writer) error {
	board, err := loadBoard(cfg.FEN())
	if err != nil {
		return err
	}
	piece, err := bitmg.ParsePiece(cfg.Piece(), cfg.Side())
	if err != nil {
		return err
	}

	var opts []bitmg.Option
	if cfg.MaskEdges() {
		opts = append(opts, bitmg.WithEdgeMasking())
	}
	moves, err := bitmg.NewGenerator(opts...).Generate(board, piece)
	if err != nil {
		return err
	}
	log.Debug().Str("piece", piece.String()).Int("moves", len(moves)).Msg("generated")

	for _, m := range moves {
		if _, err := fmt.Fprintln(out, m); err != nil {
			return err
		}
	}
	return nil
}

func loadBoard(fen string) (bitmg.ChessBoard, error) {
	if fen == "" {
		return bitmg.InitStandard()
	}
	return bitmg.FromFEN(fen)
}
