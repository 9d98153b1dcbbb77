package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigPiece     = "piece"
	ConfigSide      = "side"
	ConfigFEN       = "fen"
	ConfigMaskEdges = "mask-edges"
	ConfigDebug     = "debug"
)

// Config holds the driver settings. Flags win over MOVEGEN_* environment
// variables, which win over defaults.
type Config struct {
	*viper.Viper
}

func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("movegen", pflag.ContinueOnError)
	fs.String(ConfigPiece, "pawn", "piece kind to generate moves for (pawn, rook, knight, bishop, queen, king)")
	fs.String(ConfigSide, "white", "side owning the piece (white or black)")
	fs.String(ConfigFEN, "", "start from this FEN instead of the standard position; FEN a1 is square 0, labelled A8, so rank labels print flipped (FEN e4 shows as E5)")
	fs.Bool(ConfigMaskEdges, false, "drop moves that leave the board or wrap around a file")
	fs.Bool(ConfigDebug, false, "debug logging on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.SetEnvPrefix("movegen")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return c.BindPFlags(fs)
}

func (c *Config) Piece() string   { return c.GetString(ConfigPiece) }
func (c *Config) Side() string    { return c.GetString(ConfigSide) }
func (c *Config) FEN() string     { return c.GetString(ConfigFEN) }
func (c *Config) MaskEdges() bool { return c.GetBool(ConfigMaskEdges) }
func (c *Config) Debug() bool     { return c.GetBool(ConfigDebug) }
