package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/docker/go-units"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ishworgurung/memfill/buffer"
	"github.com/ishworgurung/memfill/cfg"
	"github.com/ishworgurung/memfill/core"
	"github.com/ishworgurung/memfill/limits"
	"github.com/ishworgurung/memfill/term"
)

var cli struct {
	Debug   bool             `help:"Debug logging and a dump of the memory ceilings."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name(cfg.AppName),
		kong.Description(cfg.AppDescription),
		kong.Vars{"version": cfg.Version},
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	lg := log.Logger

	// Anything logged after the status anchor is saved would scroll it
	// away, so all startup logging happens here.
	snap := limits.Read()
	lg.Info().Object("limits", snap).Msg("memory ceilings")
	if cli.Debug {
		spew.Fdump(os.Stderr, snap)
	}
	if !term.IsTerminal(os.Stdout) {
		lg.Warn().Msg("stdout is not a terminal, control sequences will be written as is")
	}

	buf, err := core.Fill(term.NewWriter(os.Stdout), buffer.Default(), lg)

	// leave the last status line intact
	fmt.Fprintln(os.Stderr)
	lg.Fatal().
		Int("length", buf.Len()).
		Str("reached", units.BytesSize(float64(buf.Len()))).
		Msg(err.Error())
}
