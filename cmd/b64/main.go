package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/epithet-ssh/b64/pkg/b64"
	"github.com/epithet-ssh/b64/pkg/config"
)

type CLI struct {
	Config       settingsFlag `help:"Settings file (YAML, JSON or CUE)" short:"c" placeholder:"FILE"`
	MaxInputSize int          `help:"Maximum input size in bytes, 0 disables the limit" env:"B64_MAX_INPUT_SIZE" default:"10485760"`
	Verbose      int          `help:"Log verbosity (-v info, -vv debug)" short:"v" type:"counter"`

	Encode    EncodeCLI    `cmd:"" help:"Encode text as base64"`
	Decode    DecodeCLI    `cmd:"" help:"Decode base64 to text"`
	Normalize NormalizeCLI `cmd:"" help:"Validate base64 and strip whitespace"`
	Check     CheckCLI     `cmd:"" help:"Classify input as base64, plain-text or invalid"`
	Serve     ServeCLI     `cmd:"" help:"Serve the codec over HTTP"`
}

// settingsFlag loads a settings file and lets it supply flag values.
type settingsFlag string

func (s settingsFlag) BeforeResolve(ctx *kong.Context, trace *kong.Path) error {
	path := kong.ExpandPath(string(ctx.FlagValue(trace.Flag).(settingsFlag)))
	val, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	ctx.AddResolver(config.Resolver(val))
	return nil
}

// Streams carries the process's standard streams so commands can be tested.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	streams := &Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := run(os.Args[1:], streams, func(code int) { os.Exit(code) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, streams *Streams, exit func(int)) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("b64"),
		kong.Description("Encode, decode, validate and classify base64 text"),
		kong.UsageOnError(),
		kong.Writers(streams.Out, streams.Err),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(streams.Err, cli.Verbose)

	sec := b64.NewSecurity()
	if err := sec.Configure(b64.SecurityOptions{MaxInputSize: cli.MaxInputSize}); err != nil {
		return err
	}
	logger.Debug("security configured", "max_input_size", sec.MaxInputSize())

	codec := b64.New(b64.WithSecurity(sec), b64.WithLogger(logger))
	return ctx.Run(logger, codec, streams)
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
