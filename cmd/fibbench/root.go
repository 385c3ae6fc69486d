package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var errLogFormat = errors.New("fibbench: unknown log format")

// app is the state shared by all subcommands.
type app struct {
	out       io.Writer
	log       zerolog.Logger
	logLevel  string
	logFormat string
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "fibbench",
		Short:         "Exercise and benchmark the Fibonacci heap",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	bindLogFlags(root.PersistentFlags(), a)

	root.AddCommand(
		newDemoCommand(a),
		newRunCommand(a),
		newGraphCommand(a),
	)

	return root
}

func bindLogFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVar(&a.logLevel, "log-level", "info", "log level: trace, debug, info, warn or error")
	fs.StringVar(&a.logFormat, "log-format", "console", "log format: console or json")
}

func (a *app) setupLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}

	switch a.logFormat {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case "json":
	default:
		return fmt.Errorf("%w: %q", errLogFormat, a.logFormat)
	}

	a.log = zerolog.New(w).Level(level).With().Timestamp().Str("bench", "fibheap").Logger()

	return nil
}
