/*
Healthcalc is a command-line utility that computes basic body health metrics.

USAGE

	healthcalc [command]

COMMAND

	calc    - Prompts for measurements and prints health metrics.
	profile - Prints health metrics for the profile in the config file.
	batch   - Prints health metrics for every row of a CSV file.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ericstrs/healthcalc"
	"github.com/ericstrs/healthcalc/internal/ui"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(Run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// Run executes the command in args and returns the process exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := run(args, stdin, stdout, stderr); err != nil {
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()

	if err := healthcalc.LoadEnv(); err != nil {
		logger.Error().Err(err).Send()
		return err
	}

	path := healthcalc.ConfigPath()
	c, err := healthcalc.LoadConfig(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error().Err(err).Str("path", path).Msg("reading config")
		return err
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Warn().Str("log_level", c.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)
	logger.Debug().Str("config", path).Msg("config loaded")

	ctx := logger.WithContext(context.Background())
	err = ui.Run(ctx, args, c, ui.IO{In: stdin, Out: stdout})

	var ue *ui.UsageError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ue):
		fmt.Fprintln(stderr, ue.Msg)
		fmt.Fprint(stderr, ue.Usage)
	case errors.Is(err, ui.ErrReported):
		// Already shown to the user.
	default:
		logger.Error().Err(err).Send()
	}
	return err
}
