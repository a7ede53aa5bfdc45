package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ericstrs/healthcalc"
	"github.com/rs/zerolog"
)

const (
	Usage = `USAGE

	healthcalc [command]

COMMANDS

	calc    - Prompts for measurements and prints health metrics.
	profile - Prints health metrics for the profile in the config file.
	batch   - Prints health metrics for every row of a CSV file.

DESCRIPTION

	Healthcalc computes Body Mass Index, Basal Metabolic Rate
	(Katch-McArdle) and Ideal Body Weight (Lorentz).

	Running healthcalc without a command is the same as "healthcalc calc".
	Appending "help" after any command will print more command information.
`
	calcUsage = `USAGE

	healthcalc calc - Prompt for height (cm), weight (kg), body fat (%) and
	                  sex (m/f), then print BMI, BMR and IBW.
`
	profileUsage = `USAGE

	healthcalc profile - Print BMI, BMR and IBW for the profile section of
	                     the config file ($HEALTHCALC_CONFIG or ./config.yaml).
`
	batchUsage = `USAGE

	healthcalc batch [file.csv] - Print BMI, BMR and IBW for every row.

	The CSV header must contain height_cm, weight_kg, body_fat_pct and sex.
`
)

// UsageError is returned when command arguments are wrong. Main prints it
// and exits with status 1.
type UsageError struct {
	Msg   string
	Usage string
}

func (e *UsageError) Error() string { return e.Msg }

// ErrReported marks a failure that has already been printed to the user.
var ErrReported = errors.New("error reported")

// IO bundles the streams a command talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// Run dispatches args (including the program name) to a command.
func Run(ctx context.Context, args []string, c *healthcalc.Config, s IO) error {
	if len(args) < 2 {
		return CalcCmd(ctx, args, s)
	}

	switch strings.ToLower(args[1]) {
	case `calc`:
		return CalcCmd(ctx, args, s)
	case `profile`:
		return ProfileCmd(ctx, args, c, s)
	case `batch`:
		return BatchCmd(ctx, args, s)
	case `help`:
		fmt.Fprint(s.Out, Usage)
		return nil
	default:
		return &UsageError{Msg: `ERROR: Incorrect argument.`, Usage: Usage}
	}
}

// wantsHelp reports whether the argument after the command is "help".
func wantsHelp(args []string) bool {
	return len(args) > 2 && strings.ToLower(args[2]) == `help`
}

// CalcCmd prompts for measurements and prints their assessment. Invalid
// data is reported to the user and ends the command.
func CalcCmd(ctx context.Context, args []string, s IO) error {
	if wantsHelp(args) {
		fmt.Fprint(s.Out, calcUsage)
		return nil
	}
	l := zerolog.Ctx(ctx)

	fmt.Fprintln(s.Out, "=== HEALTH CALCULATOR ===")
	m, err := NewPrompter(s.In, s.Out).Measurements()
	if err != nil {
		l.Debug().Err(err).Msg("reading measurements")
		PrintError(s.Out, err)
		return ErrReported
	}

	return assess(ctx, *m, s.Out)
}

// ProfileCmd prints the assessment of the measurements stored in the
// profile section of c.
func ProfileCmd(ctx context.Context, args []string, c *healthcalc.Config, s IO) error {
	if wantsHelp(args) {
		fmt.Fprint(s.Out, profileUsage)
		return nil
	}
	if c == nil || c.Profile == nil {
		return fmt.Errorf("no profile in %s", healthcalc.ConfigPath())
	}

	return assess(ctx, *c.Profile, s.Out)
}

func assess(ctx context.Context, m healthcalc.Measurements, w io.Writer) error {
	l := zerolog.Ctx(ctx)

	a, err := healthcalc.Assess(m)
	if err != nil {
		l.Debug().Err(err).Interface("measurements", m).Msg("assessment failed")
		PrintError(w, err)
		return ErrReported
	}
	l.Debug().
		Float64("bmi", a.BMI).
		Float64("bmr", a.BMR).
		Float64("ibw", a.IBW).
		Msg("assessment done")

	PrintAssessment(w, a)
	return nil
}

// BatchCmd evaluates every row of a CSV file and prints the results as a
// table. Rows with invalid data are listed with their error.
func BatchCmd(ctx context.Context, args []string, s IO) error {
	if len(args) < 3 {
		return &UsageError{Msg: `ERROR: Not enough arguments`, Usage: batchUsage}
	}
	if wantsHelp(args) {
		fmt.Fprint(s.Out, batchUsage)
		return nil
	}
	l := zerolog.Ctx(ctx)

	f, err := os.Open(args[2])
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("measurements file %s not found", args[2])
		}
		return err
	}
	defer f.Close()

	df, err := healthcalc.ReadMeasurements(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[2], err)
	}
	l.Debug().Int("rows", df.NRows()).Str("file", args[2]).Msg("measurements loaded")

	out, err := healthcalc.Evaluate(ctx, df)
	if err != nil {
		return err
	}

	fmt.Fprint(s.Out, out.Table())
	return nil
}
