// Command analyze prints quick, human-readable heuristics about difficulty
// presets: the built-in ones plus any preset files in the config directory.
// For each preset it reports the range size, the worst-case number of guesses
// a bisecting player needs and whether the attempt limit allows that.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/perfect-guess/game/config"
	"github.com/wricardo/perfect-guess/game/engine"
)

// Analysis summarizes one preset
type Analysis struct {
	Name      string
	Title     string
	RangeSize int
	WorstCase int
	Limit     int
	Winnable  bool
	// Spare is the number of attempts left over after a worst-case bisection.
	// Negative when the limit is too tight.
	Spare int
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "analyze difficulty presets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory with preset files",
				Value:   "configs",
				Sources: cli.EnvVars("GUESS_CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(os.Stdout, cmd.String("config-dir"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, configDir string) error {
	manager, err := config.NewManager(configDir, zerolog.New(os.Stderr).Level(zerolog.WarnLevel))
	if err != nil {
		return err
	}

	for _, preset := range manager.ListConfigs() {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", preset.Name)
		report(w, analyze(preset))
	}
	return nil
}

func analyze(preset *engine.DifficultyConfig) Analysis {
	a := Analysis{
		Name:      preset.Name,
		Title:     preset.DisplayTitle(),
		RangeSize: preset.Span(),
		WorstCase: engine.MaxBisectAttempts(preset.LowerBound, preset.UpperBound),
		Limit:     preset.AttemptLimit,
		Winnable:  engine.IsWinnableByBisection(preset),
	}
	if preset.HasLimit() {
		a.Spare = a.Limit - a.WorstCase
	}
	return a
}

func report(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "Title: %s\n", a.Title)
	fmt.Fprintf(w, "Range Size: %d\n", a.RangeSize)
	fmt.Fprintf(w, "Worst-case Bisection: %d guesses\n", a.WorstCase)

	if a.Limit == engine.Unlimited {
		fmt.Fprintf(w, "Attempt Limit: unlimited\n")
		fmt.Fprintf(w, "✅ Always winnable\n")
		return
	}

	fmt.Fprintf(w, "Attempt Limit: %d\n", a.Limit)
	if a.Winnable {
		fmt.Fprintf(w, "✅ Winnable by bisection with %d spare attempts\n", a.Spare)
	} else {
		fmt.Fprintf(w, "⚠️  WARNING: bisection needs up to %d guesses, %d more than the limit\n", a.WorstCase, -a.Spare)
		fmt.Fprintf(w, "   Some secrets can only be found with luck\n")
	}
}
