// Command perfect-guess runs the Perfect Guess number game in the terminal.
//
// Without a subcommand it starts an interactive game. Subcommands cover the
// best-score record (scores, reset), automatic play with the bisection solver
// (solve) and the difficulty catalogue (presets).
//
// Flags can also be set through the environment (GUESS_SCORE_FILE,
// GUESS_CONFIG_DIR, GUESS_LOG_LEVEL, GUESS_SEED, GUESS_DEFAULT_DIFFICULTY) or
// a .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/perfect-guess/game/config"
	"github.com/wricardo/perfect-guess/game/engine"
	"github.com/wricardo/perfect-guess/game/scores"
	"github.com/wricardo/perfect-guess/game/service"
	"github.com/wricardo/perfect-guess/game/solver"
	"github.com/wricardo/perfect-guess/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Perfect Guess"
)

// app carries what the commands share: environment defaults, I/O and the logger
type app struct {
	settings config.Settings
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	log      zerolog.Logger
}

// services are built per invocation from the resolved flags
type services struct {
	configs *config.Manager
	store   *scores.FileStore
	game    service.GameService
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		settings: settings,
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		log:      zerolog.Nop(),
	}
	if err := a.command().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// command builds the root command with flag defaults taken from the environment
func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "perfect-guess",
		Usage:     "guess the secret number in as few attempts as possible",
		Version:   Version,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for the secret number generator, for reproducible rounds",
			},
			&cli.StringFlag{
				Name:  "score-file",
				Usage: "path of the best-score file",
				Value: a.settings.ScoreFile,
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory with extra difficulty presets (YAML or JSON)",
				Value: a.settings.ConfigDir,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
				Value: a.settings.LogLevel,
			},
			&cli.StringFlag{
				Name:  "default-difficulty",
				Usage: "preset used when none is chosen (solve, presets marker)",
				Value: a.settings.DefaultDifficulty,
			},
			&cli.BoolFlag{
				Name:  "reset-scores",
				Usage: "delete the best-score file and exit",
			},
		},
		Before: a.before,
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play interactively (default)",
				Action: a.play,
			},
			{
				Name:   "scores",
				Usage:  "show the best scores",
				Action: a.showScores,
			},
			{
				Name:   "reset",
				Usage:  "delete all best scores",
				Action: a.resetScores,
			},
			{
				Name:  "solve",
				Usage: "let the bisection solver play a round",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "difficulty", Usage: "preset name (defaults to the default preset)"},
					&cli.IntFlag{Name: "min", Usage: "lower bound of a custom range"},
					&cli.IntFlag{Name: "max", Usage: "upper bound of a custom range"},
					&cli.IntFlag{Name: "attempts", Usage: "attempt limit of a custom range, 0 for unlimited"},
				},
				Action: a.solve,
			},
			{
				Name:   "presets",
				Usage:  "list difficulty presets",
				Action: a.listPresets,
				Commands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "save a preset file to the config directory",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "min", Usage: "lower bound", Required: true},
							&cli.IntFlag{Name: "max", Usage: "upper bound", Required: true},
							&cli.IntFlag{Name: "attempts", Usage: "attempt limit, 0 for unlimited"},
							&cli.StringFlag{Name: "title", Usage: "menu title"},
							&cli.StringFlag{Name: "description", Usage: "menu description"},
						},
						Action: a.addPreset,
					},
				},
			},
		},
	}
}

// before sets up logging on stderr
func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cmd.String("log-level")))
	if err != nil {
		return ctx, fmt.Errorf("invalid log level %q: %w", cmd.String("log-level"), err)
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("app", "perfect-guess").Logger()
	return ctx, nil
}

// numberSource prefers --seed, then GUESS_SEED, then a random seed
func (a *app) numberSource(cmd *cli.Command) (engine.NumberSource, error) {
	switch {
	case cmd.IsSet("seed"):
		return engine.NewSeededSource(cmd.Int64("seed")), nil
	case a.settings.Seed != nil:
		return engine.NewSeededSource(*a.settings.Seed), nil
	}
	source, err := engine.NewSource()
	if err != nil {
		return nil, fmt.Errorf("failed to create number source: %w", err)
	}
	return source, nil
}

func (a *app) services(cmd *cli.Command) (*services, error) {
	configs, err := config.NewManager(cmd.String("config-dir"), a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	if name := cmd.String("default-difficulty"); name != "" {
		if err := configs.SetDefault(name); err != nil {
			return nil, fmt.Errorf("failed to set default difficulty: %w", err)
		}
	}

	source, err := a.numberSource(cmd)
	if err != nil {
		return nil, err
	}

	store := scores.NewFileStore(cmd.String("score-file"), a.log)
	return &services{
		configs: configs,
		store:   store,
		game:    service.NewGameService(configs, store, source, a.log),
	}, nil
}

func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return fmt.Errorf("unknown command %q", cmd.Args().First())
	}

	// --reset-scores resets and exits without playing
	if cmd.Bool("reset-scores") {
		store := scores.NewFileStore(cmd.String("score-file"), a.log)
		if err := store.Reset(); err != nil {
			fmt.Fprintf(a.out, "Failed to reset best scores (permission or file error): %v\n", err)
			return nil
		}
		fmt.Fprintln(a.out, "Best scores reset.")
		return nil
	}

	svc, err := a.services(cmd)
	if err != nil {
		return err
	}

	console := terminal.NewConsole(svc.game, a.in, a.out, terminal.WithLogger(a.log))
	return console.Run(ctx)
}

func (a *app) showScores(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.services(cmd)
	if err != nil {
		return err
	}

	record, err := svc.game.BestScores(ctx)
	if err != nil {
		return err
	}
	if len(record) == 0 {
		fmt.Fprintln(a.out, "No best scores yet.")
		return nil
	}

	fmt.Fprintf(a.out, "Best scores (%s):\n", svc.store.Path())
	for _, key := range record.Keys() {
		title := key
		if difficulty, err := svc.configs.LoadConfig(key); err == nil {
			title = difficulty.DisplayTitle()
		}
		fmt.Fprintf(a.out, "  %-20s %d\n", title, record[key])
	}
	return nil
}

func (a *app) resetScores(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.services(cmd)
	if err != nil {
		return err
	}
	if err := svc.game.ResetScores(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Best scores reset.")
	return nil
}

// solve plays a round with the bisection solver. Solver rounds never touch
// the best-score record.
func (a *app) solve(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.services(cmd)
	if err != nil {
		return err
	}

	var difficulty *engine.DifficultyConfig
	if cmd.IsSet("min") || cmd.IsSet("max") {
		difficulty, err = svc.game.CustomDifficulty(ctx, cmd.Int("min"), cmd.Int("max"), cmd.Int("attempts"))
	} else {
		difficulty, err = svc.game.LoadDifficulty(ctx, cmd.String("difficulty"))
	}
	if err != nil {
		return err
	}

	round, err := svc.game.NewRound(ctx, difficulty)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Solving %s (%d–%d, %s), worst case %d guesses\n",
		difficulty.DisplayTitle(), difficulty.LowerBound, difficulty.UpperBound,
		difficulty.AttemptsLabel(), engine.MaxBisectAttempts(difficulty.LowerBound, difficulty.UpperBound))

	steps, err := solver.Solve(round.Engine)
	for i, step := range steps {
		fmt.Fprintf(a.out, "  %d. %d → %s\n", i+1, step.Guess, step.Feedback)
	}
	if err != nil {
		return fmt.Errorf("solver failed: %w", err)
	}

	secret, _ := round.Engine.Reveal()
	if round.Engine.IsVictory() {
		fmt.Fprintf(a.out, "Found %d in %d attempts.\n", secret, round.Engine.AttemptsUsed())
	} else {
		fmt.Fprintf(a.out, "Out of attempts. The number was %d.\n", secret)
	}
	return nil
}

func (a *app) listPresets(ctx context.Context, cmd *cli.Command) error {
	svc, err := a.services(cmd)
	if err != nil {
		return err
	}

	difficulties, err := svc.game.ListDifficulties(ctx)
	if err != nil {
		return err
	}
	defaultName := svc.configs.GetDefault().Name
	for _, d := range difficulties {
		marker := " "
		if d.Name == defaultName {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-10s %-10s %d–%d, %s",
			marker, d.Name, d.DisplayTitle(), d.LowerBound, d.UpperBound, d.AttemptsLabel())
		if d.Description != "" {
			fmt.Fprintf(a.out, " - %s", d.Description)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *app) addPreset(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one preset name, got %d arguments", cmd.Args().Len())
	}
	name := cmd.Args().First()

	svc, err := a.services(cmd)
	if err != nil {
		return err
	}

	preset := &engine.DifficultyConfig{
		Title:        cmd.String("title"),
		Description:  cmd.String("description"),
		LowerBound:   cmd.Int("min"),
		UpperBound:   cmd.Int("max"),
		AttemptLimit: cmd.Int("attempts"),
	}
	if err := svc.configs.SaveConfig(name, preset); err != nil {
		return fmt.Errorf("failed to save preset %s: %w", name, err)
	}
	fmt.Fprintf(a.out, "Saved preset %s to %s\n", strings.ToLower(name), cmd.String("config-dir"))
	return nil
}
