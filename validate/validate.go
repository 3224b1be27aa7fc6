// Command validate checks difficulty preset files (YAML or JSON) in a
// directory. For every file it checks:
//   - the file parses and has no unknown fields
//   - the name is usable as a preset id and not reserved
//   - min < max, both within the supported bounds
//   - the attempt limit is positive or absent
//
// It also notes presets that override a built-in one, duplicate names across
// files, and limits too tight for a bisecting player. The exit status is 1
// when any file is invalid.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/perfect-guess/game/config"
	"github.com/wricardo/perfect-guess/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// Notes holds informational lines for valid files; Errors is only set for
// invalid ones.
type ValidationResult struct {
	File   string
	Name   string
	Valid  bool
	Notes  []string
	Errors []string
}

// validateConfig loads and validates a single preset file
func validateConfig(filePath string, builtin []string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(filePath),
		Valid: true,
	}

	preset, err := config.ParseDifficultyFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Name = preset.Name

	result.Notes = append(result.Notes,
		fmt.Sprintf("✓ %s: %d–%d, %s", preset.Name, preset.LowerBound, preset.UpperBound, preset.AttemptsLabel()))

	if slices.Contains(builtin, preset.Name) {
		result.Notes = append(result.Notes, fmt.Sprintf("overrides built-in preset %q", preset.Name))
	}
	if !engine.IsWinnableByBisection(preset) {
		result.Notes = append(result.Notes, fmt.Sprintf("limit %d is below the %d guesses bisection may need",
			preset.AttemptLimit, engine.MaxBisectAttempts(preset.LowerBound, preset.UpperBound)))
	}

	return result
}

// validateDir validates every preset file in dir, flagging names defined by
// more than one file
func validateDir(dir string) ([]ValidationResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	builtin, err := config.NewManager("", zerolog.Nop())
	if err != nil {
		return nil, err
	}

	var results []ValidationResult
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !config.IsPresetFile(entry.Name()) {
			continue
		}

		result := validateConfig(filepath.Join(dir, entry.Name()), builtin.Names())
		if result.Valid {
			if first, ok := seen[result.Name]; ok {
				result.Valid = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("preset %q is already defined in %s", result.Name, first))
			} else {
				seen[result.Name] = result.File
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// report prints the results and returns whether all files were valid
func report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, note := range result.Notes {
				fmt.Fprintln(w, "  "+note)
			}
			continue
		}

		fmt.Fprintln(w, "❌ INVALID")
		allValid = false
		for _, err := range result.Errors {
			fmt.Fprintln(w, "  ❌ "+err)
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	switch {
	case len(results) == 0:
		fmt.Fprintln(w, "No preset files found")
	case allValid:
		fmt.Fprintln(w, "✅ All presets are valid!")
	default:
		fmt.Fprintln(w, "❌ Some presets have errors")
	}
	return allValid
}

func main() {
	cmd := &cli.Command{
		Name:      "validate",
		Usage:     "validate difficulty preset files",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory with preset files",
				Value:   "configs",
				Sources: cli.EnvVars("GUESS_CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("config-dir")
			if cmd.Args().Present() {
				dir = cmd.Args().First()
			}

			results, err := validateDir(dir)
			if err != nil {
				return err
			}
			if !report(os.Stdout, results) {
				return cli.Exit("", 1)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
