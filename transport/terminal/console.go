package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wricardo/perfect-guess/game/engine"
	"github.com/wricardo/perfect-guess/game/service"
)

const Banner = "..:: THE PERFECT GUESS ::.."

var errInvalidChoice = errors.New("invalid choice")

// Console runs interactive games over a reader and a writer
type Console struct {
	svc    service.GameService
	in     io.Reader
	out    io.Writer
	styles Styles
	log    zerolog.Logger

	lines chan string
}

// Option configures a Console
type Option func(*Console)

// WithLogger sets the console logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Console) {
		c.log = logger
	}
}

// NewConsole creates a console reading from in and writing to out
func NewConsole(svc service.GameService, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		svc:    svc,
		in:     in,
		out:    out,
		styles: NewStyles(out),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays rounds until the player declines another one, the input ends or
// ctx is cancelled. Ending the input is not an error. Run must be called once.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.startReader(ctx)

	c.println(c.styles.Title.Render(Banner))
	for {
		difficulty, err := c.chooseDifficulty(ctx)
		if errors.Is(err, errInvalidChoice) {
			continue
		}
		if err != nil {
			return c.stop(err)
		}

		if err := c.playRound(ctx, difficulty); err != nil {
			return c.stop(err)
		}

		again, err := c.askYesNo(ctx, "Play again? (y/n): ")
		if err != nil {
			return c.stop(err)
		}
		if !again {
			c.goodbye(ctx)
			return nil
		}
	}
}

func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		c.log.Debug().Err(err).Msg("console stopped")
		c.println("")
		c.println(c.styles.Muted.Render("Interrupted. Goodbye."))
		return nil
	}
	return err
}

func (c *Console) chooseDifficulty(ctx context.Context) (*engine.DifficultyConfig, error) {
	difficulties, err := c.svc.ListDifficulties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list difficulties: %w", err)
	}

	c.println("")
	c.println("Choose Difficulty:")
	for i, d := range difficulties {
		c.printf("%d. %s (%d–%d, %s)\n", i+1, d.DisplayTitle(), d.LowerBound, d.UpperBound, d.AttemptsLabel())
	}
	customChoice := len(difficulties) + 1
	c.printf("%d. Custom range\n", customChoice)

	line, err := c.readLine(ctx, fmt.Sprintf("Enter your choice (1-%d): ", customChoice))
	if err != nil {
		return nil, err
	}

	choice, convErr := strconv.Atoi(line)
	switch {
	case convErr != nil || choice < 1 || choice > customChoice:
		c.println(c.styles.Error.Render("Invalid choice. Try again."))
		return nil, errInvalidChoice
	case choice == customChoice:
		return c.customDifficulty(ctx)
	default:
		return difficulties[choice-1], nil
	}
}

func (c *Console) customDifficulty(ctx context.Context) (*engine.DifficultyConfig, error) {
	lower, err := c.readInt(ctx, "Enter minimum number: ")
	if err != nil {
		return nil, err
	}
	upper, err := c.readInt(ctx, "Enter maximum number: ")
	if err != nil {
		return nil, err
	}
	limit, err := c.readOptionalInt(ctx, "Attempt limit (leave blank for unlimited): ")
	if err != nil {
		return nil, err
	}

	difficulty, err := c.svc.CustomDifficulty(ctx, lower, upper, limit)
	switch {
	case err == nil:
		return difficulty, nil
	case lower >= upper:
		c.println(c.styles.Error.Render("Minimum must be less than maximum. Returning to difficulty menu."))
		return nil, errInvalidChoice
	case errors.Is(err, engine.ErrInvalidRange), errors.Is(err, engine.ErrInvalidLimit):
		c.println(c.styles.Error.Render(fmt.Sprintf("Invalid custom range: %v. Returning to difficulty menu.", err)))
		return nil, errInvalidChoice
	default:
		return nil, err
	}
}

func (c *Console) playRound(ctx context.Context, difficulty *engine.DifficultyConfig) error {
	round, err := c.svc.NewRound(ctx, difficulty)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	c.log.Debug().Str("round", round.ID).Str("difficulty", round.ScoreKey).Msg("round started")

	c.println("")
	if difficulty.HasLimit() {
		c.printf("%s: guess the number between %d and %d. You have %s.\n",
			roundTitle(difficulty), difficulty.LowerBound, difficulty.UpperBound, difficulty.AttemptsLabel())
	} else {
		c.printf("%s: guess the number between %d and %d. Unlimited attempts.\n",
			roundTitle(difficulty), difficulty.LowerBound, difficulty.UpperBound)
	}

	for {
		prompt := fmt.Sprintf("Attempt %d: Enter your guess → ", round.Engine.AttemptsUsed()+1)
		guess, err := c.readInt(ctx, prompt)
		if err != nil {
			return err
		}

		result, err := c.svc.SubmitGuess(ctx, round, guess)
		if err != nil {
			return fmt.Errorf("failed to submit guess: %w", err)
		}

		if result.Finished() {
			c.showOutcome(round, result)
			return nil
		}
		c.showHint(difficulty, result)
	}
}

func (c *Console) showHint(difficulty *engine.DifficultyConfig, result *service.GuessResult) {
	switch result.Feedback {
	case engine.FeedbackTooLow:
		c.println(c.styles.Hint.Render("Higher number please."))
	case engine.FeedbackTooHigh:
		c.println(c.styles.Hint.Render("Lower number please."))
	case engine.FeedbackOutOfRange:
		c.println(c.styles.Warning.Render(fmt.Sprintf(
			"%d is outside %d–%d. That attempt still counts.",
			result.Guess, difficulty.LowerBound, difficulty.UpperBound)))
	}
	if !result.Unlimited {
		c.println(c.styles.Muted.Render(fmt.Sprintf("%s left.", pluralAttempts(result.Remaining))))
	}
}

func (c *Console) showOutcome(round *service.Round, result *service.GuessResult) {
	secret := 0
	if result.Secret != nil {
		secret = *result.Secret
	}

	if !result.Won() {
		c.println(c.styles.Error.Render(fmt.Sprintf(
			"Game Over! You've used all %s. The correct number was %d.",
			pluralAttempts(result.AttemptsUsed), secret)))
		c.println("Try again to beat the best score!")
		return
	}

	c.println(c.styles.Success.Render(fmt.Sprintf(
		"Correct! You guessed the number %d in %s.", secret, pluralAttempts(result.AttemptsUsed))))
	switch {
	case result.NewBest:
		c.println(c.styles.Success.Render(fmt.Sprintf(
			"New best score for %s: %s!", roundTitle(round.Config), pluralAttempts(result.AttemptsUsed))))
		if !result.Persisted {
			c.println(c.styles.Muted.Render("(the score could not be saved)"))
		}
	case result.PreviousBest > 0:
		c.printf("Your attempts: %d. Best for this difficulty: %s.\n",
			result.AttemptsUsed, pluralAttempts(result.PreviousBest))
	}
}

func (c *Console) goodbye(ctx context.Context) {
	c.println("")
	c.println(c.styles.Title.Render("Thanks for playing. Goodbye!"))

	record, err := c.svc.BestScores(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to read best scores")
		return
	}
	if len(record) == 0 {
		return
	}

	c.println("Best scores:")
	for _, key := range record.Keys() {
		c.printf("  %s: %s\n", c.scoreTitle(ctx, key), pluralAttempts(record[key]))
	}
}

// scoreTitle maps a score key back to a preset title, keeping custom keys as is
func (c *Console) scoreTitle(ctx context.Context, key string) string {
	difficulty, err := c.svc.LoadDifficulty(ctx, key)
	if err != nil {
		return key
	}
	return difficulty.DisplayTitle()
}

func (c *Console) askYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.println(c.styles.Error.Render("Please answer y or n."))
	}
}

func (c *Console) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println(c.styles.Error.Render("Invalid input! Please enter a whole number."))
	}
}

// readOptionalInt returns 0 for a blank line
func (c *Console) readOptionalInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		c.println(c.styles.Error.Render("Invalid input! Please enter a whole number or leave blank."))
	}
}

func (c *Console) startReader(ctx context.Context) {
	c.lines = make(chan string)
	go func() {
		defer close(c.lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case c.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.log.Warn().Err(err).Msg("failed to read input")
		}
	}()
}

func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// roundTitle names a difficulty in messages; custom ranges carry their bounds
func roundTitle(difficulty *engine.DifficultyConfig) string {
	if difficulty.Name == engine.DifficultyCustom {
		return fmt.Sprintf("%s (%d–%d)", difficulty.DisplayTitle(), difficulty.LowerBound, difficulty.UpperBound)
	}
	return difficulty.DisplayTitle()
}

func pluralAttempts(n int) string {
	if n == 1 {
		return "1 attempt"
	}
	return fmt.Sprintf("%d attempts", n)
}
