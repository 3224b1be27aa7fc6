package terminal

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/perfect-guess/game/config"
	"github.com/wricardo/perfect-guess/game/engine"
	"github.com/wricardo/perfect-guess/game/scores"
	"github.com/wricardo/perfect-guess/game/service"
)

func newTestService(t *testing.T, scoreFile string, secret int) service.GameService {
	t.Helper()
	configs, err := config.NewManager("", zerolog.Nop())
	require.NoError(t, err)
	store := scores.NewFileStore(scoreFile, zerolog.Nop())
	return service.NewGameService(configs, store, engine.FixedSource(secret), zerolog.Nop())
}

func runScript(t *testing.T, svc service.GameService, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	console := NewConsole(svc, input, &out)
	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestConsole_CustomRangeWin(t *testing.T) {
	scoreFile := filepath.Join(t.TempDir(), "scores.json")
	svc := newTestService(t, scoreFile, 42)

	out := runScript(t, svc, "4", "1", "100", "7", "50", "25", "37", "43", "42", "n")

	assert.Contains(t, out, Banner)
	assert.Contains(t, out, "Attempt 1: Enter your guess → ")
	assert.Equal(t, 2, strings.Count(out, "Lower number please."))
	assert.Equal(t, 2, strings.Count(out, "Higher number please."))
	assert.Contains(t, out, "Correct! You guessed the number 42 in 5 attempts.")
	assert.Contains(t, out, "New best score for Custom (1–100): 5 attempts!")
	assert.Contains(t, out, "Thanks for playing. Goodbye!")
	assert.Contains(t, out, "custom_1_100: 5 attempts")

	record, err := scores.ReadFile(scoreFile)
	require.NoError(t, err)
	assert.Equal(t, scores.Record{"custom_1_100": 5}, record)
}

func TestConsole_PresetMenu(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "scores.json"), 5)

	out := runScript(t, svc, "1", "5", "no")

	assert.Contains(t, out, "Choose Difficulty:")
	assert.Contains(t, out, "1. Easy (1–9, unlimited)")
	assert.Contains(t, out, "2. Medium (1–20, 7 attempts)")
	assert.Contains(t, out, "3. Hard (1–50, 5 attempts)")
	assert.Contains(t, out, "4. Custom range")
	assert.Contains(t, out, "Correct! You guessed the number 5 in 1 attempt.")
	assert.Contains(t, out, "Easy: 1 attempt")
}

func TestConsole_HardLoss(t *testing.T) {
	scoreFile := filepath.Join(t.TempDir(), "scores.json")
	svc := newTestService(t, scoreFile, 30)

	out := runScript(t, svc, "3", "1", "2", "3", "4", "5", "n")

	assert.Contains(t, out, "4 attempts left.")
	assert.Contains(t, out, "1 attempt left.")
	assert.Contains(t, out, "Game Over! You've used all 5 attempts. The correct number was 30.")
	assert.Contains(t, out, "Try again to beat the best score!")
	assert.NotContains(t, out, "Best scores:")

	_, err := os.Stat(scoreFile)
	assert.True(t, os.IsNotExist(err), "a loss must not write scores")
}

func TestConsole_InputValidation(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "scores.json"), 7)

	out := runScript(t, svc,
		"9",     // not on the menu
		"abc",   // not a number
		"2",     // medium
		"seven", // rejected, not counted
		"25",    // out of range, counted
		"7",
		"maybe",
		"n",
	)

	assert.Contains(t, out, "Invalid choice. Try again.")
	assert.Contains(t, out, "Invalid input! Please enter a whole number.")
	assert.Contains(t, out, "25 is outside 1–20. That attempt still counts.")
	assert.Contains(t, out, "Attempt 2: Enter your guess → ")
	assert.Contains(t, out, "Correct! You guessed the number 7 in 2 attempts.")
	assert.Contains(t, out, "Please answer y or n.")
}

func TestConsole_CustomRangeRejected(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "scores.json"), 3)

	out := runScript(t, svc, "4", "10", "10", "", "1", "3", "n")

	assert.Contains(t, out, "Minimum must be less than maximum. Returning to difficulty menu.")
	assert.Equal(t, 2, strings.Count(out, "Choose Difficulty:"))
	assert.Contains(t, out, "Correct! You guessed the number 3 in 1 attempt.")
}

func TestConsole_PlayAgainShowsPreviousBest(t *testing.T) {
	scoreFile := filepath.Join(t.TempDir(), "scores.json")
	svc := newTestService(t, scoreFile, 4)

	out := runScript(t, svc,
		"1", "4", "y",
		"1", "9", "4", "yes",
		"1", "4", "n",
	)

	assert.Equal(t, 1, strings.Count(out, "New best score for Easy"))
	assert.Contains(t, out, "Your attempts: 2. Best for this difficulty: 1 attempt.")
	assert.Contains(t, out, "Your attempts: 1. Best for this difficulty: 1 attempt.")
	assert.Equal(t, 3, strings.Count(out, "Choose Difficulty:"))
}

func TestConsole_UnsavableScoreStillWins(t *testing.T) {
	scoreFile := filepath.Join(t.TempDir(), "missing", "scores.json")
	svc := newTestService(t, scoreFile, 2)

	out := runScript(t, svc, "1", "2", "n")

	assert.Contains(t, out, "New best score for Easy: 1 attempt!")
	assert.Contains(t, out, "(the score could not be saved)")
}

func TestConsole_EndOfInput(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "scores.json"), 5)

	var out bytes.Buffer
	console := NewConsole(svc, strings.NewReader("2\n10\n"), &out)
	require.NoError(t, console.Run(context.Background()))

	assert.Contains(t, out.String(), "Interrupted. Goodbye.")
}

func TestConsole_ContextCancelled(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "scores.json"), 5)

	reader, writer := io.Pipe()
	defer writer.Close()

	var out bytes.Buffer
	console := NewConsole(svc, reader, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx)
	}()

	_, err := writer.Write([]byte("1\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop after cancellation")
	}
	assert.Contains(t, out.String(), "Interrupted. Goodbye.")
}

func TestConsole_ReaderStopsWithTrailingInput(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "scores.json"), 3)
	before := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		console := NewConsole(svc, strings.NewReader("1\n3\nn\nextra\nextra\n"), &bytes.Buffer{})
		require.NoError(t, console.Run(context.Background()))
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 2*time.Second, 10*time.Millisecond, "input reader goroutines must exit when Run returns")
}
