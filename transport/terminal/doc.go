// Package terminal provides the interactive text front-end for Perfect Guess.
//
// The terminal package implements:
//   - The difficulty menu, including custom ranges
//   - Input validation for numbers and yes/no answers
//   - Per-guess hints and end-of-round messages
//   - The play-again loop and the best-score summary on exit
//
// Input and output are injected as io.Reader and io.Writer, so a whole game
// can be scripted in tests. Lines are read on a background goroutine so the
// console can stop as soon as its context is cancelled; end of input is
// treated like an interrupt and ends the run cleanly.
//
// Usage:
//
//	console := terminal.NewConsole(gameService, os.Stdin, os.Stdout)
//	if err := console.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package terminal
