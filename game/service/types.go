package service

import "github.com/wricardo/perfect-guess/game/engine"

// GuessResult contains the result of a guess
type GuessResult struct {
	Guess        int             `json:"guess"`
	Feedback     engine.Feedback `json:"feedback"`
	OutOfRange   bool            `json:"out_of_range,omitempty"`
	AttemptsUsed int             `json:"attempts_used"`
	Remaining    int             `json:"remaining,omitempty"`
	Unlimited    bool            `json:"unlimited"`
	Status       engine.Status   `json:"status"`

	// Set once the round is over
	Secret *int `json:"secret,omitempty"`

	// Best score bookkeeping, set on a win
	NewBest      bool `json:"new_best,omitempty"`
	PreviousBest int  `json:"previous_best,omitempty"`
	Persisted    bool `json:"persisted,omitempty"`
}

// Finished reports whether the guess ended the round
func (r *GuessResult) Finished() bool {
	return r.Status.IsTerminal()
}

// Won reports whether the guess won the round
func (r *GuessResult) Won() bool {
	return r.Status == engine.StatusWon
}
