package config

import "github.com/wricardo/perfect-guess/game/engine"

// builtinPresets returns the presets shipped with the game, in menu order
func builtinPresets() []*engine.DifficultyConfig {
	return []*engine.DifficultyConfig{
		{
			Name:        engine.DifficultyEasy,
			Title:       "Easy",
			Description: "Single digits, as many guesses as you like",
			LowerBound:  1,
			UpperBound:  9,
		},
		{
			Name:         engine.DifficultyMedium,
			Title:        "Medium",
			Description:  "Up to twenty in seven guesses",
			LowerBound:   1,
			UpperBound:   20,
			AttemptLimit: 7,
		},
		{
			Name:         engine.DifficultyHard,
			Title:        "Hard",
			Description:  "Up to fifty in five guesses",
			LowerBound:   1,
			UpperBound:   50,
			AttemptLimit: 5,
		},
	}
}
