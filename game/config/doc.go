// Package config provides difficulty and settings management for Perfect Guess.
//
// The config package handles:
//   - The built-in difficulty presets (easy, medium, hard)
//   - Loading extra presets from YAML or JSON files
//   - Building validated custom ranges
//   - Environment settings for the command-line tools
//
// Preset Format:
//
// Preset files live in a configs directory, one preset per file:
//
//	name: expert
//	title: Expert
//	description: Four digits, ten tries
//	min: 1
//	max: 1000
//	attempts: 10
//
// JSON files use the same keys. A file preset with the name of a built-in
// replaces it. An omitted name defaults to the file name without extension.
// Omitting attempts (or setting it to 0) makes the preset unlimited.
//
// Usage:
//
//	manager, err := config.NewManager("configs", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	medium, err := manager.LoadConfig("medium")
//	custom, err := manager.Custom(1, 500, 0)
//
//	// Presets in menu order
//	presets := manager.ListConfigs()
package config
