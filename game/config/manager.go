package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/wricardo/perfect-guess/game/engine"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

// presetExtensions lists the file extensions read from the config directory
var presetExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Manager handles difficulty preset loading and lookup
type Manager struct {
	configDir   string
	configs     map[string]*engine.DifficultyConfig
	order       []string
	defaultName string
	log         zerolog.Logger
	mu          sync.RWMutex
}

// NewManager creates a manager with the built-in presets plus any preset
// files found in configDir. A missing directory is not an error.
func NewManager(configDir string, logger zerolog.Logger) (*Manager, error) {
	m := &Manager{
		configDir:   configDir,
		configs:     make(map[string]*engine.DifficultyConfig),
		defaultName: engine.DifficultyEasy,
		log:         logger.With().Str("component", "config").Logger(),
	}

	for _, preset := range builtinPresets() {
		m.add(preset)
	}

	if configDir == "" {
		return m, nil
	}

	info, err := os.Stat(configDir)
	switch {
	case os.IsNotExist(err):
		m.log.Debug().Str("dir", configDir).Msg("config directory not found, using built-in presets")
		return m, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("config path is not a directory: %s", configDir)
	}

	if err := m.loadDir(); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadConfig returns a copy of the preset with the given name
func (m *Manager) LoadConfig(name string) (*engine.DifficultyConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	config, exists := m.configs[normalizeName(name)]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}

	clone := *config
	return &clone, nil
}

// ListConfigs returns copies of all presets in menu order: built-ins first,
// then file presets sorted by file name
func (m *Manager) ListConfigs() []*engine.DifficultyConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configs := make([]*engine.DifficultyConfig, 0, len(m.order))
	for _, name := range m.order {
		clone := *m.configs[name]
		configs = append(configs, &clone)
	}
	return configs
}

// Names returns the preset names in menu order
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.order...)
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *engine.DifficultyConfig {
	config, err := m.LoadConfig(m.defaultName)
	if err != nil {
		// The default always names a loaded preset; fall back to the first.
		configs := m.ListConfigs()
		return configs[0]
	}
	return config
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	if _, err := m.LoadConfig(name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultName = normalizeName(name)
	return nil
}

// Custom builds a validated custom difficulty. limit 0 means unlimited.
func (m *Manager) Custom(lower, upper, limit int) (*engine.DifficultyConfig, error) {
	config := &engine.DifficultyConfig{
		Name:         engine.DifficultyCustom,
		Title:        "Custom",
		LowerBound:   lower,
		UpperBound:   upper,
		AttemptLimit: limit,
	}
	if err := engine.ValidateDifficultyConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes a preset file to the config directory and registers it
func (m *Manager) SaveConfig(name string, config *engine.DifficultyConfig) error {
	if m.configDir == "" {
		return fmt.Errorf("no config directory configured")
	}

	preset := *config
	preset.Name = normalizeName(name)
	if err := validatePreset(&preset); err != nil {
		return err
	}

	if err := os.MkdirAll(m.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&preset)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(m.configDir, preset.Name+".yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.add(&preset)
	m.mu.Unlock()

	m.log.Info().Str("preset", preset.Name).Str("file", configPath).Msg("saved preset")
	return nil
}

// ParseDifficultyFile reads and validates one preset file
func ParseDifficultyFile(path string) (*engine.DifficultyConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	var config engine.DifficultyConfig
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, filepath.Base(path))
		}
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, filepath.Base(path), err)
	}

	if config.Name == "" {
		config.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	config.Name = normalizeName(config.Name)

	if err := validatePreset(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// IsPresetFile reports whether the file name has a supported preset extension
func IsPresetFile(name string) bool {
	return presetExtensions[strings.ToLower(filepath.Ext(name))]
}

func (m *Manager) loadDir() error {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return fmt.Errorf("failed to read config directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !IsPresetFile(entry.Name()) {
			continue
		}

		config, err := ParseDifficultyFile(filepath.Join(m.configDir, entry.Name()))
		if err != nil {
			// Skip invalid presets
			m.log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping invalid preset file")
			continue
		}

		m.add(config)
		m.log.Debug().Str("preset", config.Name).Str("file", entry.Name()).Msg("loaded preset")
	}

	return nil
}

// add registers a preset; callers hold the write lock once the manager is shared
func (m *Manager) add(config *engine.DifficultyConfig) {
	if _, exists := m.configs[config.Name]; !exists {
		m.order = append(m.order, config.Name)
	}
	m.configs[config.Name] = config
}

func validatePreset(config *engine.DifficultyConfig) error {
	if config.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if config.Name == engine.DifficultyCustom {
		return fmt.Errorf("%w: %q is reserved for custom ranges", ErrInvalidConfig, engine.DifficultyCustom)
	}
	if strings.ContainsAny(config.Name, " \t/\\") {
		return fmt.Errorf("%w: name %q must not contain spaces or slashes", ErrInvalidConfig, config.Name)
	}
	if err := engine.ValidateDifficultyConfig(config); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
