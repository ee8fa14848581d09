// Package config loads and merges jigsaw's user- and project-level
// settings, following the same user-then-project precedence as the
// teacher's settings manager, but persisted as YAML.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables every generator and the HTTP facade read.
type Config struct {
	// Sink pipeline (spec.md §4.5)
	BatchSize    int `yaml:"batch_size,omitempty"`
	ChannelDepth int `yaml:"channel_depth,omitempty"`

	// Personal engine (spec.md §4.4)
	DedupCap     int `yaml:"dedup_cap,omitempty"`
	MinCandLen   int `yaml:"min_candidate_len,omitempty"`
	MaxCandLen   int `yaml:"max_candidate_len,omitempty"`

	// Mask engine (spec.md §4.2) — custom charsets bound to ?1..?4
	Charset1 string `yaml:"charset1,omitempty"`
	Charset2 string `yaml:"charset2,omitempty"`
	Charset3 string `yaml:"charset3,omitempty"`
	Charset4 string `yaml:"charset4,omitempty"`

	// Markov engine (spec.md §4.3)
	MaxTrainLineLen int `yaml:"max_train_line_len,omitempty"`

	// HTTP facade
	APIToken    string `yaml:"api_token,omitempty"`
	RateLimitRPS int   `yaml:"rate_limit_rps,omitempty"`
}

// defaults mirrors spec.md's stated default values.
func defaults() Config {
	return Config{
		BatchSize:       4096,
		ChannelDepth:    16,
		DedupCap:        5_000_000,
		MinCandLen:      4,
		MaxCandLen:      32,
		MaxTrainLineLen: 64,
		RateLimitRPS:    20,
	}
}

// Manager loads user and project config files and merges them, project
// taking precedence, the same shape as the teacher's settings Manager.
type Manager struct {
	userConfig    *Config
	projectConfig *Config
	merged        *Config
}

func NewManager() *Manager {
	return &Manager{
		userConfig:    &Config{},
		projectConfig: &Config{},
		merged:        &Config{},
	}
}

// Load reads "<userConfigDir>/config.yaml" and "<projectDir>/.jigsaw/config.yaml".
// Missing files are not an error; defaults apply.
func (m *Manager) Load(userConfigDir, projectDir string) error {
	userPath := filepath.Join(userConfigDir, "config.yaml")
	if err := m.loadConfig(userPath, m.userConfig); err != nil {
		return err
	}

	projectPath := filepath.Join(projectDir, ".jigsaw", "config.yaml")
	if err := m.loadConfig(projectPath, m.projectConfig); err != nil {
		return err
	}

	m.mergeConfigs()
	return nil
}

func (m *Manager) loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (m *Manager) mergeConfigs() {
	d := defaults()
	merged := Config{
		BatchSize:       firstNonZeroInt(m.projectConfig.BatchSize, m.userConfig.BatchSize, d.BatchSize),
		ChannelDepth:    firstNonZeroInt(m.projectConfig.ChannelDepth, m.userConfig.ChannelDepth, d.ChannelDepth),
		DedupCap:        firstNonZeroInt(m.projectConfig.DedupCap, m.userConfig.DedupCap, d.DedupCap),
		MinCandLen:      firstNonZeroInt(m.projectConfig.MinCandLen, m.userConfig.MinCandLen, d.MinCandLen),
		MaxCandLen:      firstNonZeroInt(m.projectConfig.MaxCandLen, m.userConfig.MaxCandLen, d.MaxCandLen),
		MaxTrainLineLen: firstNonZeroInt(m.projectConfig.MaxTrainLineLen, m.userConfig.MaxTrainLineLen, d.MaxTrainLineLen),
		RateLimitRPS:    firstNonZeroInt(m.projectConfig.RateLimitRPS, m.userConfig.RateLimitRPS, d.RateLimitRPS),
		Charset1:        firstNonEmpty(m.projectConfig.Charset1, m.userConfig.Charset1, ""),
		Charset2:        firstNonEmpty(m.projectConfig.Charset2, m.userConfig.Charset2, ""),
		Charset3:        firstNonEmpty(m.projectConfig.Charset3, m.userConfig.Charset3, ""),
		Charset4:        firstNonEmpty(m.projectConfig.Charset4, m.userConfig.Charset4, ""),
		APIToken:        firstNonEmpty(m.projectConfig.APIToken, m.userConfig.APIToken, ""),
	}
	m.merged = &merged
}

func firstNonEmpty(project, user, def string) string {
	if project != "" {
		return project
	}
	if user != "" {
		return user
	}
	return def
}

func firstNonZeroInt(project, user, def int) int {
	if project != 0 {
		return project
	}
	if user != 0 {
		return user
	}
	return def
}

func (m *Manager) Get() *Config {
	return m.merged
}

// SaveUserConfig writes the in-memory user config back to disk.
func (m *Manager) SaveUserConfig(userConfigDir string) error {
	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(m.userConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(userConfigDir, "config.yaml"), data, 0644)
}

// SaveProjectConfig writes the in-memory project config back to disk.
func (m *Manager) SaveProjectConfig(projectDir string) error {
	dir := filepath.Join(projectDir, ".jigsaw")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(m.projectConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}
