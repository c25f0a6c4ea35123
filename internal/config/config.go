package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file written into the data directory.
const FileName = "dompet.yaml"

// Config represents the top-level dompet.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Advisor AdvisorConfig `yaml:"advisor"`
	Feed    FeedConfig    `yaml:"feed"`
	Git     GitConfig     `yaml:"git"`
}

// ProfileConfig identifies the owner of the wallet.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// AdvisorConfig selects the model behind the advise command.
type AdvisorConfig struct {
	Model string `yaml:"model"`
}

// FeedConfig controls the simulated price feed used by watch.
type FeedConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a dompet.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new wallet.
func Default(ownerName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     ownerName,
			Currency: "IDR",
		},
		Advisor: AdvisorConfig{
			Model: "gemini-2.5-flash",
		},
		Feed: FeedConfig{
			IntervalSeconds: 5,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Dompet",
			AuthorEmail: "dompet@localhost",
		},
	}
}

// LoadEnv loads a .env file from the working directory when present.
// Used before reaching for GEMINI_API_KEY.
func LoadEnv() {
	_ = godotenv.Load()
}
