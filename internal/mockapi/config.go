// Package mockapi is a deterministic stand-in for the bidding service,
// meant for exercising the console offline. Mutating routes record their
// input in an in-memory store so reads reflect prior writes; nothing is
// validated beyond JSON binding.
package mockapi

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config defines the mock server settings.
type Config struct {
	Addr     string `yaml:"addr" envconfig:"ADDR"`
	Prefix   string `yaml:"prefix" envconfig:"PREFIX"`
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// Fixtures points at an optional YAML file seeding initial state.
	Fixtures string `yaml:"fixtures" envconfig:"FIXTURES"`
}

// LoadConfig reads configuration from the environment.
// Priority: Env Vars > .env files > Defaults
func LoadConfig() (*Config, error) {
	// Try loading .env files (ignore error if not present)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := envconfig.Process("MOCKAPI", cfg); err != nil {
		return nil, fmt.Errorf("failed to process env vars: %w", err)
	}

	// Apply Defaults
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "/api"
	}

	return cfg, nil
}

// FixtureUser seeds one registered user.
type FixtureUser struct {
	Initials string `yaml:"initials"`
	Name     string `yaml:"name"`
	Crew     *int   `yaml:"crew"`
	UserType string `yaml:"user_type"`
}

// FixtureArea seeds one area with its users.
type FixtureArea struct {
	Area  string        `yaml:"area"`
	Users []FixtureUser `yaml:"users"`
}

// FixtureBidYear seeds one bid year with its areas.
type FixtureBidYear struct {
	Year  int           `yaml:"year"`
	Areas []FixtureArea `yaml:"areas"`
}

// FixtureFile is the on-disk seed format.
type FixtureFile struct {
	ActiveBidYear *int             `yaml:"active_bid_year"`
	BidYears      []FixtureBidYear `yaml:"bid_years"`
}

// LoadFixtures parses the YAML fixture file at path.
func LoadFixtures(path string) (*FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}
	var ff FixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return &ff, nil
}
