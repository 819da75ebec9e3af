package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input      InputConfig      `yaml:"input" envconfig:"INPUT"`
	Thresholds ThresholdsConfig `yaml:"thresholds" envconfig:"THRESHOLDS"`
	Output     OutputConfig     `yaml:"output" envconfig:"OUTPUT"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the auction listings file to analyze
type InputConfig struct {
	// no envconfig alt name: the bare PATH fallback would collide with $PATH
	Path string `yaml:"path" validate:"required"`
}

// ThresholdsConfig holds the deal-suggestion heuristic bounds.
// Price is an upper exclusive bound, Rating a lower exclusive bound.
type ThresholdsConfig struct {
	Price  float64 `yaml:"price" envconfig:"PRICE" validate:"gt=0"`
	Rating float64 `yaml:"rating" envconfig:"RATING" validate:"gte=0"`
}

// OutputConfig controls report artifacts
type OutputConfig struct {
	Dir            string `yaml:"dir" envconfig:"DIR" validate:"required"`
	HistogramBins  int    `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" validate:"gt=0"`
	SuggestionRows int    `yaml:"suggestion_rows" envconfig:"SUGGESTION_ROWS" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Load loads configuration from the built-in defaults, an optional YAML
// file, and environment variables, in increasing precedence. The file and
// the environment only touch the fields they actually set.
func Load(configFile string) (*Config, error) {
	// .env files are a convenience for local runs; absence is not an error
	_ = godotenv.Load()

	cfg := *Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("AFCLI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment. Useful for tests and as the flag-default source.
func Default() *Config {
	return &Config{
		Input: InputConfig{Path: "afternic_auctions.csv"},
		Thresholds: ThresholdsConfig{
			Price:  500,
			Rating: 20,
		},
		Output: OutputConfig{
			Dir:            "reports",
			HistogramBins:  50,
			SuggestionRows: 20,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stderr",
			FilePath: "logs/afcli.log",
		},
	}
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}

// loadFromFile unmarshals a YAML file over cfg, leaving absent keys alone
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
