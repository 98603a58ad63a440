package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, input datasets, output
// directories and the metrics textfile.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// Input contains the paths of the scan datasets
	Input struct {
		// Domains is the federal domain base list
		Domains string `env:"INPUT_DOMAINS_PATH" env-default:"domains.csv" yaml:"domains"`
		// Inspect is the HTTPS/HSTS inspection scan
		Inspect string `env:"INPUT_INSPECT_PATH" env-default:"inspect.csv" yaml:"inspect"`
		// TLS is the SSL Labs style grading scan
		TLS string `env:"INPUT_TLS_PATH" env-default:"tls.csv" yaml:"tls"`
		// Analytics is the DAP participation scan
		Analytics string `env:"INPUT_ANALYTICS_PATH" env-default:"analytics.csv" yaml:"analytics"`
		// Branches is an optional TOML agency to branch table; empty uses the built-in one
		Branches string `env:"INPUT_BRANCHES_PATH" yaml:"branches"`
	} `yaml:"input"`

	// Output contains the destinations of the generated tables
	Output struct {
		// Tables is the directory receiving the JSON tables
		Tables string `env:"OUTPUT_TABLES_DIR" env-default:"../assets/data/tables" yaml:"tables"`
		// Stats is the directory receiving the active/inactive CSVs
		Stats string `env:"OUTPUT_STATS_DIR" env-default:"../assets/data" yaml:"stats"`
		// Indent is the JSON indentation width
		Indent int `env:"OUTPUT_JSON_INDENT" env-default:"2" yaml:"indent"`
	} `yaml:"output"`

	Metrics struct {
		// Textfile is where run metrics are written for node_exporter; empty disables it
		Textfile string `env:"METRICS_TEXTFILE" yaml:"textfile"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if cfg.Output.Indent < 0 {
		return nil, fmt.Errorf("could not read config: negative output indent %d", cfg.Output.Indent)
	}

	return &cfg, nil
}
