package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ID strategies for newly created courses
const (
	// IDStrategySequence hands out ids from a counter that only moves forward
	IDStrategySequence = "sequence"
	// IDStrategyLength assigns len(collection)+1, which can reuse an id after a delete
	IDStrategyLength = "length"
)

// DefaultConfigPath is used when neither a flag nor CONFIG_PATH names a config file
const DefaultConfigPath = "config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"PORT"`
		Mode            string        `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout     time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Courses struct {
		IDStrategy    string   `yaml:"id_strategy" env:"COURSES_ID_STRATEGY"`
		Seed          []string `yaml:"seed" env:"COURSES_SEED"`
		NameMinLength int      `yaml:"name_min_length" env:"COURSES_NAME_MIN_LENGTH"`
	} `yaml:"courses"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Path    string `yaml:"path" env:"METRICS_PATH"`
	} `yaml:"metrics"`

	Swagger struct {
		Enabled bool `yaml:"enabled" env:"SWAGGER_ENABLED"`
	} `yaml:"swagger"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	// The file is optional, environment and defaults are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns a configuration populated with the built-in defaults
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	return config
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 120 * time.Second
	config.Server.ShutdownTimeout = 10 * time.Second

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Course defaults
	config.Courses.IDStrategy = IDStrategySequence
	config.Courses.Seed = []string{"course1", "course2", "course3", "course4", "course5"}
	config.Courses.NameMinLength = 3

	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"

	config.Swagger.Enabled = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Server.Mode {
	case "development", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	switch config.Courses.IDStrategy {
	case IDStrategySequence, IDStrategyLength:
	default:
		return fmt.Errorf("unknown course id strategy %q", config.Courses.IDStrategy)
	}

	if config.Courses.NameMinLength < 1 {
		return fmt.Errorf("course name minimum length must be positive, got %d", config.Courses.NameMinLength)
	}

	for i, name := range config.Courses.Seed {
		if len([]rune(name)) < config.Courses.NameMinLength {
			return fmt.Errorf("seed course %d (%q) is shorter than %d characters", i, name, config.Courses.NameMinLength)
		}
	}

	if config.Metrics.Enabled && !strings.HasPrefix(config.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/', got %q", config.Metrics.Path)
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
