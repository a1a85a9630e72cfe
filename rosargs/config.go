package rosargs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Cyberunner23/roslog"
)

// Config describes the logging arguments handed to the native subsystem.
type Config struct {
	// DefaultLevel is the process-wide severity threshold.
	// Empty omits the flag and leaves the native default in place.
	DefaultLevel string `yaml:"default_level"`

	// LogLevels maps individual logger names to severity thresholds.
	LogLevels map[string]string `yaml:"log_levels"`

	// StdoutLogs toggles the native stdout sink. nil omits the flag.
	StdoutLogs *bool `yaml:"enable_stdout_logs"`

	// RosoutLogs toggles the rosout topic sink. nil omits the flag.
	RosoutLogs *bool `yaml:"enable_rosout_logs"`

	// ExternalLibLogs toggles the external logging library sink.
	// nil omits the flag.
	ExternalLibLogs *bool `yaml:"enable_external_lib_logs"`

	// ConfigFile is an optional native logging configuration file,
	// passed through opaquely as --log-config-file.
	ConfigFile string `yaml:"external_config_file"`

	// ExtraArgs are appended verbatim after the generated flags.
	ExtraArgs []string `yaml:"extra_args"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLevel: "info",
	}
}

// LoadConfig reads a YAML configuration file, applies environment variable
// overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variables over file values.
// Supported: ROSLOG_DEFAULT_LEVEL, ROSLOG_STDOUT_LOGS, ROSLOG_ROSOUT_LOGS.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROSLOG_DEFAULT_LEVEL"); v != "" {
		cfg.DefaultLevel = v
	}
	if v := os.Getenv("ROSLOG_STDOUT_LOGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StdoutLogs = &b
		}
	}
	if v := os.Getenv("ROSLOG_ROSOUT_LOGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RosoutLogs = &b
		}
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.DefaultLevel != "" {
		if _, err := roslog.ParseSeverity(c.DefaultLevel); err != nil {
			return fmt.Errorf("default_level: %w", err)
		}
	}

	for name, level := range c.LogLevels {
		if name == "" {
			return fmt.Errorf("log_levels: logger name cannot be empty")
		}
		if strings.Contains(name, ":=") {
			return fmt.Errorf("log_levels: logger name %q contains ':='", name)
		}
		if strings.IndexByte(name, 0) >= 0 {
			return fmt.Errorf("log_levels: logger name contains NUL byte")
		}
		if _, err := roslog.ParseSeverity(level); err != nil {
			return fmt.Errorf("log_levels[%q]: %w", name, err)
		}
	}

	if strings.IndexByte(c.ConfigFile, 0) >= 0 {
		return fmt.Errorf("external_config_file: path contains NUL byte")
	}

	for i, a := range c.ExtraArgs {
		if strings.IndexByte(a, 0) >= 0 {
			return fmt.Errorf("extra_args[%d]: argument contains NUL byte", i)
		}
	}
	return nil
}
