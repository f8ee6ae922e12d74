package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DirName is the project directory that holds the config file, database
// and hook scripts.
const DirName = ".tasq"

// FileName is the name of the config file inside DirName.
const FileName = "config.json"

// Config holds all configuration options for the task tracker. The hook
// related fields (HookServerPort, HooksEnabled, AutoNextTask, NotesFilePath)
// are persisted and reloaded for the external automation hook; the core
// never acts on them.
type Config struct {
	DatabasePath   string `json:"database_path"`
	HookServerPort int    `json:"mcp_server_port"`
	HooksEnabled   bool   `json:"hooks_enabled"`
	AutoNextTask   bool   `json:"auto_next_task"`
	NotesFilePath  string `json:"claude_md_path"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		DatabasePath:   filepath.Join(DirName, "tasks.db"),
		HookServerPort: 8080,
		HooksEnabled:   true,
		AutoNextTask:   true,
		NotesFilePath:  "CLAUDE.md",
	}
}

// Dir returns the project directory path
func Dir() string {
	return DirName
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(DirName, FileName)
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if present
// 3. Override with environment variables
func Load() (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(Path())
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", Path(), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", Path(), err)
	}

	cfg.loadFromEnvironment()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the config file, creating the project
// directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(DirName, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// loadFromEnvironment applies environment variable overrides
func (c *Config) loadFromEnvironment() {
	if path := os.Getenv("TASQ_DB_PATH"); path != "" {
		c.DatabasePath = path
	}
	if port := os.Getenv("TASQ_HOOK_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.HookServerPort = p
		}
	}
	if enabled := os.Getenv("TASQ_HOOKS_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.HooksEnabled = b
		}
	}
	if auto := os.Getenv("TASQ_AUTO_NEXT"); auto != "" {
		if b, err := strconv.ParseBool(auto); err == nil {
			c.AutoNextTask = b
		}
	}
	if path := os.Getenv("TASQ_NOTES_PATH"); path != "" {
		c.NotesFilePath = path
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return &ConfigError{Field: "database_path", Message: "database path cannot be empty"}
	}
	if c.HookServerPort < 1 || c.HookServerPort > 65535 {
		return &ConfigError{Field: "mcp_server_port", Message: "port must be between 1 and 65535"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
