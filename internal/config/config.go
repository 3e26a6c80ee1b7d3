package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dir is the project configuration directory name.
const Dir = ".pybatch"

// FileName is the project configuration file name inside Dir.
const FileName = "config.json"

// Config represents the pybatch project configuration.
type Config struct {
	// BatchSize is the number of files per external-tool invocation.
	BatchSize int `json:"batch_size,omitempty"`

	// PylintRc is the rcfile handed to the convention linter.
	PylintRc string `json:"pylintrc,omitempty"`

	// PycodestyleConfig is the config file (typically tox.ini) handed
	// to the style checker.
	PycodestyleConfig string `json:"pycodestyle_config,omitempty"`

	// ShimPattern is a regexp matching compatibility-shim files that
	// are excluded from the Python 3 check.
	ShimPattern string `json:"shim_pattern,omitempty"`

	// NoShimExclusion disables the shim exclusion entirely, so the
	// Python 3 check covers every file.
	NoShimExclusion bool `json:"no_shim_exclusion,omitempty"`

	// ToolsDir is where external tools are installed.
	// Default: ~/.pybatch/tools
	ToolsDir string `json:"tools_dir,omitempty"`
}

// Default returns a config with all defaults applied, rooted at workDir.
func Default(workDir string) *Config {
	cfg := &Config{}
	cfg.applyDefaults(workDir)
	return cfg
}

func (c *Config) applyDefaults(workDir string) {
	if c.BatchSize == 0 {
		c.BatchSize = 50
	}
	if c.PylintRc == "" {
		c.PylintRc = filepath.Join(workDir, ".pylintrc")
	}
	if c.PycodestyleConfig == "" {
		c.PycodestyleConfig = filepath.Join(workDir, "tox.ini")
	}
	if c.ShimPattern == "" && !c.NoShimExclusion {
		c.ShimPattern = `python_utils.*\.py$`
	}
}

// Path returns the config file path under workDir.
func Path(workDir string) string {
	return filepath.Join(workDir, Dir, FileName)
}

// Load loads the project configuration from workDir/.pybatch/config.json.
// A missing file is not an error: defaults are returned so `check`
// works in unconfigured projects.
func Load(workDir string) (*Config, error) {
	data, err := os.ReadFile(Path(workDir))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(workDir), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	if cfg.BatchSize < 0 {
		return nil, fmt.Errorf("invalid config file: batch_size must be positive, got %d", cfg.BatchSize)
	}

	cfg.applyDefaults(workDir)
	return &cfg, nil
}

// Save saves the configuration under workDir, creating the config
// directory if needed.
func Save(workDir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Join(workDir, Dir), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(Path(workDir), data, 0600)
}
