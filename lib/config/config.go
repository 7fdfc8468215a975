// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "NESTWM_CONFIG"

// Config is the master configuration for the harness.
type Config struct {
	// Project configures the project under test.
	Project ProjectConfig `yaml:"project"`

	// Build configures the build toolchain invocation.
	Build BuildConfig `yaml:"build"`

	// Session configures the nested session launch.
	Session SessionConfig `yaml:"session"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// ProjectConfig configures the project under test.
type ProjectConfig struct {
	// Dir is the directory containing the build manifest and the
	// session script. Default: the current working directory.
	Dir string `yaml:"dir"`
}

// BuildConfig configures the build step.
type BuildConfig struct {
	// Command is the toolchain argv.
	// Default: [cargo, build]
	Command []string `yaml:"command"`

	// Artifact is the path of the built binary, relative to the project
	// directory. When set, its digest is logged after a successful
	// build. Default: empty (no digest).
	Artifact string `yaml:"artifact"`
}

// SessionConfig configures the nested session.
type SessionConfig struct {
	// Launcher is the session-initialization program.
	// Default: startx (found in PATH)
	Launcher string `yaml:"launcher"`

	// Script is the session script, relative to the project directory.
	// Default: xinitrc
	Script string `yaml:"script"`

	// Server is the nested display server executable name.
	// Default: Xephyr
	Server string `yaml:"server"`

	// SearchDirs are consulted, in order, when Server is not on PATH.
	// Default: none
	SearchDirs []string `yaml:"search_dirs"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is one of auto, text, json. Auto picks text when stderr is
	// a terminal and JSON otherwise.
	// Default: auto
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Command: []string{"cargo", "build"},
		},
		Session: SessionConfig{
			Launcher: "startx",
			Script:   "xinitrc",
			Server:   "Xephyr",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load loads configuration from the file named by NESTWM_CONFIG, or
// returns Default when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Fields absent
// from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile decodes a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// JSON is a subset of YAML, so one decoder serves both once the
		// comments and trailing commas are gone.
		data = jsonc.ToJSON(data)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: keep defaults.
			return nil
		}
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Project.Dir = expandVars(c.Project.Dir, vars)
	vars["PROJECT_DIR"] = c.Project.Dir

	c.Build.Artifact = expandVars(c.Build.Artifact, vars)
	c.Session.Launcher = expandVars(c.Session.Launcher, vars)
	c.Session.Script = expandVars(c.Session.Script, vars)
	c.Session.Server = expandVars(c.Session.Server, vars)
	for i, directory := range c.Session.SearchDirs {
		c.Session.SearchDirs[i] = expandVars(directory, vars)
	}
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Build.Command) == 0 || c.Build.Command[0] == "" {
		errs = append(errs, fmt.Errorf("build.command is required"))
	}

	if c.Session.Launcher == "" {
		errs = append(errs, fmt.Errorf("session.launcher is required"))
	}

	if c.Session.Script == "" {
		errs = append(errs, fmt.Errorf("session.script is required"))
	}

	if c.Session.Server == "" {
		errs = append(errs, fmt.Errorf("session.server is required"))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", levels))
	}

	formats := []string{"auto", "text", "json"}
	if !contains(formats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", formats))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ProjectPath resolves path against the project directory. Absolute
// paths and an empty path are returned unchanged.
func (c *Config) ProjectPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Project.Dir, path)
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
