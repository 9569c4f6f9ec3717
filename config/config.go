// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config holds txcodec CLI settings and reads and writes them as a
// simple "key = value" file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Supported input and output formats.
const (
	InputHex = "hex"
	InputRaw = "raw"

	OutputText = "text"
	OutputJSON = "json"
	OutputHex  = "hex"
)

// Config holds the txcodec settings.
type Config struct {
	InputFormat  string // "hex" or "raw"
	OutputFormat string // "text", "json" or "hex"
	LogLevel     string // "debug", "info", "warn" or "error"
	LogFile      string // empty means stderr
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		InputFormat:  InputHex,
		OutputFormat: OutputText,
		LogLevel:     "info",
		LogFile:      "",
	}
}

// DefaultConfigDir returns ~/.txcodec, or .txcodec when the home directory
// cannot be determined.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".txcodec"
	}
	return filepath.Join(home, ".txcodec")
}

// ConfigPath returns the config file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, "config")
}

// LoadConfig reads the file at path on top of DefaultConfig. Blank lines and
// lines starting with '#' are skipped; unknown keys are ignored.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := parseKeyValue(line)
		if err != nil {
			return cfg, fmt.Errorf("%w: line %d: %q", err, lineNo, line)
		}

		switch key {
		case "input":
			cfg.InputFormat = value
		case "output":
			cfg.OutputFormat = value
		case "loglevel":
			cfg.LogLevel = value
		case "logfile":
			cfg.LogFile = value
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# txcodec configuration\n\n")
	fmt.Fprintf(&sb, "input = %s\n", cfg.InputFormat)
	fmt.Fprintf(&sb, "output = %s\n", cfg.OutputFormat)
	fmt.Fprintf(&sb, "loglevel = %s\n", cfg.LogLevel)
	fmt.Fprintf(&sb, "logfile = %s\n", cfg.LogFile)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// parseKeyValue splits "key = value" on the first '='.
func parseKeyValue(line string) (string, string, error) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", ErrInvalidConfigLine
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return "", "", ErrInvalidConfigLine
	}
	return key, strings.TrimSpace(value), nil
}
