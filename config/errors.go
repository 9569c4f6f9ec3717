// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrInvalidInputFormat indicates the input format is not recognized.
	ErrInvalidInputFormat = errors.New("config: invalid input format (must be \"hex\" or \"raw\")")

	// ErrInvalidOutputFormat indicates the output format is not recognized.
	ErrInvalidOutputFormat = errors.New("config: invalid output format (must be \"text\", \"json\", or \"hex\")")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfigLine indicates a line in the config file is malformed.
	ErrInvalidConfigLine = errors.New("config: invalid configuration line")
)
