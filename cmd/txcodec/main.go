// Command txcodec decodes and encodes transactions in the codec wire format.
//
//	txcodec [options] decode [FILE]   bytes -> text, json or hex
//	txcodec [options] encode [FILE]   json  -> hex
//
// FILE defaults to stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/bitfsorg/bitcodec-go/config"
)

type options struct {
	Config   string `long:"config" env:"TXCODEC_CONFIG" description:"path to config file (default ~/.txcodec/config)"`
	Input    string `long:"in" env:"TXCODEC_INPUT" description:"input format for decode: hex or raw"`
	Output   string `long:"out" env:"TXCODEC_OUTPUT" description:"output format for decode: text, json or hex"`
	LogLevel string `long:"log-level" env:"TXCODEC_LOG_LEVEL" description:"debug, info, warn or error"`
	LogFile  string `long:"log-file" env:"TXCODEC_LOG_FILE" description:"log file (default stderr)"`

	Args struct {
		Command string `positional-arg-name:"command" required:"true" description:"decode or encode"`
		File    string `positional-arg-name:"file" description:"input file (default stdin)"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "txcodec:", err)
		os.Exit(2)
	}

	os.Exit(execute(cfg, opts, os.Stdin, os.Stdout))
}

// execute runs the command with a logger built from cfg and returns the
// process exit code. The logger is synced and the input file closed before
// it returns.
func execute(cfg config.Config, opts options, stdin io.Reader, stdout io.Writer) int {
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "txcodec: can't initialize zap logger:", err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	src := stdin
	if opts.Args.File != "" {
		f, err := os.Open(opts.Args.File)
		if err != nil {
			logger.Error("failed to open input", zap.String("file", opts.Args.File), zap.Error(err))
			return 1
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	if err := run(cfg, opts.Args.Command, src, stdout, logger); err != nil {
		logger.Error("txcodec failed", zap.String("command", opts.Args.Command), zap.Error(err))
		return 1
	}
	return 0
}

// resolveConfig layers defaults, the config file and command-line flags, in
// that order, and validates the result. A missing default config file is
// not an error; a missing explicit one is.
func resolveConfig(opts options) (config.Config, error) {
	path := opts.Config
	explicit := path != ""
	if !explicit {
		path = config.ConfigPath(config.DefaultConfigDir())
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if explicit || !errors.Is(err, config.ErrConfigNotFound) {
			return cfg, err
		}
		cfg = config.DefaultConfig()
	}

	if opts.Input != "" {
		cfg.InputFormat = opts.Input
	}
	if opts.Output != "" {
		cfg.OutputFormat = opts.Output
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
