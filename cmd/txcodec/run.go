package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bitfsorg/bitcodec-go/config"
	"github.com/bitfsorg/bitcodec-go/tx"
)

// run executes command over the bytes read from src and writes the result
// to dst.
func run(cfg config.Config, command string, src io.Reader, dst io.Writer, logger *zap.Logger) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var out []byte
	switch command {
	case "decode":
		out, err = decode(cfg, data, logger)
	case "encode":
		out, err = encode(data, logger)
	default:
		return fmt.Errorf("unknown command %q (want decode or encode)", command)
	}
	if err != nil {
		return err
	}

	if _, err := dst.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// decode parses one transaction from data and renders it in
// cfg.OutputFormat. Bytes after the transaction are reported and skipped.
func decode(cfg config.Config, data []byte, logger *zap.Logger) ([]byte, error) {
	raw := data
	if cfg.InputFormat == config.InputHex {
		decoded, err := hex.DecodeString(string(bytes.TrimSpace(data)))
		if err != nil {
			return nil, fmt.Errorf("%w: input hex: %w", tx.ErrInvalidFormat, err)
		}
		raw = decoded
	}

	t, n, err := tx.DecodeTransaction(raw)
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	logger.Debug("decoded transaction",
		zap.Uint32("version", t.Version),
		zap.Int("inputs", len(t.Inputs)),
		zap.Uint32("lock_time", t.LockTime),
		zap.Int("size", n))
	if n < len(raw) {
		logger.Warn("trailing bytes after transaction",
			zap.Int("consumed", n),
			zap.Int("trailing", len(raw)-n))
	}

	switch cfg.OutputFormat {
	case config.OutputJSON:
		out, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(out, '\n'), nil
	case config.OutputHex:
		return []byte(t.Hex() + "\n"), nil
	default:
		return []byte(t.String()), nil
	}
}

// encode parses a JSON transaction and returns its hex encoding.
func encode(data []byte, logger *zap.Logger) ([]byte, error) {
	var t tx.Transaction
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	raw := t.Encode()
	logger.Debug("encoded transaction",
		zap.Int("inputs", len(t.Inputs)),
		zap.Int("size", len(raw)))
	return []byte(hex.EncodeToString(raw) + "\n"), nil
}
