package bsv

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("bsv: required parameter is nil")
)
