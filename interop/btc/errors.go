package btc

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("btc: required parameter is nil")

	// ErrWitnessUnsupported indicates an input carries segregated witness
	// data, which the codec format cannot represent.
	ErrWitnessUnsupported = errors.New("btc: witness data is not supported")
)
