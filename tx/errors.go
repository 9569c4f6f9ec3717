package tx

import (
	"errors"

	"github.com/bitfsorg/bitcodec-go/compactsize"
)

var (
	// ErrInsufficientBytes indicates the buffer ends before a field,
	// length-prefixed payload or fixed-size structure is complete. It is the
	// same value as compactsize.ErrInsufficientBytes.
	ErrInsufficientBytes = compactsize.ErrInsufficientBytes

	// ErrInvalidFormat indicates content that is present but malformed, such
	// as a TxID hex string of the wrong length. It is the same value as
	// compactsize.ErrInvalidFormat.
	ErrInvalidFormat = compactsize.ErrInvalidFormat

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("tx: required parameter is nil")
)
