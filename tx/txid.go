package tx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// TxIDLen is the length of a transaction ID.
const TxIDLen = 32

// TxID is an opaque 32-byte transaction identifier. Bytes are kept in wire
// order; no hashing or byte reversal is applied.
type TxID [TxIDLen]byte

// TxIDFromHex parses a 64-character hex string into a TxID.
func TxIDFromHex(s string) (TxID, error) {
	var id TxID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: txid hex: %w", ErrInvalidFormat, err)
	}
	if len(b) != TxIDLen {
		return id, fmt.Errorf("%w: txid must be %d bytes, got %d", ErrInvalidFormat, TxIDLen, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// String returns the lowercase hex form of the raw bytes.
func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalJSON encodes the TxID as a hex string.
func (id TxID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a hex string into the TxID.
func (id *TxID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: txid: %w", ErrInvalidFormat, err)
	}
	parsed, err := TxIDFromHex(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
