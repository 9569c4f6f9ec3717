package tx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bitfsorg/bitcodec-go/compactsize"
)

// Transaction is a transaction restricted to version, inputs and lock time.
// Outputs are not part of this format.
//
// Layout: version(4) | CompactSize(n) | input * n | lockTime(4)
//
// The input count is not stored; it is len(Inputs) on encode.
type Transaction struct {
	Version  uint32  `json:"version"`
	Inputs   []Input `json:"inputs"`
	LockTime uint32  `json:"lock_time"`
}

// NewTransaction returns a Transaction holding a copy of inputs.
func NewTransaction(version uint32, inputs []Input, lockTime uint32) *Transaction {
	t := &Transaction{
		Version:  version,
		Inputs:   make([]Input, len(inputs)),
		LockTime: lockTime,
	}
	copy(t.Inputs, inputs)
	return t
}

// Equal reports whether two transactions encode to the same bytes.
func (t *Transaction) Equal(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Version != other.Version || t.LockTime != other.LockTime || len(t.Inputs) != len(other.Inputs) {
		return false
	}
	for i := range t.Inputs {
		if !t.Inputs[i].Equal(other.Inputs[i]) {
			return false
		}
	}
	return true
}

// Size returns the encoded length of the transaction.
func (t *Transaction) Size() int {
	size := 4 + compactsize.Size(uint64(len(t.Inputs))) + 4
	for _, in := range t.Inputs {
		size += in.Size()
	}
	return size
}

// Encode serializes the transaction. A nil transaction encodes to nil.
func (t *Transaction) Encode() []byte {
	if t == nil {
		return nil
	}

	buf := make([]byte, 0, t.Size())
	buf = binary.LittleEndian.AppendUint32(buf, t.Version)
	buf = compactsize.Append(buf, uint64(len(t.Inputs)))
	for _, in := range t.Inputs {
		buf = in.AppendTo(buf)
	}
	return binary.LittleEndian.AppendUint32(buf, t.LockTime)
}

// Hex returns the hex encoding of the serialized transaction.
func (t *Transaction) Hex() string {
	return hex.EncodeToString(t.Encode())
}

// DecodeTransaction reads a Transaction from the front of buf and returns it
// with the number of bytes consumed. Trailing bytes are left to the caller.
//
// The first failing sub-decoder's error is returned unchanged and no partial
// transaction is produced.
func DecodeTransaction(buf []byte) (*Transaction, int, error) {
	version, err := readUint32(buf, "version")
	if err != nil {
		return nil, 0, err
	}
	offset := 4

	count, n, err := compactsize.Decode(buf[offset:])
	if err != nil {
		return nil, 0, err
	}
	offset += n

	// Reject counts that cannot fit before allocating for them.
	if remaining := uint64(len(buf) - offset); count > remaining/minInputSize {
		return nil, 0, fmt.Errorf("%w: %d inputs need at least %d bytes each, have %d",
			ErrInsufficientBytes, count, minInputSize, remaining)
	}

	inputs := make([]Input, 0, count)
	for i := uint64(0); i < count; i++ {
		in, used, err := DecodeInput(buf[offset:])
		if err != nil {
			return nil, 0, err
		}
		inputs = append(inputs, in)
		offset += used
	}

	lockTime, err := readUint32(buf[offset:], "lock time")
	if err != nil {
		return nil, 0, err
	}
	offset += 4

	return &Transaction{Version: version, Inputs: inputs, LockTime: lockTime}, offset, nil
}

// FromHex decodes a hex-encoded transaction. Trailing bytes after the
// transaction are rejected with ErrInvalidFormat.
func FromHex(s string) (*Transaction, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: transaction hex: %w", ErrInvalidFormat, err)
	}

	t, n, err := DecodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	if n != len(raw) {
		return nil, fmt.Errorf("%w: %d trailing bytes after transaction", ErrInvalidFormat, len(raw)-n)
	}
	return t, nil
}
