package tx

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/bitfsorg/bitcodec-go/compactsize"
)

// Script is an opaque script payload. It owns its bytes; the codec never
// interprets them.
type Script struct {
	bytes []byte
}

// NewScript returns a Script holding a copy of b.
func NewScript(b []byte) Script {
	return Script{bytes: append([]byte{}, b...)}
}

// Bytes returns a copy of the script bytes.
func (s Script) Bytes() []byte {
	return append([]byte{}, s.bytes...)
}

// Len returns the number of script bytes.
func (s Script) Len() int { return len(s.bytes) }

// Equal reports whether both scripts hold the same bytes.
func (s Script) Equal(other Script) bool {
	return bytes.Equal(s.bytes, other.bytes)
}

// Size returns the encoded length: CompactSize(len) plus the payload.
func (s Script) Size() int {
	return compactsize.Size(uint64(len(s.bytes))) + len(s.bytes)
}

// Encode serializes the script as CompactSize(len) || bytes.
func (s Script) Encode() []byte {
	return s.AppendTo(make([]byte, 0, s.Size()))
}

// AppendTo appends the encoded script to dst.
func (s Script) AppendTo(dst []byte) []byte {
	dst = compactsize.Append(dst, uint64(len(s.bytes)))
	return append(dst, s.bytes...)
}

// DecodeScript reads a length-prefixed script from the front of buf and
// returns it with the number of bytes consumed.
func DecodeScript(buf []byte) (Script, int, error) {
	length, n, err := compactsize.Decode(buf)
	if err != nil {
		return Script{}, 0, err
	}

	rest := buf[n:]
	if length > uint64(len(rest)) {
		return Script{}, 0, fmt.Errorf("%w: script needs %d bytes, have %d", ErrInsufficientBytes, length, len(rest))
	}
	l := int(length)

	return NewScript(rest[:l]), n + l, nil
}

// scriptJSON is the object form of a script: {"bytes":[81,82]}.
type scriptJSON struct {
	Bytes []int `json:"bytes"`
}

// MarshalJSON encodes the script as {"bytes":[...]} with one number per byte.
func (s Script) MarshalJSON() ([]byte, error) {
	obj := scriptJSON{Bytes: make([]int, len(s.bytes))}
	for i, b := range s.bytes {
		obj.Bytes[i] = int(b)
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes either the object form {"bytes":[...]} or a hex
// string into the script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var h string
	if err := json.Unmarshal(data, &h); err == nil {
		b, err := hex.DecodeString(h)
		if err != nil {
			return fmt.Errorf("%w: script hex: %w", ErrInvalidFormat, err)
		}
		*s = NewScript(b)
		return nil
	}

	var obj scriptJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: script: %w", ErrInvalidFormat, err)
	}
	b := make([]byte, len(obj.Bytes))
	for i, v := range obj.Bytes {
		if v < 0 || v > 0xff {
			return fmt.Errorf("%w: script byte %d out of range: %d", ErrInvalidFormat, i, v)
		}
		b[i] = byte(v)
	}
	*s = NewScript(b)
	return nil
}
