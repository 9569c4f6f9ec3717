// Package compactsize implements the Bitcoin CompactSize variable-length
// unsigned integer encoding.
//
// Layout:
//
//	0x00..0xFC  value itself, 1 byte
//	0xFD        + uint16 LE, 3 bytes
//	0xFE        + uint32 LE, 5 bytes
//	0xFF        + uint64 LE, 9 bytes
package compactsize

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Prefix markers for the multi-byte forms.
const (
	Marker16 = 0xFD
	Marker32 = 0xFE
	Marker64 = 0xFF
)

// MaxSingleByte is the largest value stored directly in the first byte.
const MaxSingleByte = 0xFC

// VarInt is an unsigned 64-bit value serialized as CompactSize.
type VarInt uint64

// Bytes returns the canonical encoding of v.
func (v VarInt) Bytes() []byte { return Encode(uint64(v)) }

// Size returns the canonical encoded length of v.
func (v VarInt) Size() int { return Size(uint64(v)) }

// Size returns the number of bytes the canonical encoding of v occupies.
func Size(v uint64) int {
	switch {
	case v <= MaxSingleByte:
		return 1
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// Encode returns the canonical (smallest prefix) encoding of v.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Size(v)), v)
}

// Append appends the canonical encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint64) []byte {
	switch {
	case v <= MaxSingleByte:
		return append(dst, byte(v))
	case v <= math.MaxUint16:
		return binary.LittleEndian.AppendUint16(append(dst, Marker16), uint16(v))
	case v <= math.MaxUint32:
		return binary.LittleEndian.AppendUint32(append(dst, Marker32), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, Marker64), v)
	}
}

// Decode reads one CompactSize value from the front of buf and returns the
// value together with the number of bytes consumed.
//
// Non-minimal encodings (e.g. 0xFD 0x05 0x00 for 5) are accepted. Use
// DecodeCanonical to reject them.
func Decode(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, fmt.Errorf("%w: need 1 byte, have 0", ErrInsufficientBytes)
	}

	var width int
	switch buf[0] {
	case Marker16:
		width = 2
	case Marker32:
		width = 4
	case Marker64:
		width = 8
	default:
		return uint64(buf[0]), 1, nil
	}

	if len(buf) < 1+width {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientBytes, 1+width, len(buf))
	}

	body := buf[1 : 1+width]
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(body)), 3, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(body)), 5, nil
	default:
		return binary.LittleEndian.Uint64(body), 9, nil
	}
}

// DecodeCanonical is like Decode but fails with ErrInvalidFormat when the
// value could have been encoded with a shorter prefix.
func DecodeCanonical(buf []byte) (uint64, int, error) {
	v, n, err := Decode(buf)
	if err != nil {
		return 0, 0, err
	}
	if n != Size(v) {
		return 0, 0, fmt.Errorf("%w: non-minimal encoding of %d in %d bytes", ErrInvalidFormat, v, n)
	}
	return v, n, nil
}
