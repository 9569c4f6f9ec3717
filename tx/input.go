package tx

import (
	"encoding/binary"
	"fmt"
)

// minInputSize is the smallest possible encoded input: an outpoint, an
// empty script and the sequence number.
const minInputSize = OutPointSize + 1 + 4

// Input is a transaction input spending PreviousOutput.
//
// Layout: outpoint(36) | CompactSize(len) | scriptSig(len) | sequence(4)
type Input struct {
	PreviousOutput OutPoint `json:"previous_output"`
	ScriptSig      Script   `json:"script_sig"`
	Sequence       uint32   `json:"sequence"`
}

// NewInput returns an Input spending prev with the given script and sequence.
func NewInput(prev OutPoint, scriptSig Script, sequence uint32) Input {
	return Input{PreviousOutput: prev, ScriptSig: scriptSig, Sequence: sequence}
}

// Equal reports whether two inputs encode to the same bytes.
func (in Input) Equal(other Input) bool {
	return in.PreviousOutput == other.PreviousOutput &&
		in.ScriptSig.Equal(other.ScriptSig) &&
		in.Sequence == other.Sequence
}

// Size returns the encoded length of the input.
func (in Input) Size() int {
	return OutPointSize + in.ScriptSig.Size() + 4
}

// Encode serializes the input.
func (in Input) Encode() []byte {
	return in.AppendTo(make([]byte, 0, in.Size()))
}

// AppendTo appends the encoded input to dst.
func (in Input) AppendTo(dst []byte) []byte {
	dst = in.PreviousOutput.AppendTo(dst)
	dst = in.ScriptSig.AppendTo(dst)
	return binary.LittleEndian.AppendUint32(dst, in.Sequence)
}

// DecodeInput reads one Input from the front of buf and returns it with the
// number of bytes consumed. Errors from the outpoint and script decoders are
// returned as is.
func DecodeInput(buf []byte) (Input, int, error) {
	prev, offset, err := DecodeOutPoint(buf)
	if err != nil {
		return Input{}, 0, err
	}

	scriptSig, n, err := DecodeScript(buf[offset:])
	if err != nil {
		return Input{}, 0, err
	}
	offset += n

	sequence, err := readUint32(buf[offset:], "sequence")
	if err != nil {
		return Input{}, 0, err
	}
	offset += 4

	return NewInput(prev, scriptSig, sequence), offset, nil
}

// readUint32 reads a little-endian uint32 from the front of buf.
func readUint32(buf []byte, field string) (uint32, error) {
	if len(buf) < 4 {
		return 0, fmt.Errorf("%w: %s needs 4 bytes, have %d", ErrInsufficientBytes, field, len(buf))
	}
	return binary.LittleEndian.Uint32(buf[:4]), nil
}
