package tx

import (
	"encoding/binary"
	"fmt"
)

// OutPointSize is the serialized size of an OutPoint: txid(32) | vout(4).
const OutPointSize = TxIDLen + 4

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	TxID TxID   `json:"txid"`
	Vout uint32 `json:"vout"`
}

// NewOutPoint returns an OutPoint for the given txid and output index.
func NewOutPoint(txID TxID, vout uint32) OutPoint {
	return OutPoint{TxID: txID, Vout: vout}
}

// Encode serializes the outpoint to its fixed 36-byte form.
func (o OutPoint) Encode() []byte {
	return o.AppendTo(make([]byte, 0, OutPointSize))
}

// AppendTo appends the encoded outpoint to dst.
func (o OutPoint) AppendTo(dst []byte) []byte {
	dst = append(dst, o.TxID[:]...)
	return binary.LittleEndian.AppendUint32(dst, o.Vout)
}

// DecodeOutPoint reads an OutPoint from the front of buf.
func DecodeOutPoint(buf []byte) (OutPoint, int, error) {
	if len(buf) < OutPointSize {
		return OutPoint{}, 0, fmt.Errorf("%w: outpoint needs %d bytes, have %d", ErrInsufficientBytes, OutPointSize, len(buf))
	}

	var o OutPoint
	copy(o.TxID[:], buf[:TxIDLen])
	o.Vout = binary.LittleEndian.Uint32(buf[TxIDLen:OutPointSize])
	return o, OutPointSize, nil
}
