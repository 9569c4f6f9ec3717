// Package btc converts between codec transactions and btcd wire messages.
package btc

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/bitfsorg/bitcodec-go/tx"
)

// ToTxIn converts a codec input to a btcd TxIn without witness data.
func ToTxIn(in tx.Input) *wire.TxIn {
	hash := chainhash.Hash(in.PreviousOutput.TxID)
	txIn := wire.NewTxIn(wire.NewOutPoint(&hash, in.PreviousOutput.Vout), in.ScriptSig.Bytes(), nil)
	txIn.Sequence = in.Sequence
	return txIn
}

// FromTxIn converts a btcd TxIn to a codec input.
func FromTxIn(txIn *wire.TxIn) (tx.Input, error) {
	if txIn == nil {
		return tx.Input{}, fmt.Errorf("%w: txin", ErrNilParam)
	}
	if len(txIn.Witness) > 0 {
		return tx.Input{}, ErrWitnessUnsupported
	}

	prev := tx.NewOutPoint(tx.TxID(txIn.PreviousOutPoint.Hash), txIn.PreviousOutPoint.Index)
	return tx.NewInput(prev, tx.NewScript(txIn.SignatureScript), txIn.Sequence), nil
}

// ToMsgTx converts a codec transaction to a btcd MsgTx with no outputs. The
// version is reinterpreted bit for bit as int32.
func ToMsgTx(t *tx.Transaction) (*wire.MsgTx, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: transaction", ErrNilParam)
	}

	msg := wire.NewMsgTx(int32(t.Version))
	for _, in := range t.Inputs {
		msg.AddTxIn(ToTxIn(in))
	}
	msg.LockTime = t.LockTime
	return msg, nil
}

// FromMsgTx converts a btcd MsgTx to a codec transaction. Outputs are
// dropped; inputs with witness data are rejected.
func FromMsgTx(msg *wire.MsgTx) (*tx.Transaction, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: msgtx", ErrNilParam)
	}

	inputs := make([]tx.Input, 0, len(msg.TxIn))
	for i, txIn := range msg.TxIn {
		in, err := FromTxIn(txIn)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return tx.NewTransaction(uint32(msg.Version), inputs, msg.LockTime), nil
}
