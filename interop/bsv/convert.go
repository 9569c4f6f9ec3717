// Package bsv converts between codec transactions and go-sdk transaction
// types. Outputs have no counterpart in the codec and are never produced;
// when converting from go-sdk they are ignored.
package bsv

import (
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"

	"github.com/bitfsorg/bitcodec-go/tx"
)

// ToInput converts a codec input to a go-sdk TransactionInput.
func ToInput(in tx.Input) *transaction.TransactionInput {
	txidHash := chainhash.Hash(in.PreviousOutput.TxID)
	return &transaction.TransactionInput{
		SourceTXID:       &txidHash,
		SourceTxOutIndex: in.PreviousOutput.Vout,
		UnlockingScript:  script.NewFromBytes(in.ScriptSig.Bytes()),
		SequenceNumber:   in.Sequence,
	}
}

// FromInput converts a go-sdk TransactionInput to a codec input. A nil
// unlocking script becomes an empty script.
func FromInput(in *transaction.TransactionInput) (tx.Input, error) {
	if in == nil {
		return tx.Input{}, fmt.Errorf("%w: input", ErrNilParam)
	}
	if in.SourceTXID == nil {
		return tx.Input{}, fmt.Errorf("%w: SourceTXID", ErrNilParam)
	}

	var scriptSig []byte
	if in.UnlockingScript != nil {
		scriptSig = *in.UnlockingScript
	}

	prev := tx.NewOutPoint(tx.TxID(*in.SourceTXID), in.SourceTxOutIndex)
	return tx.NewInput(prev, tx.NewScript(scriptSig), in.SequenceNumber), nil
}

// ToTransaction converts a codec transaction to a go-sdk Transaction with no
// outputs.
func ToTransaction(t *tx.Transaction) (*transaction.Transaction, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: transaction", ErrNilParam)
	}

	sdkTx := transaction.NewTransaction()
	sdkTx.Version = t.Version
	sdkTx.LockTime = t.LockTime
	for _, in := range t.Inputs {
		sdkTx.AddInput(ToInput(in))
	}
	return sdkTx, nil
}

// FromTransaction converts a go-sdk Transaction to a codec transaction,
// keeping version, inputs and lock time.
func FromTransaction(sdkTx *transaction.Transaction) (*tx.Transaction, error) {
	if sdkTx == nil {
		return nil, fmt.Errorf("%w: transaction", ErrNilParam)
	}

	inputs := make([]tx.Input, 0, len(sdkTx.Inputs))
	for i, sdkIn := range sdkTx.Inputs {
		in, err := FromInput(sdkIn)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}
	return tx.NewTransaction(sdkTx.Version, inputs, sdkTx.LockTime), nil
}
