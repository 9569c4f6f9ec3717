package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionString(t *testing.T) {
	tx := NewTransaction(1, []Input{
		NewInput(NewOutPoint(TxID{}, 3), NewScript([]byte{1, 2, 255}), 0xffffffff),
		NewInput(NewOutPoint(TxID{}, 0), NewScript(nil), 0),
	}, 42)

	want := "Version: 1\n" +
		"Previous Output Vout: 3\n" +
		"ScriptSig Length: 3\n" +
		"ScriptSig Bytes: [1, 2, 255]\n" +
		"Previous Output Vout: 0\n" +
		"ScriptSig Length: 0\n" +
		"ScriptSig Bytes: []\n" +
		"Lock Time: 42\n"
	assert.Equal(t, want, tx.String())
}

func TestTransactionString_NoInputs(t *testing.T) {
	tx := NewTransaction(2, nil, 7)
	assert.Equal(t, "Version: 2\nLock Time: 7\n", tx.String())
}

func TestTransactionString_Nil(t *testing.T) {
	var tx *Transaction
	assert.Equal(t, "<nil>", tx.String())
}
