package tx

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionJSON(t *testing.T) {
	tx := NewTransaction(1, []Input{
		NewInput(NewOutPoint(makeTxID(0xab), 1), NewScript([]byte{0x51, 0x52}), 0xffffffff),
	}, 0)

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	want := `{"version":1,"inputs":[{"previous_output":{"txid":"` + strings.Repeat("ab", 32) +
		`","vout":1},"script_sig":{"bytes":[81,82]},"sequence":4294967295}],"lock_time":0}`
	assert.JSONEq(t, want, string(data))

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, tx.Equal(&decoded))
}

func TestTransactionJSON_EmptyInputs(t *testing.T) {
	data, err := json.Marshal(NewTransaction(1, nil, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"inputs":[],"lock_time":0}`, string(data))
}

func TestTransactionJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"short txid", `{"inputs":[{"previous_output":{"txid":"abcd","vout":0},"script_sig":"","sequence":0}]}`},
		{"bad txid hex", `{"inputs":[{"previous_output":{"txid":"` + strings.Repeat("g", 64) + `","vout":0}}]}`},
		{"txid not string", `{"inputs":[{"previous_output":{"txid":12,"vout":0}}]}`},
		{"bad script hex", `{"inputs":[{"script_sig":"xyz"}]}`},
		{"script byte out of range", `{"inputs":[{"script_sig":{"bytes":[1,256]}}]}`},
		{"negative script byte", `{"inputs":[{"script_sig":{"bytes":[-1]}}]}`},
		{"script not object", `{"inputs":[{"script_sig":[1,2]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded Transaction
			err := json.Unmarshal([]byte(tt.json), &decoded)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestTransactionJSON_ObjectScriptForm(t *testing.T) {
	doc := `{
		"version": 2,
		"inputs": [{
			"previous_output": {"txid": "` + strings.Repeat("01", 32) + `", "vout": 3},
			"script_sig": {"bytes": [81, 82, 255]},
			"sequence": 4294967295
		}],
		"lock_time": 9
	}`

	var decoded Transaction
	require.NoError(t, json.Unmarshal([]byte(doc), &decoded))

	want := NewTransaction(2, []Input{
		NewInput(NewOutPoint(makeTxID(0x01), 3), NewScript([]byte{81, 82, 255}), 0xffffffff),
	}, 9)
	assert.True(t, want.Equal(&decoded))
}

func TestScriptJSON(t *testing.T) {
	data, err := json.Marshal(NewScript([]byte{81, 82}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"bytes":[81,82]}`, string(data))

	data, err = json.Marshal(NewScript(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"bytes":[]}`, string(data))

	var fromHex Script
	require.NoError(t, json.Unmarshal([]byte(`"5152"`), &fromHex))
	assert.Equal(t, []byte{81, 82}, fromHex.Bytes())

	var fromObject Script
	require.NoError(t, json.Unmarshal([]byte(`{"bytes":[81,82]}`), &fromObject))
	assert.True(t, fromHex.Equal(fromObject))
}
