package tx

import (
	"strconv"
	"strings"
)

// String renders a multi-line diagnostic view of the transaction. The
// output is for humans and is never parsed back.
func (t *Transaction) String() string {
	if t == nil {
		return "<nil>"
	}

	var sb strings.Builder
	sb.WriteString("Version: " + strconv.FormatUint(uint64(t.Version), 10) + "\n")
	for _, in := range t.Inputs {
		sb.WriteString("Previous Output Vout: " + strconv.FormatUint(uint64(in.PreviousOutput.Vout), 10) + "\n")
		sb.WriteString("ScriptSig Length: " + strconv.Itoa(in.ScriptSig.Len()) + "\n")
		sb.WriteString("ScriptSig Bytes: " + formatByteList(in.ScriptSig.bytes) + "\n")
	}
	sb.WriteString("Lock Time: " + strconv.FormatUint(uint64(t.LockTime), 10) + "\n")
	return sb.String()
}

// formatByteList renders b as a decimal list, e.g. [1, 2, 255].
func formatByteList(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
