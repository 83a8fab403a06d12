package sink

import (
	"strings"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

// FormatMatchMessage renders the alert text of a matched key.
func FormatMatchMessage(item model.PrivateKeyItem) string {
	var b strings.Builder
	b.WriteString("Private key:\n   ")
	b.WriteString(item.Hex)
	b.WriteString("\n\nMatched address(es):\n")
	for _, addr := range item.Matched {
		b.WriteString(addr.FullAddressPretty())
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}
