package derivation

import (
	"strings"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

const cashAddrPrefix = "bitcoincash:"

// Normalize returns the form of address used when talking to the match
// oracle. Both the request and the response comparison must use it.
func Normalize(address string, token model.Token) string {
	switch model.Token(strings.ToUpper(string(token))) {
	case model.ETH:
		return trimRepeated(strings.ToLower(address), "0x")
	case model.BCH:
		return trimRepeated(address, cashAddrPrefix)
	default:
		return address
	}
}

// trimRepeated strips every leading copy of prefix so that normalizing twice
// is a no-op.
func trimRepeated(s, prefix string) string {
	for strings.HasPrefix(s, prefix) {
		s = s[len(prefix):]
	}
	return s
}

// NormalizeAll returns the distinct normalized addresses of items in first
// seen order.
func NormalizeAll(items []model.PrivateKeyItem) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(items))
	for _, item := range items {
		for _, addr := range item.Addresses {
			n := Normalize(addr.Address, addr.Token)
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
