// Package derivation turns a private-key scalar into the addresses of every
// configured token and variant.
package derivation

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

// Coin names the hierarchical-deterministic coin family of a BipVariant.
type Coin string

var (
	Bitcoin     Coin = "BITCOIN"
	Ethereum    Coin = "ETHEREUM"
	Litecoin    Coin = "LITECOIN"
	Dogecoin    Coin = "DOGECOIN"
	Dash        Coin = "DASH"
	Zcash       Coin = "ZCASH"
	BitcoinCash Coin = "BITCOIN_CASH"
)

// Standard is a BIP purpose number selecting the derivation path.
type Standard uint32

const (
	BIP44 Standard = 44
	BIP49 Standard = 49
	BIP84 Standard = 84
	BIP86 Standard = 86
)

// ErrUnsupportedStandard is returned for purposes outside 44/49/84/86.
var ErrUnsupportedStandard = errors.New("unsupported derivation standard")

// Valid reports whether s is one of the supported purposes.
func (s Standard) Valid() bool {
	switch s {
	case BIP44, BIP49, BIP84, BIP86:
		return true
	default:
		return false
	}
}

// CoinVariant is a closed set of derivation shapes: BipVariant or
// UncompressedVariant.
type CoinVariant interface {
	coinVariant()
}

// BipVariant derives one address along the path of Standard.
type BipVariant struct {
	Standard Standard
	Coin     Coin
}

// UncompressedVariant derives the legacy uncompressed P2PKH address.
type UncompressedVariant struct {
	Coin Coin
}

func (BipVariant) coinVariant()          {}
func (UncompressedVariant) coinVariant() {}

// VariantConfig binds a variant name to its derivation shape.
type VariantConfig struct {
	Name    model.Variant
	Variant CoinVariant
}

// TokenConfig lists the variants of one token. Version is the network
// version prefix of legacy Base58Check addresses.
type TokenConfig struct {
	Token    model.Token
	Version  []byte
	Variants []VariantConfig
}

// Registry is the ordered token configuration; iteration order is the
// order of derived addresses.
type Registry []TokenConfig

// Validate checks the registry for duplicate entries and unsupported shapes.
func (r Registry) Validate() error {
	tokens := make(map[model.Token]struct{}, len(r))
	for _, tc := range r {
		if tc.Token == "" {
			return errors.New("registry entry without token")
		}
		if _, ok := tokens[tc.Token]; ok {
			return fmt.Errorf("duplicate token %s", tc.Token)
		}
		tokens[tc.Token] = struct{}{}

		variants := make(map[model.Variant]struct{}, len(tc.Variants))
		for _, vc := range tc.Variants {
			if _, ok := variants[vc.Name]; ok {
				return fmt.Errorf("duplicate variant %s/%s", tc.Token, vc.Name)
			}
			variants[vc.Name] = struct{}{}

			switch v := vc.Variant.(type) {
			case BipVariant:
				if !v.Standard.Valid() {
					return fmt.Errorf("%s/%s: %w: %d", tc.Token, vc.Name, ErrUnsupportedStandard, v.Standard)
				}
				if v.Coin != Ethereum && len(tc.Version) == 0 {
					return fmt.Errorf("%s/%s: missing network version", tc.Token, vc.Name)
				}
			case UncompressedVariant:
				if len(tc.Version) == 0 {
					return fmt.Errorf("%s/%s: missing network version", tc.Token, vc.Name)
				}
			default:
				return fmt.Errorf("%s/%s: unknown variant %T", tc.Token, vc.Name, vc.Variant)
			}
		}
	}
	return nil
}

// Size returns the number of (token, variant) entries.
func (r Registry) Size() int {
	n := 0
	for _, tc := range r {
		n += len(tc.Variants)
	}
	return n
}

func bipVariants(coin Coin) []VariantConfig {
	return []VariantConfig{
		{Name: model.BIP44, Variant: BipVariant{Standard: BIP44, Coin: coin}},
		{Name: model.BIP49, Variant: BipVariant{Standard: BIP49, Coin: coin}},
		{Name: model.BIP84, Variant: BipVariant{Standard: BIP84, Coin: coin}},
		{Name: model.BIP86, Variant: BipVariant{Standard: BIP86, Coin: coin}},
	}
}

func legacyVariants(coin Coin) []VariantConfig {
	return []VariantConfig{
		{Name: model.P2PKHUncompressed, Variant: UncompressedVariant{Coin: coin}},
		{Name: model.BIP44, Variant: BipVariant{Standard: BIP44, Coin: coin}},
	}
}

// DefaultRegistry returns the static token table.
func DefaultRegistry() Registry {
	btc := append([]VariantConfig{
		{Name: model.P2PKHUncompressed, Variant: UncompressedVariant{Coin: Bitcoin}},
	}, bipVariants(Bitcoin)...)

	return Registry{
		{Token: model.BTC, Version: []byte{0x00}, Variants: btc},
		{Token: model.ETH, Variants: []VariantConfig{
			{Name: model.EthereumVariant, Variant: BipVariant{Standard: BIP44, Coin: Ethereum}},
		}},
		{Token: model.LTC, Version: []byte{0x30}, Variants: legacyVariants(Litecoin)},
		{Token: model.DOGE, Version: []byte{0x1e}, Variants: legacyVariants(Dogecoin)},
		{Token: model.DASH, Version: []byte{0x4c}, Variants: legacyVariants(Dash)},
		{Token: model.BCH, Version: []byte{0x00}, Variants: legacyVariants(BitcoinCash)},
		{Token: model.ZEC, Version: []byte{0x1c, 0xb8}, Variants: legacyVariants(Zcash)},
	}
}
