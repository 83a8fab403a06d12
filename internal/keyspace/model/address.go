package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Token identifies a coin ticker.
type Token string

// Variant identifies an address derivation variant within a token.
type Variant string

var (
	BTC  Token = "BTC"
	ETH  Token = "ETH"
	LTC  Token = "LTC"
	DOGE Token = "DOGE"
	DASH Token = "DASH"
	BCH  Token = "BCH"
	ZEC  Token = "ZEC"
)

var (
	P2PKHUncompressed Variant = "P2PKH_UNCOMPRESSED"
	BIP44             Variant = "BIP44"
	BIP49             Variant = "BIP49"
	BIP84             Variant = "BIP84"
	BIP86             Variant = "BIP86"
	EthereumVariant   Variant = "ETH"
)

// balanceDigits is the number of fractional digits shown for token balances.
const balanceDigits = 8

// CryptoAddress is a derived address. Balances are only populated by the
// balance lookup, never by derivation.
type CryptoAddress struct {
	Token                 Token           `json:"token"`
	Variant               Variant         `json:"variant"`
	Address               string          `json:"address"`
	BalanceToken          decimal.Decimal `json:"balanceToken"`
	BalanceTokenFormatted string          `json:"balanceTokenFormatted"`
	BalanceUSD            decimal.Decimal `json:"balanceUsd"`
}

// NewCryptoAddress builds an address with zero balances.
func NewCryptoAddress(token Token, variant Variant, address string) CryptoAddress {
	return CryptoAddress{
		Token:                 token,
		Variant:               variant,
		Address:               address,
		BalanceTokenFormatted: FormatBalance(decimal.Zero),
	}
}

// SetBalance stores a looked up balance.
func (a *CryptoAddress) SetBalance(token, usd decimal.Decimal) {
	a.BalanceToken = token
	a.BalanceTokenFormatted = FormatBalance(token)
	a.BalanceUSD = usd
}

// FullAddressPretty renders the address with its token and variant.
func (a CryptoAddress) FullAddressPretty() string {
	return fmt.Sprintf("[%s//%s] %s", a.Token, a.Variant, a.Address)
}

// FormatBalance renders a token balance with a fixed number of digits.
func FormatBalance(v decimal.Decimal) string {
	return v.StringFixed(balanceDigits)
}
