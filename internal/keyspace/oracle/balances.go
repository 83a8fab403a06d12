package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/shopspring/decimal"
)

// Balance is the oracle's balance of one address.
type Balance struct {
	Token        model.Token     `json:"token"`
	Address      string          `json:"address"`
	BalanceToken decimal.Decimal `json:"balance_token"`
	BalanceUSD   decimal.Decimal `json:"balance_usd"`
}

type balancesResponse struct {
	Matches []Balance `json:"matches"`
}

// FetchBalances looks up balances of the given addresses.
func (c *Client) FetchBalances(ctx context.Context, addresses []string) (_ []Balance, err error) {
	if len(addresses) == 0 {
		return []Balance{}, nil
	}
	started := time.Now()
	defer func() {
		c.metrics.Observe("balances", err, started)
	}()

	body, err := json.Marshal(checkRequest{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("encode balances request: %w", err)
	}
	raw, err := c.do(ctx, http.MethodPost, balancesPath, body)
	if err != nil {
		return nil, err
	}
	var resp balancesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode balances: %v", errMalformed, err)
	}
	return resp.Matches, nil
}

type storeMatchRequest struct {
	Token         model.Token `json:"token"`
	Address       string      `json:"address"`
	PrivateKeyHex string      `json:"private_key_hex"`
	Variant       string      `json:"variant"`
}

// StoreMatch persists the first matched address of item on the oracle side.
// Items without matched addresses are ignored.
func (c *Client) StoreMatch(ctx context.Context, item model.PrivateKeyItem) (err error) {
	if len(item.Matched) == 0 {
		return nil
	}
	started := time.Now()
	defer func() {
		c.metrics.Observe("store_match", err, started)
	}()

	matched := item.Matched[0]
	body, err := json.Marshal(storeMatchRequest{
		Token:         matched.Token,
		Address:       matched.Address,
		PrivateKeyHex: item.Hex,
		Variant:       strings.ToLower(string(matched.Variant)),
	})
	if err != nil {
		return fmt.Errorf("encode store match request: %w", err)
	}
	if _, err := c.do(ctx, http.MethodPost, storeMatchPath, body); err != nil {
		return err
	}
	return nil
}
