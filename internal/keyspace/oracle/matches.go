package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"go.uber.org/zap"
)

const unknownVariant model.Variant = "?"

type matchEntry struct {
	Token         model.Token `json:"token"`
	Address       *string     `json:"address"`
	Variant       string      `json:"variant"`
	PrivateKeyHex string      `json:"private_key_hex"`
}

type matchesResponse struct {
	Matches []matchEntry `json:"matches"`
}

// FetchRecords returns the matches stored on the oracle.
func (c *Client) FetchRecords(ctx context.Context) (_ []model.MatchRecord, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("matches", err, started)
	}()

	raw, err := c.do(ctx, http.MethodGet, matchesPath, nil)
	if err != nil {
		return nil, err
	}
	var resp matchesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode matches: %v", errMalformed, err)
	}

	records := make([]model.MatchRecord, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		if m.PrivateKeyHex == "" {
			continue
		}
		record := model.MatchRecord{
			Token:   model.Token(strings.ToUpper(string(m.Token))),
			Variant: unknownVariant,
			Hex:     m.PrivateKeyHex,
		}
		if m.Variant != "" {
			record.Variant = model.Variant(strings.ToUpper(m.Variant))
		}
		if m.Address != nil {
			record.Address = *m.Address
		}
		records = append(records, record)
	}
	return records, nil
}

// FetchMatches returns the stored matches as checked key items with the
// balances of their matched addresses filled in. Records whose hex does not
// parse are skipped.
func (c *Client) FetchMatches(ctx context.Context) ([]model.PrivateKeyItem, error) {
	records, err := c.FetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(records))
	for _, r := range records {
		if r.Address != "" {
			addresses = append(addresses, r.Address)
		}
	}
	balances, err := c.FetchBalances(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("fetch balances: %w", err)
	}
	byAddress := make(map[string]Balance, len(balances))
	for _, b := range balances {
		byAddress[b.Address] = b
	}

	items := make([]model.PrivateKeyItem, 0, len(records))
	for _, r := range records {
		index, err := model.ParseHex(r.Hex)
		if err != nil {
			c.logger.Warn("skip stored match with invalid hex", zap.String("hex", r.Hex), zap.Error(err))
			continue
		}
		item := model.NewPrivateKeyItem(index, []model.CryptoAddress{})
		matched := []model.CryptoAddress{}
		if r.Address != "" {
			addr := model.NewCryptoAddress(r.Token, r.Variant, r.Address)
			if b, ok := byAddress[r.Address]; ok {
				addr.SetBalance(b.BalanceToken, b.BalanceUSD)
			}
			matched = append(matched, addr)
		}
		hit := true
		item.DBHit = &hit
		item.Matched = matched
		items = append(items, item)
	}
	return items, nil
}
