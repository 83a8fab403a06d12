package transport

import (
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/service/scanner"
	"github.com/shopspring/decimal"
)

type fractionRequest struct {
	Fraction decimal.Decimal `json:"fraction"`
}

type rangeRequest struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	MinBits        *int   `json:"minBits"`
	MaxBits        *int   `json:"maxBits"`
	RetainProgress bool   `json:"retainProgress"`
}

type manualRequest struct {
	Direction    string `json:"direction"`
	Quantity     int    `json:"quantity"`
	RepeatRandom bool   `json:"repeatRandom"`
}

type startedResponse struct {
	Started bool `json:"started"`
}

// Scalars are rendered as 64 char hex; big decimals as strings.
type statusResponse struct {
	Cursor           string                `json:"cursor"`
	RangeStart       string                `json:"rangeStart"`
	RangeEnd         string                `json:"rangeEnd"`
	BatchSize        int                   `json:"batchSize"`
	Progress         string                `json:"progress"`
	BitLength        int                   `json:"bitLength"`
	Page             string                `json:"page"`
	AddressesChecked uint64                `json:"addressesChecked"`
	Connecting       bool                  `json:"connecting"`
	Busy             bool                  `json:"busy"`
	DragQueueDepth   int                   `json:"dragQueueDepth"`
	Manual           *scanner.ManualStatus `json:"manual,omitempty"`
}

func newStatusResponse(st scanner.Status) statusResponse {
	return statusResponse{
		Cursor:           model.FormatHex(st.Params.Cursor),
		RangeStart:       model.FormatHex(st.Params.RangeStart),
		RangeEnd:         model.FormatHex(st.Params.RangeEnd),
		BatchSize:        st.Params.BatchSize,
		Progress:         st.Progress.String(),
		BitLength:        st.BitLength,
		Page:             st.Page.String(),
		AddressesChecked: st.AddressesChecked,
		Connecting:       st.Connecting,
		Busy:             st.Busy,
		DragQueueDepth:   st.DragQueueDepth,
		Manual:           st.Manual,
	}
}

type itemResponse struct {
	Hex       string                `json:"hex"`
	Addresses []model.CryptoAddress `json:"addresses"`
	DBHit     *bool                 `json:"dbHit,omitempty"`
	Matched   []model.CryptoAddress `json:"matched,omitempty"`
}

func newItemResponse(item model.PrivateKeyItem) itemResponse {
	return itemResponse{
		Hex:       item.Hex,
		Addresses: item.Addresses,
		DBHit:     item.DBHit,
		Matched:   item.Matched,
	}
}
