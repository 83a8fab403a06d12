// Package transport exposes the scanner control API over HTTP.
package transport

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/keyrange"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/service/scanner"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Scanner is the orchestrator surface driven by the API.
type Scanner interface {
	Status() scanner.Status
	Items() []model.PrivateKeyItem
	ScanNext() bool
	JumpTo(fraction decimal.Decimal) (bool, error)
	Drag(fraction decimal.Decimal) error
	UpdateKeyspaceRange(start, end *big.Int, retain bool) (bool, error)
	UpdateBitRange(minBits, maxBits int, retain bool) (bool, error)
	StartManual(req scanner.ManualRequest) (string, error)
	CancelManual() bool
	EstimatePage(fraction decimal.Decimal) (*big.Int, error)
}

const maxBodyBytes = 1 << 16

// ScannerHandler serves the control and status routes.
type ScannerHandler struct {
	scanner Scanner
	router  *mux.Router
	logger  *zap.Logger
}

// NewScannerHandler returns a ScannerHandler with its routes registered.
func NewScannerHandler(s Scanner, logger *zap.Logger) *ScannerHandler {
	h := &ScannerHandler{
		scanner: s,
		router:  mux.NewRouter(),
		logger:  logger.Named("api"),
	}
	h.routes()
	return h
}

func (h *ScannerHandler) routes() {
	h.router.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	h.router.HandleFunc("/status", h.handleStatus).Methods(http.MethodGet)
	h.router.HandleFunc("/items", h.handleItems).Methods(http.MethodGet)
	h.router.HandleFunc("/page", h.handlePage).Methods(http.MethodGet).Queries("fraction", "{fraction}")
	h.router.HandleFunc("/range", h.handleRange).Methods(http.MethodPut)
	h.router.HandleFunc("/scan/next", h.handleNext).Methods(http.MethodPost)
	h.router.HandleFunc("/scan/jump", h.handleJump).Methods(http.MethodPost)
	h.router.HandleFunc("/scan/drag", h.handleDrag).Methods(http.MethodPost)
	h.router.HandleFunc("/scan/manual", h.handleStartManual).Methods(http.MethodPost)
	h.router.HandleFunc("/scan/manual", h.handleCancelManual).Methods(http.MethodDelete)
}

func (h *ScannerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *ScannerHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *ScannerHandler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, newStatusResponse(h.scanner.Status()))
}

func (h *ScannerHandler) handleItems(w http.ResponseWriter, _ *http.Request) {
	items := h.scanner.Items()
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *ScannerHandler) handlePage(w http.ResponseWriter, r *http.Request) {
	fraction, err := decimal.NewFromString(mux.Vars(r)["fraction"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	page, err := h.scanner.EstimatePage(fraction)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"page": page.String()})
}

func (h *ScannerHandler) handleNext(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusAccepted, startedResponse{Started: h.scanner.ScanNext()})
}

func (h *ScannerHandler) handleJump(w http.ResponseWriter, r *http.Request) {
	var req fractionRequest
	if !h.decode(w, r, &req) {
		return
	}
	started, err := h.scanner.JumpTo(req.Fraction)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, startedResponse{Started: started})
}

func (h *ScannerHandler) handleDrag(w http.ResponseWriter, r *http.Request) {
	var req fractionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.scanner.Drag(req.Fraction); err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]bool{"queued": true})
}

func (h *ScannerHandler) handleRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	var (
		started bool
		err     error
	)
	switch {
	case req.Start != "" || req.End != "":
		start, perr := model.ParseHex(req.Start)
		if perr != nil {
			h.writeError(w, http.StatusBadRequest, perr)
			return
		}
		end, perr := model.ParseHex(req.End)
		if perr != nil {
			h.writeError(w, http.StatusBadRequest, perr)
			return
		}
		started, err = h.scanner.UpdateKeyspaceRange(start, end, req.RetainProgress)
	case req.MinBits != nil && req.MaxBits != nil:
		started, err = h.scanner.UpdateBitRange(*req.MinBits, *req.MaxBits, req.RetainProgress)
	default:
		h.writeError(w, http.StatusBadRequest, errors.New("either start/end or minBits/maxBits is required"))
		return
	}
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, startedResponse{Started: started})
}

func (h *ScannerHandler) handleStartManual(w http.ResponseWriter, r *http.Request) {
	var req manualRequest
	if !h.decode(w, r, &req) {
		return
	}
	direction, err := model.ParseDirection(req.Direction)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.scanner.StartManual(scanner.ManualRequest{
		Direction:    direction,
		Quantity:     req.Quantity,
		RepeatRandom: req.RepeatRandom,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"id": id})
}

func (h *ScannerHandler) handleCancelManual(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]bool{"cancelled": h.scanner.CancelManual()})
}

func (h *ScannerHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (h *ScannerHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, keyrange.ErrInvalidRange),
		errors.Is(err, keyrange.ErrInvalidFraction),
		errors.Is(err, keyrange.ErrInvalidBatchSize),
		errors.Is(err, scanner.ErrInvalidQuantity),
		errors.Is(err, model.ErrInvalidDirection),
		errors.Is(err, model.ErrInvalidHexKey):
		h.writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, scanner.ErrNotRunning):
		h.writeError(w, http.StatusServiceUnavailable, err)
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err)
	}
}

func (h *ScannerHandler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *ScannerHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
