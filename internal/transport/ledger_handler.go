// Package transport exposes the ledger over HTTP.
package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"go.uber.org/zap"
)

const maxBodyBytes = 8 << 20

// LedgerHandler serves the node's JSON API.
type LedgerHandler struct {
	ledger Ledger
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewLedgerHandler returns a LedgerHandler with every route registered.
func NewLedgerHandler(ledger Ledger, logger *zap.Logger) (*LedgerHandler, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &LedgerHandler{
		ledger: ledger,
		logger: logger.Named("http"),
		mux:    http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /blocks", h.blocks)
	h.mux.HandleFunc("GET /latestBlock", h.latestBlock)
	h.mux.HandleFunc("GET /block/{hash}", h.block)
	h.mux.HandleFunc("GET /transaction/{id}", h.transaction)
	h.mux.HandleFunc("GET /address/{address}", h.addressOutputs)
	h.mux.HandleFunc("GET /unspentTransactionOutputs", h.unspentOutputs)
	h.mux.HandleFunc("GET /myUnspentTransactionOutputs", h.myUnspentOutputs)
	h.mux.HandleFunc("GET /balance", h.balance)
	h.mux.HandleFunc("GET /address", h.address)
	h.mux.HandleFunc("GET /transactionPool", h.transactionPool)
	h.mux.HandleFunc("POST /mineRawBlock", h.mineRawBlock)
	h.mux.HandleFunc("POST /mineBlock", h.mineBlock)
	h.mux.HandleFunc("POST /mineTransaction", h.mineTransaction)
	h.mux.HandleFunc("POST /sendTransaction", h.sendTransaction)
	h.mux.HandleFunc("POST /receiveChain", h.receiveChain)
	h.mux.HandleFunc("POST /receiveBlocks", h.receiveBlocks)
	h.mux.HandleFunc("POST /receiveTransaction", h.receiveTransaction)
	return h, nil
}

func (h *LedgerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rw, r)
	h.logger.Debug("request served",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rw.status),
		zap.Duration("duration", time.Since(started)),
	)
}

func (h *LedgerHandler) blocks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.GetChain())
}

func (h *LedgerHandler) latestBlock(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.GetLatestBlock())
}

func (h *LedgerHandler) block(w http.ResponseWriter, r *http.Request) {
	b, err := h.ledger.GetBlock(r.PathValue("hash"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *LedgerHandler) transaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledger.GetTransaction(r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *LedgerHandler) addressOutputs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"unspentTxOuts": nonNil(h.ledger.UnspentOutputsOf(r.PathValue("address"))),
	})
}

func (h *LedgerHandler) unspentOutputs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.ledger.GetUnspentOutputs()))
}

func (h *LedgerHandler) myUnspentOutputs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.ledger.MyUnspentOutputs()))
}

func (h *LedgerHandler) balance(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"balance": h.ledger.AccountBalance().ToBTC()})
}

func (h *LedgerHandler) address(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"address": h.ledger.Address()})
}

func (h *LedgerHandler) transactionPool(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(h.ledger.TransactionPool()))
}

func (h *LedgerHandler) mineRawBlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Data json.RawMessage `json:"data"`
	}
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if req.Data == nil {
		h.writeError(w, fmt.Errorf("%w: data is required", errBadRequest))
		return
	}
	data, err := model.DecodeTransactions(bytes.NewReader(req.Data))
	if err != nil {
		h.writeError(w, err)
		return
	}

	b, err := h.ledger.MineNext(r.Context(), data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *LedgerHandler) mineBlock(w http.ResponseWriter, r *http.Request) {
	b, err := h.ledger.MineNextWithReward(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type paymentRequest struct {
	Address *string  `json:"address"`
	Amount  *float64 `json:"amount"`
}

func (h *LedgerHandler) mineTransaction(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodePayment(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	b, err := h.ledger.MineNextWithPayment(r.Context(), *req.Address, *req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *LedgerHandler) sendTransaction(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodePayment(w, r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	tx, err := h.ledger.SubmitTransaction(*req.Address, *req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *LedgerHandler) receiveChain(w http.ResponseWriter, r *http.Request) {
	chain, err := model.DecodeChain(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(chain) == 0 {
		h.writeError(w, fmt.Errorf("%w: chain is empty", errBadRequest))
		return
	}
	if err := h.ledger.OnReceivedChain(chain); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"height": chain[len(chain)-1].Index})
}

func (h *LedgerHandler) receiveBlocks(w http.ResponseWriter, r *http.Request) {
	blocks, err := model.DecodeChain(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, err)
		return
	}
	outcome, err := h.ledger.OnReceivedBlocks(blocks)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outcome": outcome.String()})
}

func (h *LedgerHandler) receiveTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := model.DecodeTransaction(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.ledger.OnReceivedTransaction(tx); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": tx.ID})
}

func (h *LedgerHandler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func decodePayment(w http.ResponseWriter, r *http.Request, req *paymentRequest) error {
	if err := decodeBody(w, r, req); err != nil {
		return err
	}
	if req.Address == nil || req.Amount == nil {
		return fmt.Errorf("%w: address and amount are required", errBadRequest)
	}
	return nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", errBadRequest)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
