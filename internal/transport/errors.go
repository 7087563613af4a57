package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/powledger/internal/ledger/mempool"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/service"
	"github.com/goodnatureofminers/powledger/internal/ledger/transaction"
	"github.com/goodnatureofminers/powledger/internal/ledger/validation"
	"github.com/goodnatureofminers/powledger/internal/ledger/wallet"
)

var errBadRequest = errors.New("bad request")

// statusFor maps ledger errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, model.ErrMalformed),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrEmptyBlocks),
		errors.Is(err, wallet.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrStaleTip),
		errors.Is(err, service.ErrInsufficientWork),
		errors.Is(err, mempool.ErrConflict),
		errors.Is(err, mempool.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, service.ErrNoBlockProduced):
		return http.StatusInternalServerError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrInvalidChain),
		validation.Reason(err) != "other",
		errors.Is(err, transaction.ErrInvalidStructure),
		errors.Is(err, transaction.ErrInvalidID),
		errors.Is(err, transaction.ErrMissingOutput),
		errors.Is(err, transaction.ErrInvalidSignature),
		errors.Is(err, transaction.ErrUnbalanced),
		errors.Is(err, transaction.ErrInvalidAddress):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
