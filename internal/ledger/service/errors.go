package service

import (
	"errors"

	"github.com/goodnatureofminers/powledger/internal/ledger/validation"
)

var (
	ErrInvalidChain     = errors.New("received chain is invalid")
	ErrInsufficientWork = errors.New("received chain does not carry more work")
	ErrNoBlockProduced  = errors.New("no block produced")
	ErrStaleTip         = errors.New("chain tip changed while mining")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyBlocks      = errors.New("no blocks received")
	ErrNotFound         = errors.New("not found")
)

func rejectionReason(err error) string {
	if errors.Is(err, ErrInsufficientWork) {
		return "insufficient_work"
	}
	return validation.Reason(err)
}
