package service

import (
	"time"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
)

const (
	mineRetryDelay = 1 * time.Second
)

type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastLatest(model.Block) {}
func (noopBroadcaster) BroadcastTransactionPool([]model.Transaction) {}

type noopLedgerMetrics struct{}

func (noopLedgerMetrics) ObserveAppend(string, time.Time) {}
func (noopLedgerMetrics) ObserveReplace(string, time.Time) {}
func (noopLedgerMetrics) SetTip(uint64, float64) {}
