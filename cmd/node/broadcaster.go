package main

import (
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"go.uber.org/zap"
)

// logBroadcaster stands in for peer transport and only records announcements.
type logBroadcaster struct {
	logger *zap.Logger
}

func newLogBroadcaster(logger *zap.Logger) logBroadcaster {
	return logBroadcaster{logger: logger.Named("broadcast")}
}

func (b logBroadcaster) BroadcastLatest(block model.Block) {
	b.logger.Debug("announce latest block", zap.Uint64("index", block.Index), zap.String("hash", block.Hash))
}

func (b logBroadcaster) BroadcastTransactionPool(txs []model.Transaction) {
	b.logger.Debug("announce transaction pool", zap.Int("size", len(txs)))
}
