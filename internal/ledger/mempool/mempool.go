// Package mempool keeps the transactions waiting to be included in a block.
package mempool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/transaction"
	"go.uber.org/zap"
)

var (
	ErrConflict  = errors.New("transaction spends an output already spent in the pool")
	ErrDuplicate = errors.New("transaction already in pool")
)

// Pool is an ordered set of validated transactions whose inputs do not overlap.
type Pool struct {
	mu      sync.RWMutex
	txs     []model.Transaction
	spent   map[model.OutPoint]string
	logger  *zap.Logger
	metrics Metrics
}

// New builds an empty Pool. metrics may be nil.
func New(logger *zap.Logger, metrics Metrics) *Pool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{
		spent:   make(map[model.OutPoint]string),
		logger:  logger.Named("mempool"),
		metrics: metrics,
	}
}

// Add validates tx against utxos and the pool content and appends it.
func (p *Pool) Add(tx model.Transaction, utxos model.UTXOSet) (err error) {
	defer func() {
		if p.metrics != nil {
			p.metrics.ObserveAdd(err)
		}
	}()

	if err := transaction.ValidateTransaction(tx, utxos); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.txs {
		if existing.ID == tx.ID {
			return fmt.Errorf("%w: %s", ErrDuplicate, tx.ID)
		}
	}
	for _, in := range tx.TxIns {
		op := model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex}
		if owner, ok := p.spent[op]; ok {
			return fmt.Errorf("%w: %s:%d used by %s", ErrConflict, in.TxOutID, in.TxOutIndex, owner)
		}
	}

	tx = tx.Clone()
	for _, in := range tx.TxIns {
		p.spent[model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex}] = tx.ID
	}
	p.txs = append(p.txs, tx)
	p.setSize()

	p.logger.Debug("transaction added", zap.String("id", tx.ID), zap.Int("size", len(p.txs)))
	return nil
}

// Transactions returns a copy of the pool content in insertion order.
func (p *Pool) Transactions() []model.Transaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.txs) == 0 {
		return []model.Transaction{}
	}
	return model.CloneTransactions(p.txs)
}

// Len returns the number of pooled transactions.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.txs)
}

// Update drops every transaction that spends an output missing from utxos,
// which covers transactions confirmed by a newly adopted chain.
func (p *Pool) Update(utxos model.UTXOSet) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.txs[:0]
	removed := 0
	for _, tx := range p.txs {
		if spendsOnlyUnspent(tx, utxos) {
			kept = append(kept, tx)
			continue
		}
		for _, in := range tx.TxIns {
			delete(p.spent, model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex})
		}
		removed++
	}
	for i := len(kept); i < len(p.txs); i++ {
		p.txs[i] = model.Transaction{}
	}
	p.txs = kept
	p.setSize()

	if removed > 0 {
		p.logger.Debug("pool pruned", zap.Int("removed", removed), zap.Int("size", len(p.txs)))
	}
}

func (p *Pool) setSize() {
	if p.metrics != nil {
		p.metrics.SetSize(len(p.txs))
	}
}

func spendsOnlyUnspent(tx model.Transaction, utxos model.UTXOSet) bool {
	for _, in := range tx.TxIns {
		if !utxos.Has(in.TxOutID, in.TxOutIndex) {
			return false
		}
	}
	return true
}
