// Package service owns the ledger state and the operations that change it:
// block adoption, fork resolution and block production.
package service

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/pow"
	"github.com/goodnatureofminers/powledger/internal/ledger/transaction"
	"github.com/goodnatureofminers/powledger/internal/ledger/validation"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// Snapshot is one adopted (chain, unspent outputs) pair. It is never modified.
type Snapshot struct {
	chain []model.Block
	utxos model.UTXOSet
	work  *uint256.Int
	done  chan struct{}
}

// Latest returns the tip of the snapshot chain.
func (s *Snapshot) Latest() model.Block { return s.chain[len(s.chain)-1].Clone() }

// Height returns the index of the tip.
func (s *Snapshot) Height() uint64 { return s.chain[len(s.chain)-1].Index }

// Chain returns a deep copy of the snapshot chain.
func (s *Snapshot) Chain() []model.Block { return cloneChain(s.chain) }

// UnspentOutputs returns a copy of the snapshot's unspent outputs.
func (s *Snapshot) UnspentOutputs() model.UTXOSet { return s.utxos.Clone() }

// CumulativeDifficulty returns the accumulated work of the snapshot chain.
func (s *Snapshot) CumulativeDifficulty() *uint256.Int { return s.work.Clone() }

// Done is closed once a newer snapshot has been adopted.
func (s *Snapshot) Done() <-chan struct{} { return s.done }

// Coordinator holds the adopted chain and its unspent outputs. Readers get
// whole snapshots without locking; writers are serialized.
type Coordinator struct {
	mu    sync.Mutex
	state atomic.Pointer[Snapshot]

	validator   ChainValidator
	processor   TransactionProcessor
	pool        Mempool
	broadcaster Broadcaster
	observers   []Observer
	metrics     LedgerMetrics
	logger      *zap.Logger
}

// NewCoordinator builds a Coordinator holding only the genesis block.
// pool, broadcaster and metrics are optional.
func NewCoordinator(
	validator ChainValidator,
	processor TransactionProcessor,
	pool Mempool,
	broadcaster Broadcaster,
	metrics LedgerMetrics,
	logger *zap.Logger,
	observers ...Observer,
) (*Coordinator, error) {
	if validator == nil {
		return nil, errors.New("chain validator is required")
	}
	if processor == nil {
		return nil, errors.New("transaction processor is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if broadcaster == nil {
		broadcaster = noopBroadcaster{}
	}
	if metrics == nil {
		metrics = noopLedgerMetrics{}
	}

	genesis := model.Genesis()
	utxos, err := processor.ProcessTransactions(genesis.Data, model.NewUTXOSet(), genesis.Index)
	if err != nil {
		return nil, fmt.Errorf("process genesis transactions: %w", err)
	}

	c := &Coordinator{
		validator:   validator,
		processor:   processor,
		pool:        pool,
		broadcaster: broadcaster,
		observers:   observers,
		metrics:     metrics,
		logger:      logger.Named("coordinator"),
	}
	c.store(&Snapshot{
		chain: []model.Block{genesis},
		utxos: utxos,
		work:  pow.CumulativeDifficulty([]model.Block{genesis}),
		done:  make(chan struct{}),
	})
	return c, nil
}

// Snapshot returns the currently adopted state.
func (c *Coordinator) Snapshot() *Snapshot { return c.state.Load() }

// LatestBlock returns the tip of the adopted chain.
func (c *Coordinator) LatestBlock() model.Block { return c.Snapshot().Latest() }

// Chain returns a copy of the adopted chain.
func (c *Coordinator) Chain() []model.Block { return c.Snapshot().Chain() }

// Height returns the index of the tip.
func (c *Coordinator) Height() uint64 { return c.Snapshot().Height() }

// UnspentOutputs returns a copy of the adopted unspent outputs.
func (c *Coordinator) UnspentOutputs() model.UTXOSet { return c.Snapshot().UnspentOutputs() }

// BalanceOf sums the unspent outputs owned by address.
func (c *Coordinator) BalanceOf(address string) btcutil.Amount {
	return transaction.Balance(address, c.Snapshot().utxos)
}

// UnspentOutputsOf lists the unspent outputs owned by address.
func (c *Coordinator) UnspentOutputsOf(address string) []model.UnspentOutput {
	return transaction.UnspentOutputsOf(address, c.Snapshot().utxos)
}

// AppendBlock validates candidate against the tip, applies its transactions
// and adopts the extended chain. A rejected block leaves the state untouched.
func (c *Coordinator) AppendBlock(candidate model.Block) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveAppend(rejectionReason(err), started)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.state.Load()
	latest := current.chain[len(current.chain)-1]
	if err = c.validator.ValidateNewBlock(candidate, latest); err != nil {
		c.logger.Warn("block rejected",
			zap.Uint64("index", candidate.Index),
			zap.String("hash", candidate.Hash),
			zap.Error(err),
		)
		return err
	}

	utxos, err := c.processor.ProcessTransactions(candidate.Data, current.utxos, candidate.Index)
	if err != nil {
		err = fmt.Errorf("%w: %w", validation.ErrInvalidTransactions, err)
		c.logger.Warn("block rejected",
			zap.Uint64("index", candidate.Index),
			zap.String("hash", candidate.Hash),
			zap.Error(err),
		)
		return err
	}

	block := candidate.Clone()
	c.adopt(current, &Snapshot{
		chain: append(current.chain[:len(current.chain):len(current.chain)], block),
		utxos: utxos,
		work:  addWork(current.work, block.Difficulty),
		done:  make(chan struct{}),
	})
	for _, o := range c.observers {
		o.BlockAppended(block.Clone())
	}

	c.logger.Info("block appended",
		zap.Uint64("index", block.Index),
		zap.String("hash", block.Hash),
		zap.Uint32("difficulty", block.Difficulty),
		zap.Int("transactions", len(block.Data)),
	)
	return nil
}

// ReplaceChain adopts candidate when it is valid and carries strictly more
// cumulative difficulty than the adopted chain. Length is not considered.
func (c *Coordinator) ReplaceChain(candidate []model.Block) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveReplace(rejectionReason(err), started)
	}()

	chain := cloneChain(candidate)
	utxos, err := c.validator.ValidateChain(chain)
	if err != nil {
		c.logger.Warn("received chain rejected", zap.Int("length", len(candidate)), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInvalidChain, err)
	}
	work := pow.CumulativeDifficulty(chain)

	c.mu.Lock()
	current := c.state.Load()
	if work.Cmp(current.work) <= 0 {
		c.mu.Unlock()
		c.logger.Info("received chain ignored",
			zap.Int("length", len(chain)),
			zap.String("work", work.Dec()),
			zap.String("local_work", current.work.Dec()),
		)
		return fmt.Errorf("%w: %s <= %s", ErrInsufficientWork, work.Dec(), current.work.Dec())
	}

	next := &Snapshot{chain: chain, utxos: utxos, work: work, done: make(chan struct{})}
	c.adopt(current, next)
	for _, o := range c.observers {
		o.ChainReplaced(cloneChain(chain))
	}
	c.mu.Unlock()

	latest := next.Latest()
	c.logger.Info("chain replaced",
		zap.Uint64("height", latest.Index),
		zap.String("hash", latest.Hash),
		zap.String("work", work.Dec()),
	)
	c.broadcaster.BroadcastLatest(latest)
	return nil
}

// adopt publishes next and releases everything waiting on current. Callers hold mu.
func (c *Coordinator) adopt(current, next *Snapshot) {
	c.store(next)
	close(current.done)
	if c.pool != nil {
		c.pool.Update(next.utxos)
	}
}

func (c *Coordinator) store(s *Snapshot) {
	c.state.Store(s)
	c.metrics.SetTip(s.Height(), workFloat(s.work))
}

func addWork(total *uint256.Int, difficulty uint32) *uint256.Int {
	sum, overflow := new(uint256.Int).AddOverflow(total, pow.BlockWork(difficulty))
	if overflow {
		return sum.SetAllOne()
	}
	return sum
}

func workFloat(work *uint256.Int) float64 {
	f, _ := new(big.Float).SetInt(work.ToBig()).Float64()
	return f
}

func cloneChain(chain []model.Block) []model.Block {
	if chain == nil {
		return nil
	}
	out := make([]model.Block, len(chain))
	for i := range chain {
		out[i] = chain[i].Clone()
	}
	return out
}
