package archive

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/pkg/batcher"
	"go.uber.org/zap"
)

// Config tunes how archive rows are batched.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
	// MaxPending bounds the entries waiting for the batcher. Entries past
	// the bound are dropped.
	MaxPending int
}

// Archiver receives ledger events and writes their rows through a batcher.
// Every event gets a higher version than the one before, so rows of a
// replacing chain win over the rows they overwrite.
//
// Event handlers only append to an in-memory queue; a background pump feeds
// the batcher, so a slow writer never blocks the caller.
type Archiver struct {
	writer     Writer
	batcher    *batcher.Batcher[entry]
	logger     *zap.Logger
	maxPending int

	mu      sync.Mutex
	version uint64
	height  uint64
	pending []entry
	dropped uint64
	started bool
	stopped bool

	wake chan struct{}
	done chan struct{}
}

func NewArchiver(writer Writer, cfg Config, logger *zap.Logger) (*Archiver, error) {
	if writer == nil {
		return nil, errors.New("archive writer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 10
	}
	if cfg.MaxPending <= 0 {
		cfg.MaxPending = 100_000
	}

	a := &Archiver{
		writer:     writer,
		logger:     logger.Named("archiver"),
		maxPending: cfg.MaxPending,
		version:    uint64(time.Now().UnixNano()),
		wake:       make(chan struct{}, 1),
		done:       make(chan struct{}),
	}
	a.batcher = batcher.New(a.logger, a.flush, cfg.FlushSize, cfg.FlushInterval, cfg.RPS)
	return a, nil
}

// Start begins flushing in the background until ctx is done or Stop is called.
func (a *Archiver) Start(ctx context.Context) {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return
	}
	a.started = true
	a.mu.Unlock()

	a.batcher.Start(ctx)
	go a.pump(ctx)
}

// Stop hands the queued entries to the batcher, flushes them and stops the
// background loops. It is safe to call more than once.
func (a *Archiver) Stop() {
	a.mu.Lock()
	a.stopped = true
	started := a.started
	a.mu.Unlock()

	a.signal()
	if started {
		<-a.done
	}
	a.batcher.Stop()
}

// BlockAppended archives a block added on top of the tip.
func (a *Archiver) BlockAppended(block model.Block) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.version++
	a.height = block.Index
	a.enqueueBlock(block, a.version)
	a.signal()
}

// ChainReplaced archives a whole adopted chain and marks the heights past its
// tip as orphaned.
func (a *Archiver) ChainReplaced(chain []model.Block) {
	if len(chain) == 0 {
		return
	}
	tip := chain[len(chain)-1].Index

	a.mu.Lock()
	defer a.mu.Unlock()

	a.version++
	previous := a.height
	a.height = tip
	for _, b := range chain {
		a.enqueueBlock(b, a.version)
	}
	for index := tip + 1; index <= previous; index++ {
		a.enqueue(orphanEntry(index, a.version))
	}
	a.signal()
}

// Pending reports the entries not yet handed to the batcher.
func (a *Archiver) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// enqueueBlock must be called with a.mu held.
func (a *Archiver) enqueueBlock(block model.Block, version uint64) {
	e, err := entryFromBlock(block, version)
	if err != nil {
		a.logger.Error("block not archived", zap.Uint64("index", block.Index), zap.Error(err))
		return
	}
	a.enqueue(e)
}

// enqueue must be called with a.mu held.
func (a *Archiver) enqueue(e entry) {
	if a.stopped || len(a.pending) >= a.maxPending {
		a.dropped++
		a.logger.Warn("archive entry dropped",
			zap.Uint64("index", e.block.Index),
			zap.Bool("stopped", a.stopped),
			zap.Uint64("dropped_total", a.dropped),
		)
		return
	}
	a.pending = append(a.pending, e)
}

func (a *Archiver) signal() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// pump moves queued entries into the batcher until Stop is called or ctx
// is done.
func (a *Archiver) pump(ctx context.Context) {
	defer close(a.done)

	for {
		a.mu.Lock()
		queued := a.pending
		a.pending = nil
		stopped := a.stopped
		a.mu.Unlock()

		for i, e := range queued {
			if err := a.batcher.Add(ctx, e); err != nil {
				a.logger.Warn("archive entries dropped", zap.Int("count", len(queued)-i), zap.Error(err))
				break
			}
		}
		if len(queued) > 0 {
			continue
		}
		if stopped {
			return
		}

		select {
		case <-a.wake:
		case <-ctx.Done():
			return
		}
	}
}

func (a *Archiver) flush(ctx context.Context, entries []entry) error {
	blocks := make([]BlockRow, 0, len(entries))
	var txs []TransactionRow
	var outputs []OutputRow
	for _, e := range entries {
		blocks = append(blocks, e.block)
		txs = append(txs, e.txs...)
		outputs = append(outputs, e.outputs...)
	}

	if err := a.writer.InsertBlocks(ctx, blocks); err != nil {
		return fmt.Errorf("archive blocks: %w", err)
	}
	if err := a.writer.InsertTransactions(ctx, txs); err != nil {
		return fmt.Errorf("archive transactions: %w", err)
	}
	if err := a.writer.InsertOutputs(ctx, outputs); err != nil {
		return fmt.Errorf("archive outputs: %w", err)
	}
	return nil
}
