package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/powledger/internal/clock"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/pow"
	"github.com/goodnatureofminers/powledger/internal/ledger/transaction"
	"github.com/goodnatureofminers/powledger/internal/ledger/validation"
	"go.uber.org/zap"
)

// ReceiveOutcome says what OnReceivedBlocks did with a peer's blocks.
type ReceiveOutcome int

const (
	OutcomeIgnored ReceiveOutcome = iota
	OutcomeAppended
	OutcomeQueryAll
	OutcomeReplaced
)

func (o ReceiveOutcome) String() string {
	switch o {
	case OutcomeAppended:
		return "appended"
	case OutcomeQueryAll:
		return "query_all"
	case OutcomeReplaced:
		return "replaced"
	default:
		return "ignored"
	}
}

// Node produces blocks on top of the Coordinator and exposes the ledger to
// the outside world.
type Node struct {
	coordinator *Coordinator
	miner       BlockMiner
	pool        Mempool
	wallet      Wallet
	broadcaster Broadcaster
	logger      *zap.Logger

	now        func() int64
	sleep      func(context.Context, time.Duration) error
	retryDelay time.Duration
}

// NewNode builds a Node. broadcaster is optional.
func NewNode(
	coordinator *Coordinator,
	miner BlockMiner,
	pool Mempool,
	wallet Wallet,
	broadcaster Broadcaster,
	logger *zap.Logger,
) (*Node, error) {
	if coordinator == nil {
		return nil, errors.New("coordinator is required")
	}
	if miner == nil {
		return nil, errors.New("miner is required")
	}
	if pool == nil {
		return nil, errors.New("mempool is required")
	}
	if wallet == nil {
		return nil, errors.New("wallet is required")
	}
	if broadcaster == nil {
		broadcaster = noopBroadcaster{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Node{
		coordinator: coordinator,
		miner:       miner,
		pool:        pool,
		wallet:      wallet,
		broadcaster: broadcaster,
		logger:      logger.Named("node").With(zap.String("address", wallet.Address())),
		now:         clock.NowUnix,
		sleep:       clock.SleepWithContext,
		retryDelay:  mineRetryDelay,
	}, nil
}

// MineNext mines a block carrying data on top of the current tip and appends it.
func (n *Node) MineNext(ctx context.Context, data []model.Transaction) (model.Block, error) {
	if data == nil {
		data = []model.Transaction{}
	}
	return n.mineOn(ctx, n.coordinator.Snapshot(), model.CloneTransactions(data))
}

// MineNextWithReward mines a block paying the coinbase to the local wallet
// and carrying every pooled transaction.
func (n *Node) MineNextWithReward(ctx context.Context) (model.Block, error) {
	snap := n.coordinator.Snapshot()
	data := append(
		[]model.Transaction{transaction.Coinbase(n.wallet.Address(), snap.Height()+1)},
		n.pool.Transactions()...,
	)
	return n.mineOn(ctx, snap, data)
}

// MineNextWithPayment mines a block carrying the coinbase and a payment of
// amount coins from the local wallet to address. Arguments are checked
// before any work starts.
func (n *Node) MineNextWithPayment(ctx context.Context, address string, amount float64) (model.Block, error) {
	value, err := parsePayment(address, amount)
	if err != nil {
		return model.Block{}, err
	}

	snap := n.coordinator.Snapshot()
	tx, err := n.wallet.CreateTransaction(address, value, snap.utxos, n.pool.Transactions())
	if err != nil {
		return model.Block{}, fmt.Errorf("create transaction: %w", err)
	}
	data := []model.Transaction{
		transaction.Coinbase(n.wallet.Address(), snap.Height()+1),
		tx,
	}
	return n.mineOn(ctx, snap, data)
}

func (n *Node) mineOn(ctx context.Context, snap *Snapshot, data []model.Transaction) (model.Block, error) {
	latest := snap.chain[len(snap.chain)-1]
	difficulty := pow.NextDifficulty(snap.chain)

	mineCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-snap.Done():
			cancel()
		case <-mineCtx.Done():
		}
	}()

	block, err := n.miner.FindBlock(mineCtx, latest.Index+1, latest.Hash, n.now(), data, difficulty)
	if err != nil {
		select {
		case <-snap.Done():
			err = fmt.Errorf("%w: %w", ErrStaleTip, err)
		default:
		}
		n.logger.Debug("mining stopped", zap.Uint64("index", latest.Index+1), zap.Error(err))
		return model.Block{}, fmt.Errorf("%w: %w", ErrNoBlockProduced, err)
	}

	if err := n.coordinator.AppendBlock(block); err != nil {
		return model.Block{}, fmt.Errorf("%w: %w", ErrNoBlockProduced, err)
	}
	n.broadcaster.BroadcastLatest(block)
	return block, nil
}

// SubmitTransaction builds a payment from the local wallet, pools it and
// announces the pool.
func (n *Node) SubmitTransaction(address string, amount float64) (model.Transaction, error) {
	value, err := parsePayment(address, amount)
	if err != nil {
		return model.Transaction{}, err
	}

	utxos := n.coordinator.Snapshot().utxos
	tx, err := n.wallet.CreateTransaction(address, value, utxos, n.pool.Transactions())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	if err := n.pool.Add(tx, utxos); err != nil {
		return model.Transaction{}, fmt.Errorf("add to pool: %w", err)
	}
	n.broadcaster.BroadcastTransactionPool(n.pool.Transactions())
	return tx, nil
}

// OnReceivedTransaction pools a transaction received from a peer.
func (n *Node) OnReceivedTransaction(tx model.Transaction) error {
	if err := n.pool.Add(tx, n.coordinator.Snapshot().utxos); err != nil {
		n.logger.Debug("received transaction rejected", zap.String("id", tx.ID), zap.Error(err))
		return err
	}
	n.broadcaster.BroadcastTransactionPool(n.pool.Transactions())
	return nil
}

// OnReceivedChain runs fork resolution against a full chain from a peer.
func (n *Node) OnReceivedChain(chain []model.Block) error {
	return n.coordinator.ReplaceChain(chain)
}

// OnReceivedBlocks handles blocks announced by a peer: the next block is
// appended, a lone block further ahead asks for the full chain, and a longer
// sequence goes through fork resolution.
func (n *Node) OnReceivedBlocks(blocks []model.Block) (ReceiveOutcome, error) {
	if len(blocks) == 0 {
		return OutcomeIgnored, ErrEmptyBlocks
	}
	received := blocks[len(blocks)-1]
	if err := validation.IsValidBlockStructure(received); err != nil {
		return OutcomeIgnored, err
	}

	held := n.coordinator.LatestBlock()
	if received.Index <= held.Index {
		n.logger.Debug("received blocks not ahead of local chain",
			zap.Uint64("received", received.Index),
			zap.Uint64("held", held.Index),
		)
		return OutcomeIgnored, nil
	}

	switch {
	case received.PreviousHash == held.Hash:
		if err := n.coordinator.AppendBlock(received); err != nil {
			return OutcomeIgnored, err
		}
		n.broadcaster.BroadcastLatest(received)
		return OutcomeAppended, nil
	case len(blocks) == 1:
		return OutcomeQueryAll, nil
	default:
		if err := n.coordinator.ReplaceChain(blocks); err != nil {
			return OutcomeIgnored, err
		}
		return OutcomeReplaced, nil
	}
}

// Run mines rewarded blocks until ctx is canceled.
func (n *Node) Run(ctx context.Context) error {
	n.logger.Info("mining started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		block, err := n.MineNextWithReward(ctx)
		if err == nil {
			n.logger.Info("block mined", zap.Uint64("index", block.Index), zap.String("hash", block.Hash))
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, ErrStaleTip) {
			continue
		}
		n.logger.Warn("mining failed, backing off", zap.Error(err), zap.Duration("sleep", n.retryDelay))
		if sleepErr := n.sleep(ctx, n.retryDelay); sleepErr != nil {
			return sleepErr
		}
	}
}

// GetChain returns the adopted chain.
func (n *Node) GetChain() []model.Block { return n.coordinator.Chain() }

// GetLatestBlock returns the tip.
func (n *Node) GetLatestBlock() model.Block { return n.coordinator.LatestBlock() }

// GetBlock finds an adopted block by hash.
func (n *Node) GetBlock(hash string) (model.Block, error) {
	for _, b := range n.coordinator.Snapshot().chain {
		if b.Hash == hash {
			return b.Clone(), nil
		}
	}
	return model.Block{}, fmt.Errorf("block %s: %w", hash, ErrNotFound)
}

// GetTransaction finds a confirmed transaction by id.
func (n *Node) GetTransaction(id string) (model.Transaction, error) {
	for _, b := range n.coordinator.Snapshot().chain {
		for _, tx := range b.Data {
			if tx.ID == id {
				return tx.Clone(), nil
			}
		}
	}
	return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// GetUnspentOutputs returns every unspent output, ordered.
func (n *Node) GetUnspentOutputs() []model.UnspentOutput {
	return n.coordinator.Snapshot().utxos.List()
}

// UnspentOutputsOf returns the unspent outputs owned by address.
func (n *Node) UnspentOutputsOf(address string) []model.UnspentOutput {
	return n.coordinator.UnspentOutputsOf(address)
}

// MyUnspentOutputs returns the local wallet's unspent outputs.
func (n *Node) MyUnspentOutputs() []model.UnspentOutput {
	return n.coordinator.UnspentOutputsOf(n.wallet.Address())
}

// AccountBalance returns the local wallet's balance.
func (n *Node) AccountBalance() btcutil.Amount {
	return n.coordinator.BalanceOf(n.wallet.Address())
}

// Address returns the local wallet's address.
func (n *Node) Address() string { return n.wallet.Address() }

// TransactionPool returns the pooled transactions.
func (n *Node) TransactionPool() []model.Transaction { return n.pool.Transactions() }

// IsValidBlockStructure checks the shape of a block received from outside.
func (n *Node) IsValidBlockStructure(b model.Block) error {
	return validation.IsValidBlockStructure(b)
}

func parsePayment(address string, amount float64) (btcutil.Amount, error) {
	if err := transaction.IsValidAddress(address); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	if amount > btcutil.Amount(btcutil.MaxSatoshi).ToBTC() {
		return 0, fmt.Errorf("%w: %v exceeds supply", ErrInvalidAmount, amount)
	}
	value, err := btcutil.NewAmount(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if value <= 0 || value.ToBTC() != amount {
		return 0, fmt.Errorf("%w: %v is finer than one base unit", ErrInvalidAmount, amount)
	}
	return value, nil
}
