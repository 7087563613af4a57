package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainValidator interface {
		ValidateNewBlock(candidate, predecessor model.Block) error
		ValidateChain(chain []model.Block) (model.UTXOSet, error)
	}
	TransactionProcessor interface {
		ProcessTransactions(txs []model.Transaction, utxos model.UTXOSet, blockIndex uint64) (model.UTXOSet, error)
	}
	BlockMiner interface {
		FindBlock(
			ctx context.Context,
			index uint64,
			previousHash string,
			timestamp int64,
			data []model.Transaction,
			difficulty uint32,
		) (model.Block, error)
	}

	Mempool interface {
		Add(tx model.Transaction, utxos model.UTXOSet) error
		Transactions() []model.Transaction
		Update(utxos model.UTXOSet)
	}
	Wallet interface {
		Address() string
		CreateTransaction(receiver string, amount btcutil.Amount, utxos model.UTXOSet, pool []model.Transaction) (model.Transaction, error)
	}

	// Broadcaster forwards ledger news to peers.
	Broadcaster interface {
		BroadcastLatest(block model.Block)
		BroadcastTransactionPool(txs []model.Transaction)
	}
	// Observer is told about every adopted change, in adoption order, while
	// the ledger write lock is held. Implementations must not call back into
	// the Coordinator.
	Observer interface {
		BlockAppended(block model.Block)
		ChainReplaced(chain []model.Block)
	}

	LedgerMetrics interface {
		ObserveAppend(reason string, started time.Time)
		ObserveReplace(reason string, started time.Time)
		SetTip(height uint64, cumulativeDifficulty float64)
	}
)
