package transaction

import (
	"context"
	"fmt"
	"runtime"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/pkg/workerpool"
)

// Processor applies the transactions of a block to a UTXO set.
type Processor struct {
	workerCount int
}

// NewProcessor builds a Processor that verifies signatures on up to
// workerCount goroutines; workerCount <= 0 uses GOMAXPROCS.
func NewProcessor(workerCount int) *Processor {
	if workerCount <= 0 {
		workerCount = runtime.GOMAXPROCS(0)
	}
	return &Processor{workerCount: workerCount}
}

// ProcessTransactions validates txs as the content of block blockIndex and
// returns the resulting UTXO set. utxos is never modified; on error no set is
// returned.
func (p *Processor) ProcessTransactions(txs []model.Transaction, utxos model.UTXOSet, blockIndex uint64) (model.UTXOSet, error) {
	for i := range txs {
		if err := ValidateStructure(txs[i]); err != nil {
			return nil, fmt.Errorf("tx %d: %w", i, err)
		}
	}
	if err := p.validateBlockTransactions(txs, utxos, blockIndex); err != nil {
		return nil, err
	}
	return UpdateUnspentOutputs(txs, utxos), nil
}

func (p *Processor) validateBlockTransactions(txs []model.Transaction, utxos model.UTXOSet, blockIndex uint64) error {
	if len(txs) == 0 {
		return fmt.Errorf("%w: block has no transactions", ErrInvalidCoinbase)
	}
	if err := ValidateCoinbase(txs[0], blockIndex); err != nil {
		return err
	}

	seen := make(map[model.OutPoint]struct{})
	for _, tx := range txs {
		for _, in := range tx.TxIns {
			op := model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex}
			if _, dup := seen[op]; dup {
				return fmt.Errorf("%w: %s:%d", ErrDuplicateInput, in.TxOutID, in.TxOutIndex)
			}
			seen[op] = struct{}{}
		}
	}

	regular := txs[1:]
	switch len(regular) {
	case 0:
		return nil
	case 1:
		return ValidateTransaction(regular[0], utxos)
	}

	workers := p.workerCount
	if workers > len(regular) {
		workers = len(regular)
	}
	return workerpool.Process(context.Background(), workers, regular, func(_ context.Context, tx model.Transaction) error {
		if err := ValidateTransaction(tx, utxos); err != nil {
			return fmt.Errorf("tx %s: %w", tx.ID, err)
		}
		return nil
	}, nil)
}

// UpdateUnspentOutputs returns utxos minus the outputs spent by txs plus the
// outputs they create. The input set is left untouched.
func UpdateUnspentOutputs(txs []model.Transaction, utxos model.UTXOSet) model.UTXOSet {
	next := utxos.Clone()
	for _, tx := range txs {
		for _, in := range tx.TxIns {
			delete(next, model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex})
		}
	}
	for _, tx := range txs {
		for i, out := range tx.TxOuts {
			op := model.OutPoint{TxID: tx.ID, Index: uint64(i)}
			next[op] = model.UnspentOutput{OutPoint: op, Address: out.Address, Amount: out.Amount}
		}
	}
	return next
}
