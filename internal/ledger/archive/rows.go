package archive

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/pkg/safe"
)

// BlockRow is one row of ledger_blocks. Rows with the highest Version win
// per index; Canonical is false for indexes cut off by a shorter chain.
type BlockRow struct {
	Index        uint64
	Hash         string
	PreviousHash string
	Timestamp    time.Time
	Difficulty   uint32
	Nonce        uint64
	TxCount      uint32
	Canonical    bool
	Version      uint64
}

// TransactionRow is one row of ledger_transactions.
type TransactionRow struct {
	BlockIndex  uint64
	TxIndex     uint32
	ID          string
	InputCount  uint32
	OutputCount uint32
	Coinbase    bool
	Version     uint64
}

// OutputRow is one row of ledger_transaction_outputs.
type OutputRow struct {
	BlockIndex  uint64
	TxIndex     uint32
	OutputIndex uint32
	TxID        string
	Address     string
	Amount      uint64
	Version     uint64
}

// entry holds every row produced by one block.
type entry struct {
	block   BlockRow
	txs     []TransactionRow
	outputs []OutputRow
}

func entryFromBlock(b model.Block, version uint64) (entry, error) {
	txCount, err := safe.Uint32(len(b.Data))
	if err != nil {
		return entry{}, fmt.Errorf("block %d tx count: %w", b.Index, err)
	}

	e := entry{
		block: BlockRow{
			Index:        b.Index,
			Hash:         b.Hash,
			PreviousHash: b.PreviousHash,
			Timestamp:    time.Unix(b.Timestamp, 0).UTC(),
			Difficulty:   b.Difficulty,
			Nonce:        b.Nonce,
			TxCount:      txCount,
			Canonical:    true,
			Version:      version,
		},
		txs: make([]TransactionRow, 0, len(b.Data)),
	}

	for i, tx := range b.Data {
		txIndex, err := safe.Uint32(i)
		if err != nil {
			return entry{}, fmt.Errorf("block %d tx index: %w", b.Index, err)
		}
		inputs, err := safe.Uint32(len(tx.TxIns))
		if err != nil {
			return entry{}, fmt.Errorf("tx %s input count: %w", tx.ID, err)
		}
		outputs, err := safe.Uint32(len(tx.TxOuts))
		if err != nil {
			return entry{}, fmt.Errorf("tx %s output count: %w", tx.ID, err)
		}
		e.txs = append(e.txs, TransactionRow{
			BlockIndex:  b.Index,
			TxIndex:     txIndex,
			ID:          tx.ID,
			InputCount:  inputs,
			OutputCount: outputs,
			Coinbase:    i == 0,
			Version:     version,
		})

		for j, out := range tx.TxOuts {
			outputIndex, err := safe.Uint32(j)
			if err != nil {
				return entry{}, fmt.Errorf("tx %s output index: %w", tx.ID, err)
			}
			amount, err := safe.Uint64(int64(out.Amount))
			if err != nil {
				return entry{}, fmt.Errorf("tx %s output %d amount: %w", tx.ID, j, err)
			}
			e.outputs = append(e.outputs, OutputRow{
				BlockIndex:  b.Index,
				TxIndex:     txIndex,
				OutputIndex: outputIndex,
				TxID:        tx.ID,
				Address:     out.Address,
				Amount:      amount,
				Version:     version,
			})
		}
	}
	return e, nil
}

// orphanEntry marks index as no longer part of the adopted chain.
func orphanEntry(index, version uint64) entry {
	return entry{block: BlockRow{Index: index, Timestamp: time.Unix(0, 0).UTC(), Version: version}}
}
