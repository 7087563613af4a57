package archive

import "context"

const insertTransactionsQuery = `
INSERT INTO ledger_transactions (
	block_height,
	tx_index,
	id,
	input_count,
	output_count,
	coinbase,
	version
) VALUES`

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, rows []TransactionRow) error {
	return insert(ctx, r, "insert_transactions", transactionsTable, insertTransactionsQuery, rows, func(t TransactionRow) []any {
		return []any{
			t.BlockIndex,
			t.TxIndex,
			t.ID,
			t.InputCount,
			t.OutputCount,
			boolToUInt8(t.Coinbase),
			t.Version,
		}
	})
}
