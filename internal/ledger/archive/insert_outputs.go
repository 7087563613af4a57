package archive

import "context"

const insertOutputsQuery = `
INSERT INTO ledger_transaction_outputs (
	block_height,
	tx_index,
	output_index,
	txid,
	address,
	amount,
	version
) VALUES`

// InsertOutputs stores transaction output rows in ClickHouse.
func (r *Repository) InsertOutputs(ctx context.Context, rows []OutputRow) error {
	return insert(ctx, r, "insert_outputs", outputsTable, insertOutputsQuery, rows, func(o OutputRow) []any {
		return []any{
			o.BlockIndex,
			o.TxIndex,
			o.OutputIndex,
			o.TxID,
			o.Address,
			o.Amount,
			o.Version,
		}
	})
}
