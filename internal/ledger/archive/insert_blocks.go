package archive

import "context"

const insertBlocksQuery = `
INSERT INTO ledger_blocks (
	height,
	hash,
	previous_hash,
	timestamp,
	difficulty,
	nonce,
	tx_count,
	canonical,
	version
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, rows []BlockRow) error {
	return insert(ctx, r, "insert_blocks", blocksTable, insertBlocksQuery, rows, func(b BlockRow) []any {
		return []any{
			b.Index,
			b.Hash,
			b.PreviousHash,
			b.Timestamp,
			b.Difficulty,
			b.Nonce,
			b.TxCount,
			boolToUInt8(b.Canonical),
			b.Version,
		}
	})
}

func boolToUInt8(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
