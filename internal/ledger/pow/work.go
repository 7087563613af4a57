package pow

import (
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/holiman/uint256"
)

// BlockWork returns 2^difficulty, saturating at the uint256 maximum.
func BlockWork(difficulty uint32) *uint256.Int {
	if difficulty >= MaxDifficulty {
		return new(uint256.Int).SetAllOne()
	}
	return new(uint256.Int).Lsh(uint256.NewInt(1), uint(difficulty))
}

// CumulativeDifficulty sums 2^difficulty over the chain. It is the fork-choice
// metric: the chain with more accumulated work wins regardless of length.
func CumulativeDifficulty(chain []model.Block) *uint256.Int {
	total := new(uint256.Int)
	for _, b := range chain {
		if _, overflow := total.AddOverflow(total, BlockWork(b.Difficulty)); overflow {
			return total.SetAllOne()
		}
	}
	return total
}
