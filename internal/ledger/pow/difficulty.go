package pow

import "github.com/goodnatureofminers/powledger/internal/ledger/model"

const (
	// BlockGenerationInterval is the targeted time between blocks, in seconds.
	BlockGenerationInterval int64 = 10
	// DifficultyAdjustmentInterval is the number of blocks between retargets.
	DifficultyAdjustmentInterval uint64 = 10
)

// NextDifficulty returns the difficulty required for the block following the
// last block of chain. Retargeting only happens at every
// DifficultyAdjustmentInterval-th block; in between the latest difficulty is kept.
func NextDifficulty(chain []model.Block) uint32 {
	if len(chain) == 0 {
		return 0
	}
	latest := chain[len(chain)-1]
	if latest.Index%DifficultyAdjustmentInterval == 0 && latest.Index != 0 {
		return AdjustedDifficulty(latest, chain)
	}
	return latest.Difficulty
}

// AdjustedDifficulty compares the time taken by the last retarget window with
// the expected window and moves the difficulty by one step when it is outside
// a factor of two of the expectation.
func AdjustedDifficulty(latest model.Block, chain []model.Block) uint32 {
	prevAdjustment, ok := blockAt(chain, latest.Index-DifficultyAdjustmentInterval)
	if !ok {
		return latest.Difficulty
	}

	expected := BlockGenerationInterval * int64(DifficultyAdjustmentInterval)
	taken := latest.Timestamp - prevAdjustment.Timestamp

	switch {
	case taken < expected/2:
		return prevAdjustment.Difficulty + 1
	case taken > expected*2:
		if prevAdjustment.Difficulty == 0 {
			return 0
		}
		return prevAdjustment.Difficulty - 1
	default:
		return prevAdjustment.Difficulty
	}
}

// blockAt finds the block with the given index, relying on index == position
// and falling back to a scan for chains that do not start at genesis.
func blockAt(chain []model.Block, index uint64) (model.Block, bool) {
	if index < uint64(len(chain)) && chain[index].Index == index {
		return chain[index], true
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Index == index {
			return chain[i], true
		}
	}
	return model.Block{}, false
}
