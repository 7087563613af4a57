package pow

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"go.uber.org/zap"
)

// defaultCheckEvery is how many nonces are tried between cancellation checks.
const defaultCheckEvery = 1 << 12

// Miner performs the brute-force nonce search.
type Miner struct {
	logger     *zap.Logger
	metrics    MinerMetrics
	checkEvery uint64
}

// NewMiner builds a Miner. metrics may be nil.
func NewMiner(logger *zap.Logger, metrics MinerMetrics) *Miner {
	return &Miner{
		logger:     logger,
		metrics:    metrics,
		checkEvery: defaultCheckEvery,
	}
}

// FindBlock searches nonces from 0 upward and returns the first block whose
// hash has at least difficulty leading zero bits. The search has no upper
// bound; the only error it returns is ctx.Err() once ctx is canceled.
func (m *Miner) FindBlock(
	ctx context.Context,
	index uint64,
	previousHash string,
	timestamp int64,
	data []model.Transaction,
	difficulty uint32,
) (block model.Block, err error) {
	started := time.Now()
	var attempts uint64
	defer func() {
		if m.metrics != nil {
			m.metrics.ObserveSearch(err, difficulty, attempts, started)
		}
	}()

	prefix := model.HashPrefix(index, previousHash, timestamp, data, difficulty)
	checkEvery := m.checkEvery
	if checkEvery == 0 {
		checkEvery = defaultCheckEvery
	}

	for nonce := uint64(0); ; nonce++ {
		if nonce%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				m.logger.Debug("nonce search canceled",
					zap.Uint64("index", index),
					zap.Uint64("attempts", attempts),
				)
				return model.Block{}, err
			}
		}
		attempts++
		hash := model.HashWithNonce(prefix, nonce)
		if HashMatchesDifficulty(hash, difficulty) {
			m.logger.Debug("block found",
				zap.Uint64("index", index),
				zap.Uint32("difficulty", difficulty),
				zap.Uint64("nonce", nonce),
				zap.Duration("took", time.Since(started)),
			)
			return model.Block{
				Index:        index,
				Hash:         hash,
				PreviousHash: previousHash,
				Timestamp:    timestamp,
				Data:         data,
				Difficulty:   difficulty,
				Nonce:        nonce,
			}, nil
		}
	}
}
