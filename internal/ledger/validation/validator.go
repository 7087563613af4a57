// Package validation implements the structural and consensus checks for
// blocks and whole chains.
package validation

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/powledger/internal/clock"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/pow"
	"go.uber.org/zap"
)

// TimestampTolerance bounds clock drift between a block and its predecessor
// and between a block and the local clock, in seconds.
const TimestampTolerance int64 = 60

const hashLen = 64

// Validator checks blocks and chains against the consensus rules.
type Validator struct {
	processor TransactionProcessor
	now       func() int64
	logger    *zap.Logger
}

// NewValidator builds a Validator. now defaults to the wall clock when nil.
func NewValidator(processor TransactionProcessor, now func() int64, logger *zap.Logger) (*Validator, error) {
	if processor == nil {
		return nil, errors.New("transaction processor is required")
	}
	if now == nil {
		now = clock.NowUnix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{processor: processor, now: now, logger: logger}, nil
}

// IsValidBlockStructure checks the shape of a block: well-formed hex digests,
// a non-nil data sequence and a difficulty that fits in a hash.
func IsValidBlockStructure(b model.Block) error {
	if !isHexDigest(b.Hash) {
		return fmt.Errorf("%w: hash %q", ErrInvalidStructure, b.Hash)
	}
	if !isHexDigest(b.PreviousHash) {
		return fmt.Errorf("%w: previous hash %q", ErrInvalidStructure, b.PreviousHash)
	}
	if b.Data == nil {
		return fmt.Errorf("%w: data is not a sequence", ErrInvalidStructure)
	}
	if b.Difficulty > pow.MaxDifficulty {
		return fmt.Errorf("%w: difficulty %d", ErrInvalidStructure, b.Difficulty)
	}
	return nil
}

// ValidateNewBlock checks candidate against its accepted predecessor.
// It returns nil only when every rule holds.
func (v *Validator) ValidateNewBlock(candidate, predecessor model.Block) error {
	err := v.validateNewBlock(candidate, predecessor)
	if err != nil {
		v.logger.Debug("block rejected",
			zap.Uint64("index", candidate.Index),
			zap.String("hash", candidate.Hash),
			zap.Error(err),
		)
	}
	return err
}

// IsValidNewBlock is ValidateNewBlock as a predicate.
func (v *Validator) IsValidNewBlock(candidate, predecessor model.Block) bool {
	return v.ValidateNewBlock(candidate, predecessor) == nil
}

func (v *Validator) validateNewBlock(candidate, predecessor model.Block) error {
	if err := IsValidBlockStructure(candidate); err != nil {
		return err
	}
	if predecessor.Index+1 != candidate.Index {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidIndex, candidate.Index, predecessor.Index+1)
	}
	if predecessor.Hash != candidate.PreviousHash {
		return fmt.Errorf("%w: got %s, want %s", ErrInvalidPreviousHash, candidate.PreviousHash, predecessor.Hash)
	}
	if !v.isValidTimestamp(candidate, predecessor) {
		return fmt.Errorf("%w: %d after %d", ErrInvalidTimestamp, candidate.Timestamp, predecessor.Timestamp)
	}
	if model.CalculateHashForBlock(candidate) != candidate.Hash {
		return fmt.Errorf("%w: %s", ErrInvalidHash, candidate.Hash)
	}
	if !pow.HashMatchesDifficulty(candidate.Hash, candidate.Difficulty) {
		return fmt.Errorf("%w: %s, difficulty %d", ErrDifficultyNotMet, candidate.Hash, candidate.Difficulty)
	}
	return nil
}

func (v *Validator) isValidTimestamp(candidate, predecessor model.Block) bool {
	return predecessor.Timestamp-TimestampTolerance < candidate.Timestamp &&
		candidate.Timestamp-TimestampTolerance < v.now()
}

// ValidateChain checks a full chain from genesis and returns the UTXO set
// produced by its transactions. Nothing is returned for a rejected chain.
func (v *Validator) ValidateChain(chain []model.Block) (model.UTXOSet, error) {
	if len(chain) == 0 {
		return nil, ErrEmptyChain
	}
	if !model.IsGenesis(chain[0]) {
		v.logger.Warn("chain rejected: genesis mismatch", zap.String("hash", chain[0].Hash))
		return nil, ErrInvalidGenesis
	}

	utxos := make(model.UTXOSet)
	for i := range chain {
		current := chain[i]
		if i != 0 {
			if err := v.ValidateNewBlock(current, chain[i-1]); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
		}

		next, err := v.processor.ProcessTransactions(current.Data, utxos, current.Index)
		if err != nil {
			v.logger.Warn("chain rejected: invalid transactions",
				zap.Uint64("index", current.Index),
				zap.Error(err),
			)
			return nil, fmt.Errorf("block %d: %w: %w", i, ErrInvalidTransactions, err)
		}
		utxos = next
	}
	return utxos, nil
}

// IsValidChain is ValidateChain as a predicate.
func (v *Validator) IsValidChain(chain []model.Block) bool {
	_, err := v.ValidateChain(chain)
	return err == nil
}

func isHexDigest(s string) bool {
	if len(s) != hashLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
