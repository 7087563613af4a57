package validation

import "errors"

var (
	ErrInvalidStructure    = errors.New("invalid block structure")
	ErrInvalidIndex        = errors.New("invalid index")
	ErrInvalidPreviousHash = errors.New("invalid previous hash")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrInvalidHash         = errors.New("hash does not match block content")
	ErrDifficultyNotMet    = errors.New("block difficulty not satisfied")
	ErrInvalidGenesis      = errors.New("genesis block mismatch")
	ErrInvalidTransactions = errors.New("invalid transactions")
	ErrEmptyChain          = errors.New("empty chain")
)

var reasons = []struct {
	err    error
	reason string
}{
	{ErrInvalidStructure, "structure"},
	{ErrInvalidIndex, "index"},
	{ErrInvalidPreviousHash, "previous_hash"},
	{ErrInvalidTimestamp, "timestamp"},
	{ErrInvalidHash, "hash"},
	{ErrDifficultyNotMet, "difficulty"},
	{ErrInvalidGenesis, "genesis"},
	{ErrInvalidTransactions, "transactions"},
	{ErrEmptyChain, "empty_chain"},
}

// Reason maps a rejection to a short label for metrics.
func Reason(err error) string {
	if err == nil {
		return "ok"
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}
