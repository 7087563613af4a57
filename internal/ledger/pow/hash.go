// Package pow implements the proof-of-work rules: difficulty retargeting,
// the nonce search and the cumulative work used for fork choice.
package pow

import (
	"encoding/hex"
	"math/bits"
)

// MaxDifficulty is the number of bits in a block hash.
const MaxDifficulty = 256

// LeadingZeroBits counts the leading zero bits of a hex digest.
func LeadingZeroBits(hash string) (int, error) {
	raw, err := hex.DecodeString(hash)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, b := range raw {
		if b != 0 {
			return count + bits.LeadingZeros8(b), nil
		}
		count += 8
	}
	return count, nil
}

// HashMatchesDifficulty reports whether the first difficulty bits of the
// hex digest are zero. Difficulty 0 accepts any hash.
func HashMatchesDifficulty(hash string, difficulty uint32) bool {
	if difficulty == 0 {
		return true
	}
	if difficulty > MaxDifficulty {
		return false
	}
	fullBytes := int(difficulty / 8)
	remainBits := difficulty % 8
	needed := fullBytes
	if remainBits > 0 {
		needed++
	}
	if len(hash) < needed*2 {
		return false
	}

	raw, err := hex.DecodeString(hash[:needed*2])
	if err != nil {
		return false
	}
	for i := 0; i < fullBytes; i++ {
		if raw[i] != 0 {
			return false
		}
	}
	if remainBits > 0 {
		mask := byte(0xFF << (8 - remainBits))
		if raw[fullBytes]&mask != 0 {
			return false
		}
	}
	return true
}
