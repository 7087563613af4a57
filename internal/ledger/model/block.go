// Package model defines the block, transaction and unspent output types of the ledger.
package model

import (
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Block is a single link of the chain. Blocks are treated as immutable once built.
type Block struct {
	Index        uint64        `json:"index"`
	Hash         string        `json:"hash"`
	PreviousHash string        `json:"previousHash"`
	Timestamp    int64         `json:"timestamp"`
	Data         []Transaction `json:"data"`
	Difficulty   uint32        `json:"difficulty"`
	Nonce        uint64        `json:"nonce"`
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	b.Data = CloneTransactions(b.Data)
	return b
}

// CalculateHash returns the hex SHA-256 digest of the block fields.
func CalculateHash(index uint64, previousHash string, timestamp int64, data []Transaction, difficulty uint32, nonce uint64) string {
	return HashWithNonce(HashPrefix(index, previousHash, timestamp, data, difficulty), nonce)
}

// CalculateHashForBlock recomputes the digest of b from its fields.
func CalculateHashForBlock(b Block) string {
	return CalculateHash(b.Index, b.PreviousHash, b.Timestamp, b.Data, b.Difficulty, b.Nonce)
}

// HashPrefix builds the nonce-independent part of the hash preimage:
// index, previous hash, timestamp, canonical JSON of data and difficulty.
func HashPrefix(index uint64, previousHash string, timestamp int64, data []Transaction, difficulty uint32) []byte {
	// Marshal cannot fail: transactions only hold strings and integers.
	encoded, _ := json.Marshal(data)

	buf := make([]byte, 0, 64+len(previousHash)+len(encoded))
	buf = strconv.AppendUint(buf, index, 10)
	buf = append(buf, previousHash...)
	buf = strconv.AppendInt(buf, timestamp, 10)
	buf = append(buf, encoded...)
	buf = strconv.AppendUint(buf, uint64(difficulty), 10)
	return buf
}

// HashWithNonce completes a preimage built by HashPrefix and digests it.
func HashWithNonce(prefix []byte, nonce uint64) string {
	buf := make([]byte, len(prefix), len(prefix)+20)
	copy(buf, prefix)
	buf = strconv.AppendUint(buf, nonce, 10)
	return hex.EncodeToString(chainhash.HashB(buf))
}
