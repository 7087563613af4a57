package model

import (
	"sort"

	"github.com/btcsuite/btcd/btcutil"
)

// OutPoint identifies an output by its transaction id and output index.
type OutPoint struct {
	TxID  string `json:"txOutId"`
	Index uint64 `json:"txOutIndex"`
}

// UnspentOutput is a spendable output record.
type UnspentOutput struct {
	OutPoint
	Address string         `json:"address"`
	Amount  btcutil.Amount `json:"amount"`
}

// UTXOSet maps outpoints to their unspent outputs.
// A set adopted by the ledger is never mutated; Clone before changing it.
type UTXOSet map[OutPoint]UnspentOutput

// NewUTXOSet builds a set from the given outputs.
func NewUTXOSet(outputs ...UnspentOutput) UTXOSet {
	set := make(UTXOSet, len(outputs))
	for _, o := range outputs {
		set[o.OutPoint] = o
	}
	return set
}

// Clone returns an independent copy of the set.
func (s UTXOSet) Clone() UTXOSet {
	out := make(UTXOSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Get returns the output for the outpoint.
func (s UTXOSet) Get(txID string, index uint64) (UnspentOutput, bool) {
	o, ok := s[OutPoint{TxID: txID, Index: index}]
	return o, ok
}

// Has reports whether the outpoint is unspent.
func (s UTXOSet) Has(txID string, index uint64) bool {
	_, ok := s.Get(txID, index)
	return ok
}

// Len returns the number of unspent outputs.
func (s UTXOSet) Len() int { return len(s) }

// List returns the outputs ordered by transaction id and index.
func (s UTXOSet) List() []UnspentOutput {
	out := make([]UnspentOutput, 0, len(s))
	for _, v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TxID != out[j].TxID {
			return out[i].TxID < out[j].TxID
		}
		return out[i].Index < out[j].Index
	})
	return out
}
