package model

import "github.com/btcsuite/btcd/btcutil"

// TxIn spends the output TxOutIndex of transaction TxOutID.
type TxIn struct {
	TxOutID    string `json:"txOutId"`
	TxOutIndex uint64 `json:"txOutIndex"`
	Signature  string `json:"signature"`
}

// TxOut pays Amount to Address.
type TxOut struct {
	Address string         `json:"address"`
	Amount  btcutil.Amount `json:"amount"`
}

// Transaction moves value between addresses. The first transaction of every
// block is the coinbase.
type Transaction struct {
	ID     string  `json:"id"`
	TxIns  []TxIn  `json:"txIns"`
	TxOuts []TxOut `json:"txOuts"`
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	out := Transaction{ID: t.ID}
	if t.TxIns != nil {
		out.TxIns = make([]TxIn, len(t.TxIns))
		copy(out.TxIns, t.TxIns)
	}
	if t.TxOuts != nil {
		out.TxOuts = make([]TxOut, len(t.TxOuts))
		copy(out.TxOuts, t.TxOuts)
	}
	return out
}

// CloneTransactions deep copies a transaction list, preserving nil.
func CloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i := range txs {
		out[i] = txs[i].Clone()
	}
	return out
}
