package model

import "github.com/btcsuite/btcd/btcutil"

// Genesis protocol parameters. Every node must use exactly these values.
const (
	GenesisTimestamp int64 = 1465154705
	GenesisAddress         = "04bfcab8722991ae774db48f934ca79cfb7dd991229153b9f732ba5334aafcd8e7266e47076996b55a14bf9913ee3145ce0cfc1372ada8ada74bd287450313534a"
	GenesisTxID            = "d6363186f44b904c334004ae98d24bc0a91e1cc5ad25902956a717be71f82ff4"
	GenesisHash            = "3374c7fb0edad6b3f10d540c56555c90769bbca9c6c174ace1843cdfa29fb77e"

	GenesisAmount = 50 * btcutil.SatoshiPerBitcoin
)

// Genesis returns a fresh copy of the genesis block.
func Genesis() Block {
	return Block{
		Index:        0,
		Hash:         GenesisHash,
		PreviousHash: "",
		Timestamp:    GenesisTimestamp,
		Data: []Transaction{
			{
				ID:     GenesisTxID,
				TxIns:  []TxIn{{TxOutID: "", TxOutIndex: 0, Signature: ""}},
				TxOuts: []TxOut{{Address: GenesisAddress, Amount: btcutil.Amount(GenesisAmount)}},
			},
		},
		Difficulty: 0,
		Nonce:      0,
	}
}

// IsGenesis reports whether b equals the genesis block in every field.
func IsGenesis(b Block) bool {
	return BlocksEqual(b, Genesis())
}

// BlocksEqual compares two blocks field by field, including their data.
func BlocksEqual(a, b Block) bool {
	if a.Index != b.Index || a.Hash != b.Hash || a.PreviousHash != b.PreviousHash ||
		a.Timestamp != b.Timestamp || a.Difficulty != b.Difficulty || a.Nonce != b.Nonce {
		return false
	}
	if (a.Data == nil) != (b.Data == nil) || len(a.Data) != len(b.Data) {
		return false
	}
	for i := range a.Data {
		if !transactionsEqual(a.Data[i], b.Data[i]) {
			return false
		}
	}
	return true
}

func transactionsEqual(a, b Transaction) bool {
	if a.ID != b.ID || len(a.TxIns) != len(b.TxIns) || len(a.TxOuts) != len(b.TxOuts) {
		return false
	}
	if (a.TxIns == nil) != (b.TxIns == nil) || (a.TxOuts == nil) != (b.TxOuts == nil) {
		return false
	}
	for i := range a.TxIns {
		if a.TxIns[i] != b.TxIns[i] {
			return false
		}
	}
	for i := range a.TxOuts {
		if a.TxOuts[i] != b.TxOuts[i] {
			return false
		}
	}
	return true
}
