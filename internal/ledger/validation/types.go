package validation

import "github.com/goodnatureofminers/powledger/internal/ledger/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransactionProcessor applies block transactions to a UTXO set. It must not
	// modify the input set and returns an error for any invalid transaction.
	TransactionProcessor interface {
		ProcessTransactions(txs []model.Transaction, utxos model.UTXOSet, blockIndex uint64) (model.UTXOSet, error)
	}
)
