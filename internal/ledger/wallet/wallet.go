// Package wallet holds the node's key and builds signed payments from it.
package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/transaction"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidKey        = errors.New("invalid private key")
)

// Wallet is a single secp256k1 key and the address derived from it.
type Wallet struct {
	key     *btcec.PrivateKey
	address string
}

// Generate creates a wallet with a fresh random key.
func Generate() (*Wallet, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return fromKey(key), nil
}

// FromHex restores a wallet from a hex encoded private key.
func FromHex(s string) (*Wallet, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidKey, len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(raw)
	return fromKey(key), nil
}

// LoadOrCreate reads the key stored at path, generating and storing a new
// one when the file does not exist.
func LoadOrCreate(path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return FromHex(string(data))
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read wallet key: %w", err)
	}

	w, err := Generate()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create wallet dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(w.PrivateKeyHex()), 0o600); err != nil {
		return nil, fmt.Errorf("write wallet key: %w", err)
	}
	return w, nil
}

func fromKey(key *btcec.PrivateKey) *Wallet {
	return &Wallet{key: key, address: transaction.AddressFromKey(key)}
}

// Address returns the public address of the wallet.
func (w *Wallet) Address() string { return w.address }

// PrivateKeyHex returns the hex encoded private key.
func (w *Wallet) PrivateKeyHex() string { return hex.EncodeToString(w.key.Serialize()) }

// Balance sums the wallet's outputs in utxos.
func (w *Wallet) Balance(utxos model.UTXOSet) btcutil.Amount {
	return transaction.Balance(w.address, utxos)
}

// UnspentOutputs lists the wallet's outputs in utxos.
func (w *Wallet) UnspentOutputs(utxos model.UTXOSet) []model.UnspentOutput {
	return transaction.UnspentOutputsOf(w.address, utxos)
}

// CreateTransaction builds a signed payment of amount to receiver. Outputs
// already spent by transactions in pool are not reused. Any surplus is paid
// back to the wallet as a change output.
func (w *Wallet) CreateTransaction(
	receiver string,
	amount btcutil.Amount,
	utxos model.UTXOSet,
	pool []model.Transaction,
) (model.Transaction, error) {
	if err := transaction.IsValidAddress(receiver); err != nil {
		return model.Transaction{}, err
	}
	if amount <= 0 {
		return model.Transaction{}, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	inPool := make(map[model.OutPoint]struct{})
	for _, tx := range pool {
		for _, in := range tx.TxIns {
			inPool[model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex}] = struct{}{}
		}
	}

	var (
		selected []model.UnspentOutput
		total    btcutil.Amount
	)
	for _, o := range w.UnspentOutputs(utxos) {
		if _, spent := inPool[o.OutPoint]; spent {
			continue
		}
		selected = append(selected, o)
		total += o.Amount
		if total >= amount {
			break
		}
	}
	if total < amount {
		return model.Transaction{}, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, total, amount)
	}

	tx := model.Transaction{
		TxIns:  make([]model.TxIn, 0, len(selected)),
		TxOuts: []model.TxOut{{Address: receiver, Amount: amount}},
	}
	for _, o := range selected {
		tx.TxIns = append(tx.TxIns, model.TxIn{TxOutID: o.TxID, TxOutIndex: o.Index})
	}
	if change := total - amount; change > 0 {
		tx.TxOuts = append(tx.TxOuts, model.TxOut{Address: w.address, Amount: change})
	}
	tx.ID = transaction.ID(tx)

	for i := range tx.TxIns {
		sig, err := transaction.SignInput(tx, i, w.key, utxos)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("sign input %d: %w", i, err)
		}
		tx.TxIns[i].Signature = sig
	}
	return tx, nil
}
