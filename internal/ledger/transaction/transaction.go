// Package transaction implements transaction ids, signing, validation and
// the UTXO transition applied for every block.
package transaction

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
)

// CoinbaseAmount is the reward paid by the coinbase transaction of every block.
const CoinbaseAmount = btcutil.Amount(50 * btcutil.SatoshiPerBitcoin)

const addressLen = 130

var (
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidStructure = errors.New("invalid transaction structure")
	ErrInvalidID        = errors.New("transaction id mismatch")
	ErrMissingOutput    = errors.New("referenced output not found")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUnbalanced       = errors.New("inputs and outputs do not balance")
	ErrInvalidCoinbase  = errors.New("invalid coinbase transaction")
	ErrDuplicateInput   = errors.New("duplicate input")
	ErrKeyMismatch      = errors.New("key does not own referenced output")
	ErrAmountOverflow   = errors.New("amount exceeds supply")
)

// ID computes the transaction id from its inputs' outpoints and its outputs.
// Signatures are not part of the id.
func ID(tx model.Transaction) string {
	buf := make([]byte, 0, 64*len(tx.TxIns)+150*len(tx.TxOuts))
	for _, in := range tx.TxIns {
		buf = append(buf, in.TxOutID...)
		buf = strconv.AppendUint(buf, in.TxOutIndex, 10)
	}
	for _, out := range tx.TxOuts {
		buf = append(buf, out.Address...)
		buf = strconv.AppendInt(buf, int64(out.Amount), 10)
	}
	return hex.EncodeToString(chainhash.HashB(buf))
}

// IsValidAddress checks that addr is a hex encoded uncompressed secp256k1
// public key.
func IsValidAddress(addr string) error {
	if len(addr) != addressLen {
		return fmt.Errorf("%w: length %d", ErrInvalidAddress, len(addr))
	}
	if addr[:2] != "04" {
		return fmt.Errorf("%w: must start with 04", ErrInvalidAddress)
	}
	raw, err := hex.DecodeString(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if _, err := btcec.ParsePubKey(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return nil
}

// AddressFromKey returns the address owned by key.
func AddressFromKey(key *btcec.PrivateKey) string {
	return hex.EncodeToString(key.PubKey().SerializeUncompressed())
}

// Coinbase builds the reward transaction for the block at blockIndex.
func Coinbase(address string, blockIndex uint64) model.Transaction {
	tx := model.Transaction{
		TxIns:  []model.TxIn{{TxOutID: "", TxOutIndex: blockIndex, Signature: ""}},
		TxOuts: []model.TxOut{{Address: address, Amount: CoinbaseAmount}},
	}
	tx.ID = ID(tx)
	return tx
}

// SignInput signs input i of tx with key. The key must own the output the input spends.
func SignInput(tx model.Transaction, i int, key *btcec.PrivateKey, utxos model.UTXOSet) (string, error) {
	if i < 0 || i >= len(tx.TxIns) {
		return "", fmt.Errorf("%w: input %d out of range", ErrInvalidStructure, i)
	}
	in := tx.TxIns[i]
	referenced, ok := utxos.Get(in.TxOutID, in.TxOutIndex)
	if !ok {
		return "", fmt.Errorf("%w: %s:%d", ErrMissingOutput, in.TxOutID, in.TxOutIndex)
	}
	if referenced.Address != AddressFromKey(key) {
		return "", ErrKeyMismatch
	}
	digest, err := hex.DecodeString(tx.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return hex.EncodeToString(ecdsa.Sign(key, digest).Serialize()), nil
}

// ValidateStructure checks the static shape of a transaction.
func ValidateStructure(tx model.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidStructure)
	}
	if tx.TxIns == nil || tx.TxOuts == nil {
		return fmt.Errorf("%w: inputs and outputs must be lists", ErrInvalidStructure)
	}
	for _, out := range tx.TxOuts {
		if err := IsValidAddress(out.Address); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStructure, err)
		}
		if out.Amount <= 0 {
			return fmt.Errorf("%w: non-positive amount %d", ErrInvalidStructure, out.Amount)
		}
		if out.Amount > btcutil.MaxSatoshi {
			return fmt.Errorf("%w: %w: %d", ErrInvalidStructure, ErrAmountOverflow, out.Amount)
		}
	}
	return nil
}

// addAmount sums two non-negative amounts, failing once the total passes
// btcutil.MaxSatoshi.
func addAmount(total, amount btcutil.Amount) (btcutil.Amount, error) {
	if amount < 0 || amount > btcutil.MaxSatoshi-total {
		return 0, fmt.Errorf("%w: %d + %d", ErrAmountOverflow, total, amount)
	}
	return total + amount, nil
}

// ValidateTransaction checks a regular (non-coinbase) transaction against utxos.
func ValidateTransaction(tx model.Transaction, utxos model.UTXOSet) error {
	if err := ValidateStructure(tx); err != nil {
		return err
	}
	if ID(tx) != tx.ID {
		return fmt.Errorf("%w: %s", ErrInvalidID, tx.ID)
	}
	if len(tx.TxIns) == 0 {
		return fmt.Errorf("%w: no inputs", ErrInvalidStructure)
	}

	digest, err := hex.DecodeString(tx.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	var totalIn btcutil.Amount
	seen := make(map[model.OutPoint]struct{}, len(tx.TxIns))
	for _, in := range tx.TxIns {
		outPoint := model.OutPoint{TxID: in.TxOutID, Index: in.TxOutIndex}
		if _, dup := seen[outPoint]; dup {
			return fmt.Errorf("%w: %s:%d", ErrDuplicateInput, in.TxOutID, in.TxOutIndex)
		}
		seen[outPoint] = struct{}{}

		referenced, ok := utxos.Get(in.TxOutID, in.TxOutIndex)
		if !ok {
			return fmt.Errorf("%w: %s:%d", ErrMissingOutput, in.TxOutID, in.TxOutIndex)
		}
		if err := verifySignature(referenced.Address, in.Signature, digest); err != nil {
			return fmt.Errorf("input %s:%d: %w", in.TxOutID, in.TxOutIndex, err)
		}
		if totalIn, err = addAmount(totalIn, referenced.Amount); err != nil {
			return fmt.Errorf("%w: inputs: %w", ErrUnbalanced, err)
		}
	}

	var totalOut btcutil.Amount
	for _, out := range tx.TxOuts {
		if totalOut, err = addAmount(totalOut, out.Amount); err != nil {
			return fmt.Errorf("%w: outputs: %w", ErrUnbalanced, err)
		}
	}
	if totalIn != totalOut {
		return fmt.Errorf("%w: in %d, out %d", ErrUnbalanced, totalIn, totalOut)
	}
	return nil
}

// ValidateCoinbase checks the reward transaction of the block at blockIndex.
func ValidateCoinbase(tx model.Transaction, blockIndex uint64) error {
	if err := ValidateStructure(tx); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCoinbase, err)
	}
	if ID(tx) != tx.ID {
		return fmt.Errorf("%w: %w", ErrInvalidCoinbase, ErrInvalidID)
	}
	if len(tx.TxIns) != 1 {
		return fmt.Errorf("%w: want one input, got %d", ErrInvalidCoinbase, len(tx.TxIns))
	}
	if tx.TxIns[0].TxOutIndex != blockIndex {
		return fmt.Errorf("%w: input index %d, block %d", ErrInvalidCoinbase, tx.TxIns[0].TxOutIndex, blockIndex)
	}
	if len(tx.TxOuts) != 1 {
		return fmt.Errorf("%w: want one output, got %d", ErrInvalidCoinbase, len(tx.TxOuts))
	}
	if tx.TxOuts[0].Amount != CoinbaseAmount {
		return fmt.Errorf("%w: amount %d", ErrInvalidCoinbase, tx.TxOuts[0].Amount)
	}
	return nil
}

func verifySignature(address, signature string, digest []byte) error {
	rawKey, err := hex.DecodeString(address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	pub, err := btcec.ParsePubKey(rawKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	rawSig, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	sig, err := ecdsa.ParseDERSignature(rawSig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !sig.Verify(digest, pub) {
		return ErrInvalidSignature
	}
	return nil
}

// UnspentOutputsOf returns the outputs in utxos owned by address.
func UnspentOutputsOf(address string, utxos model.UTXOSet) []model.UnspentOutput {
	out := make([]model.UnspentOutput, 0)
	for _, o := range utxos.List() {
		if o.Address == address {
			out = append(out, o)
		}
	}
	return out
}

// Balance sums the outputs in utxos owned by address, capped at
// btcutil.MaxSatoshi.
func Balance(address string, utxos model.UTXOSet) btcutil.Amount {
	var total btcutil.Amount
	for _, o := range utxos {
		if o.Address != address {
			continue
		}
		sum, err := addAmount(total, o.Amount)
		if err != nil {
			return btcutil.MaxSatoshi
		}
		total = sum
	}
	return total
}
