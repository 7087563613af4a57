package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
)

// ErrMalformed is returned by the decoders for payloads that do not match the wire schema.
var ErrMalformed = errors.New("malformed payload")

type wireTxIn struct {
	TxOutID    *string `json:"txOutId"`
	TxOutIndex *uint64 `json:"txOutIndex"`
	Signature  *string `json:"signature"`
}

type wireTxOut struct {
	Address *string `json:"address"`
	Amount  *int64  `json:"amount"`
}

type wireTransaction struct {
	ID     *string      `json:"id"`
	TxIns  *[]wireTxIn  `json:"txIns"`
	TxOuts *[]wireTxOut `json:"txOuts"`
}

type wireBlock struct {
	Index        *uint64            `json:"index"`
	Hash         *string            `json:"hash"`
	PreviousHash *string            `json:"previousHash"`
	Timestamp    *int64             `json:"timestamp"`
	Data         *[]wireTransaction `json:"data"`
	Difficulty   *uint32            `json:"difficulty"`
	Nonce        *uint64            `json:"nonce"`
}

// DecodeBlock strictly decodes a single block: every field is required and
// unknown fields are rejected.
func DecodeBlock(r io.Reader) (Block, error) {
	var w wireBlock
	if err := decodeStrict(r, &w); err != nil {
		return Block{}, err
	}
	return w.toBlock()
}

// DecodeChain strictly decodes a list of blocks.
func DecodeChain(r io.Reader) ([]Block, error) {
	var ws []wireBlock
	if err := decodeStrict(r, &ws); err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, fmt.Errorf("%w: chain is null", ErrMalformed)
	}
	chain := make([]Block, 0, len(ws))
	for i := range ws {
		b, err := ws[i].toBlock()
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		chain = append(chain, b)
	}
	return chain, nil
}

// DecodeTransaction strictly decodes a single transaction.
func DecodeTransaction(r io.Reader) (Transaction, error) {
	var w wireTransaction
	if err := decodeStrict(r, &w); err != nil {
		return Transaction{}, err
	}
	return w.toTransaction()
}

// DecodeTransactions strictly decodes a list of transactions.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var ws []wireTransaction
	if err := decodeStrict(r, &ws); err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, fmt.Errorf("%w: transactions are null", ErrMalformed)
	}
	txs := make([]Transaction, 0, len(ws))
	for i := range ws {
		tx, err := ws[i].toTransaction()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// UnmarshalBlock is DecodeBlock over a byte slice.
func UnmarshalBlock(data []byte) (Block, error) {
	return DecodeBlock(bytes.NewReader(data))
}

func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrMalformed)
	}
	return nil
}

func (w wireBlock) toBlock() (Block, error) {
	switch {
	case w.Index == nil:
		return Block{}, missing("index")
	case w.Hash == nil:
		return Block{}, missing("hash")
	case w.PreviousHash == nil:
		return Block{}, missing("previousHash")
	case w.Timestamp == nil:
		return Block{}, missing("timestamp")
	case w.Data == nil:
		return Block{}, missing("data")
	case w.Difficulty == nil:
		return Block{}, missing("difficulty")
	case w.Nonce == nil:
		return Block{}, missing("nonce")
	}

	data := make([]Transaction, 0, len(*w.Data))
	for i, wt := range *w.Data {
		tx, err := wt.toTransaction()
		if err != nil {
			return Block{}, fmt.Errorf("data[%d]: %w", i, err)
		}
		data = append(data, tx)
	}

	return Block{
		Index:        *w.Index,
		Hash:         *w.Hash,
		PreviousHash: *w.PreviousHash,
		Timestamp:    *w.Timestamp,
		Data:         data,
		Difficulty:   *w.Difficulty,
		Nonce:        *w.Nonce,
	}, nil
}

func (w wireTransaction) toTransaction() (Transaction, error) {
	switch {
	case w.ID == nil:
		return Transaction{}, missing("id")
	case w.TxIns == nil:
		return Transaction{}, missing("txIns")
	case w.TxOuts == nil:
		return Transaction{}, missing("txOuts")
	}

	tx := Transaction{
		ID:     *w.ID,
		TxIns:  make([]TxIn, 0, len(*w.TxIns)),
		TxOuts: make([]TxOut, 0, len(*w.TxOuts)),
	}
	for _, in := range *w.TxIns {
		if in.TxOutID == nil || in.TxOutIndex == nil || in.Signature == nil {
			return Transaction{}, missing("txIn field")
		}
		tx.TxIns = append(tx.TxIns, TxIn{TxOutID: *in.TxOutID, TxOutIndex: *in.TxOutIndex, Signature: *in.Signature})
	}
	for _, out := range *w.TxOuts {
		if out.Address == nil || out.Amount == nil {
			return Transaction{}, missing("txOut field")
		}
		tx.TxOuts = append(tx.TxOuts, TxOut{Address: *out.Address, Amount: btcutil.Amount(*out.Amount)})
	}
	return tx, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrMalformed, field)
}
