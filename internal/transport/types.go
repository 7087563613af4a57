//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package transport

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/powledger/internal/ledger/model"
	"github.com/goodnatureofminers/powledger/internal/ledger/service"
)

type (
	// Ledger is the node surface served over HTTP.
	Ledger interface {
		GetChain() []model.Block
		GetLatestBlock() model.Block
		GetBlock(hash string) (model.Block, error)
		GetTransaction(id string) (model.Transaction, error)
		GetUnspentOutputs() []model.UnspentOutput
		UnspentOutputsOf(address string) []model.UnspentOutput
		MyUnspentOutputs() []model.UnspentOutput
		AccountBalance() btcutil.Amount
		Address() string
		TransactionPool() []model.Transaction
		MineNext(ctx context.Context, data []model.Transaction) (model.Block, error)
		MineNextWithReward(ctx context.Context) (model.Block, error)
		MineNextWithPayment(ctx context.Context, address string, amount float64) (model.Block, error)
		SubmitTransaction(address string, amount float64) (model.Transaction, error)
		OnReceivedChain(chain []model.Block) error
		OnReceivedBlocks(blocks []model.Block) (service.ReceiveOutcome, error)
		OnReceivedTransaction(tx model.Transaction) error
	}
)
