// Package migrationtest provides an in-memory chain backend for provisioning tests.
package migrationtest

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend mines every transaction the moment it is sent. Value transfers
// credit the recipient; transactions to addresses marked with SetRevert get a
// failed receipt.
type Backend struct {
	mu       sync.Mutex
	chainID  *big.Int
	nonce    uint64
	balances map[common.Address]*big.Int
	receipts map[common.Hash]*types.Receipt
	reverts  map[common.Address]bool
	sent     []*types.Transaction
	sendErr  error
}

func NewBackend(chainID int64) *Backend {
	return &Backend{
		chainID:  big.NewInt(chainID),
		balances: map[common.Address]*big.Int{},
		receipts: map[common.Hash]*types.Receipt{},
		reverts:  map[common.Address]bool{},
	}
}

func (b *Backend) SetBalance(account common.Address, balance *big.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] = new(big.Int).Set(balance)
}

func (b *Backend) SetRevert(to common.Address, revert bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reverts[to] = revert
}

// SetSendErr makes SendTransaction fail with err until reset with nil
func (b *Backend) SetSendErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sendErr = err
}

// Transactions returns every transaction sent so far, in order
func (b *Backend) Transactions() []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*types.Transaction(nil), b.sent...)
}

// SentTo returns the transactions addressed to addr, in order
func (b *Backend) SentTo(addr common.Address) []*types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []*types.Transaction
	for _, tx := range b.sent {
		if *tx.To() == addr {
			out = append(out, tx)
		}
	}
	return out
}

func (b *Backend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, nil
}

func (b *Backend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.chainID), nil
}

func (b *Backend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonce, nil
}

func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

// EstimateGas charges the intrinsic cost plus 16 per calldata byte
func (b *Backend) EstimateGas(_ context.Context, msg ethereum.CallMsg) (uint64, error) {
	return 21000 + uint64(len(msg.Data))*16, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx)
	b.nonce++

	status := types.ReceiptStatusSuccessful
	if b.reverts[*tx.To()] {
		status = types.ReceiptStatusFailed
	} else if tx.Value().Sign() > 0 {
		b.balances[*tx.To()] = new(big.Int).Add(b.balanceLocked(*tx.To()), tx.Value())
	}
	b.receipts[tx.Hash()] = &types.Receipt{Status: status, TxHash: tx.Hash(), GasUsed: tx.Gas()}
	return nil
}

func (b *Backend) BalanceAt(_ context.Context, account common.Address, _ *big.Int) (*big.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return new(big.Int).Set(b.balanceLocked(account)), nil
}

func (b *Backend) balanceLocked(account common.Address) *big.Int {
	if bal, ok := b.balances[account]; ok {
		return bal
	}
	return new(big.Int)
}
