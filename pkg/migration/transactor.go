package migration

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/solo-margin/solo-tools/pkg/codec"
	"github.com/solo-margin/solo-tools/pkg/common/iface"
)

// Backend is the chain access provisioning needs. *ethclient.Client satisfies it.
type Backend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

var _ Backend = (*ethclient.Client)(nil)

// Transactor signs legacy transactions with a single key and waits for them to be mined
type Transactor struct {
	backend Backend
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	logger  iface.Logger
}

func NewTransactor(ctx context.Context, backend Backend, privateKeyHex string, logger iface.Logger) (*Transactor, error) {
	key, err := crypto.HexToECDSA(codec.StripHexPrefix(privateKeyHex))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	return &Transactor{
		backend: backend,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		logger:  logger,
	}, nil
}

func (t *Transactor) From() common.Address {
	return t.from
}

func (t *Transactor) ChainID() *big.Int {
	return new(big.Int).Set(t.chainID)
}

// Send signs and submits a transaction, then waits for it to be mined. A reverted receipt is an error.
func (t *Transactor) Send(ctx context.Context, txDescription string, to common.Address, value *big.Int, data []byte) (*types.Receipt, error) {
	if value == nil {
		value = new(big.Int)
	}

	nonce, err := t.backend.PendingNonceAt(ctx, t.from)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get nonce: %w", txDescription, err)
	}
	gasPrice, err := t.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get gas price: %w", txDescription, err)
	}
	gas, err := t.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  t.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to estimate gas: %w", txDescription, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &to,
		Value:    value,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to sign transaction: %w", txDescription, err)
	}

	if err := t.backend.SendTransaction(ctx, signed); err != nil {
		t.logger.Error("%s failed during execution: %v", txDescription, err)
		return nil, fmt.Errorf("%s execution: %w", txDescription, err)
	}

	receipt, err := bind.WaitMined(ctx, t.backend, signed)
	if err != nil {
		t.logger.Error("Waiting for %s transaction (hash: %s) failed: %v", txDescription, signed.Hash().Hex(), err)
		return nil, fmt.Errorf("waiting for %s transaction (hash: %s): %w", txDescription, signed.Hash().Hex(), err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		t.logger.Error("%s transaction (hash: %s) reverted", txDescription, signed.Hash().Hex())
		return receipt, fmt.Errorf("%s transaction (hash: %s) reverted", txDescription, signed.Hash().Hex())
	}
	t.logger.Debug("%s mined in tx %s (gas used %d)", txDescription, signed.Hash().Hex(), receipt.GasUsed)
	return receipt, nil
}
