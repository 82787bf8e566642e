package sdk

import (
	"context"
	"crypto/ecdsa"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/drips-network/drips-sdk-go/pkg/blockchain"
	"github.com/drips-network/drips-sdk-go/pkg/config"
	"github.com/drips-network/drips-sdk-go/pkg/errs"
	"github.com/drips-network/drips-sdk-go/pkg/storage"
	"github.com/drips-network/drips-sdk-go/pkg/subgraph"
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Core is the SDK entry point. It holds the initialized EVM client, the
// subgraph and metadata storage clients, and the configured signing key.
type Core struct {
	evm *blockchain.EVMClient
	*config.Config
	prvKey  *ecdsa.PrivateKey
	signer  common.Address
	graph   *subgraph.Client
	storage *storage.Client
}

// NewSDK initializes the SDK Core with validated configuration, a connected
// EVM client, a subgraph client, and a metadata storage client. It applies
// default timeout values and returns an error if the configuration is
// invalid or the Ethereum client cannot be initialized.
func NewSDK(cfg *config.Config) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		zap.L().Error("Invalid config", zap.Error(err))
		return nil, err
	}

	cfg.Timeouts = cfg.Timeouts.WithDefaults()

	evmClient, err := blockchain.InitEvm(cfg.Network.ChainID, cfg.RPCAddr, cfg.Timeouts.Dial)
	if err != nil {
		zap.L().Error("Init ethereum client failed", zap.Error(err))
		return nil, err
	}

	core := &Core{
		evm:    evmClient,
		Config: cfg,
		graph:  subgraph.New(cfg.SubgraphURL, cfg.Timeouts.SubgraphQuery),
	}

	if cfg.PrivateKey != "" {
		address, prvKey, err := blockchain.ParsePrivateKeyECDSA(cfg.PrivateKey)
		if err != nil {
			zap.L().Warn("submissions disabled: private key parsing failed", zap.Error(err))
		} else {
			core.prvKey = prvKey
			core.signer = address
			if cfg.Debug {
				zap.L().Debug("signer address", zap.String("addr", address.Hex()))
			}
		}
	}

	core.storage, err = storage.NewClient(cfg.IpfsURL, cfg.Timeouts.StorageRead)
	if err != nil {
		zap.L().Warn("metadata storage disabled: IPFS client init failed", zap.Error(err))
	}

	return core, nil
}

// GetEvm returns the EVM client for custom blockchain operations.
func (c *Core) GetEvm() *blockchain.EVMClient {
	return c.evm
}

// Subgraph returns the read-only indexer client.
func (c *Core) Subgraph() *subgraph.Client {
	return c.graph
}

// Storage returns the IPFS metadata store, or nil when it failed to
// initialize.
func (c *Core) Storage() *storage.Client {
	return c.storage
}

// Signer returns the address of the configured signing key, or the zero
// address when no key is configured.
func (c *Core) Signer() common.Address {
	return c.signer
}

// AddressDriver returns the client of the address-based driver.
func (c *Core) AddressDriver() *AddressDriverClient {
	return &AddressDriverClient{
		driver: c.evm.AddressDriver,
		erc20: func(addr common.Address) (erc20Contract, error) {
			return c.evm.ERC20(addr)
		},
		signer: c.signer,
		txOpts: c.transactOpts,
		read:   c.Timeouts.ChainRead,
		submit: c.Timeouts.ChainSubmit,
	}
}

// NFTDriver returns the client of the NFT-based driver.
func (c *Core) NFTDriver() *NFTDriverClient {
	return &NFTDriverClient{
		driver: c.evm.NFTDriver,
		txOpts: c.transactOpts,
		submit: c.Timeouts.ChainSubmit,
	}
}

// DripsHub returns the client of the hub/ledger contract.
func (c *Core) DripsHub() *DripsHubClient {
	return &DripsHubClient{
		hub:    c.evm.DripsHub,
		txOpts: c.transactOpts,
		read:   c.Timeouts.ChainRead,
		submit: c.Timeouts.ChainSubmit,
	}
}

// Caller returns the client of the batched-call contract.
func (c *Core) Caller() *CallerClient {
	return &CallerClient{
		caller: c.evm.Caller,
		signer: c.signer,
		txOpts: c.transactOpts,
		read:   c.Timeouts.ChainRead,
		submit: c.Timeouts.ChainSubmit,
	}
}

// WaitForReceipt blocks until the transaction with the given hash is mined
// or the configured ReceiptWait timeout elapses, and returns its receipt.
func (c *Core) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.evm.WaitForReceipt(ctx, txHash, c.Timeouts.ReceiptWait)
}

// transactOpts builds transact opts bound to the connected chain and the
// configured key. Fails with a missing-argument error when no private key
// is configured.
func (c *Core) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.prvKey == nil {
		return nil, errs.MissingArgument("privateKey")
	}
	return c.evm.GetTransactOpts(ctx, c.prvKey)
}

// withDeadline bounds ctx by d when d is positive. The returned cancel
// function is always safe to call.
func withDeadline(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Close releases resources associated with the SDK instance.
func (c *Core) Close() {
	if c.evm != nil {
		c.evm.Close()
	}
}
