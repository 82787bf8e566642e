// Package config defines the runtime configuration for the SDK: target
// network, RPC endpoint, subgraph endpoint, IPFS gateway, signing key,
// debug mode, and per-operation timeouts. It also provides validation and
// defaulting helpers.
package config

import (
	"errors"
	"time"
)

// Config holds all SDK settings required to initialize the driver, hub,
// caller and subgraph clients. Use Validate to fill implicit defaults and
// to check for required fields.
type Config struct {
	// Network selects the target chain (chain ID and human-readable name).
	Network Network `json:"network" yaml:"network"`
	// RPCAddr is the Ethereum RPC/WS endpoint URL (required).
	RPCAddr string `json:"rpc_addr" yaml:"rpc_addr"`
	// PrivateKey is the hex-encoded ECDSA private key used for on-chain
	// submissions (optional if you only do read-only operations).
	PrivateKey string `json:"private_key" yaml:"private_key"`
	// SubgraphURL is the GraphQL endpoint of the protocol subgraph.
	// Defaults to the well-known endpoint of the selected network.
	SubgraphURL string `json:"subgraph_url" yaml:"subgraph_url"`
	// IpfsURL is the HTTP API endpoint of the IPFS node used for account
	// metadata blobs. Default: https://ipfs.io:443
	IpfsURL string `json:"ipfs_url" yaml:"ipfs_url"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// Timeouts configures per-operation timeouts. See Timeouts.WithDefaults.
	Timeouts Timeouts `json:"timeouts" yaml:"timeouts"`
}

// Network describes a blockchain network (chain ID and name). ChainID
// selects the contract deployment and is used for EIP-155 signing; Name is
// informational.
type Network struct {
	ChainID string `json:"chain_id"`
	Name    string `json:"network_name"`
}

// Mainnet is a predefined Network for Ethereum mainnet.
var Mainnet = Network{
	ChainID: "1",
	Name:    "mainnet",
}

// Sepolia is a predefined Network for Ethereum Sepolia testnet.
var Sepolia = Network{
	ChainID: "11155111",
	Name:    "sepolia",
}

// defaultSubgraphURLs maps chain IDs to the well-known subgraph endpoints.
var defaultSubgraphURLs = map[string]string{
	Mainnet.ChainID: "https://api.thegraph.com/subgraphs/name/drips-network/drips-on-ethereum",
	Sepolia.ChainID: "https://api.thegraph.com/subgraphs/name/drips-network/drips-on-sepolia",
}

// Timeouts controls SDK operation deadlines.
// Zero values will be replaced by sane defaults in WithDefaults.
type Timeouts struct {
	Dial          time.Duration // web3 dial/connect
	ChainRead     time.Duration // eth_call, balance etc
	ChainSubmit   time.Duration // send tx
	ReceiptWait   time.Duration // wait tx
	SubgraphQuery time.Duration // GraphQL round trip
	StorageRead   time.Duration // IPFS metadata fetch
}

// Validate normalizes the configuration by applying implicit defaults for
// Network (defaults to Sepolia), SubgraphURL and IpfsURL, and verifies that
// RPCAddr is provided. Returns an error when RPCAddr is empty.
func (c *Config) Validate() error {

	if c.Network.ChainID == "" {
		c.Network = Sepolia
	}

	if c.SubgraphURL == "" {
		c.SubgraphURL = defaultSubgraphURLs[c.Network.ChainID]
	}

	if c.IpfsURL == "" {
		c.IpfsURL = "https://ipfs.io:443"
	}

	if c.RPCAddr == "" {
		return errors.New("RPC address is required")
	}

	return nil
}

// WithDefaults returns a copy of t with zero values replaced by defaults:
//
//	Dial:          5s
//	ChainRead:     12s
//	ChainSubmit:   25s
//	ReceiptWait:   90s
//	SubgraphQuery: 15s
//	StorageRead:   60s
func (t Timeouts) WithDefaults() Timeouts {
	tt := t
	if tt.Dial == 0 {
		tt.Dial = 5 * time.Second
	}
	if tt.ChainRead == 0 {
		tt.ChainRead = 12 * time.Second
	}
	if tt.ChainSubmit == 0 {
		tt.ChainSubmit = 25 * time.Second
	}
	if tt.ReceiptWait == 0 {
		tt.ReceiptWait = 90 * time.Second
	}
	if tt.SubgraphQuery == 0 {
		tt.SubgraphQuery = 15 * time.Second
	}
	if tt.StorageRead == 0 {
		tt.StorageRead = 60 * time.Second
	}
	return tt
}
