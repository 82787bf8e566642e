package blockchain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/drips-network/drips-sdk-go/pkg/errs"
)

// Deployment holds the addresses of the protocol contracts on one chain.
type Deployment struct {
	ChainID       string
	AddressDriver common.Address
	NFTDriver     common.Address
	DripsHub      common.Address
	Caller        common.Address
}

// The protocol contracts are deployed deterministically, so the addresses
// are identical on every supported chain.
var (
	addressDriverAddr = common.HexToAddress("0x1455d9bD6B98f95dd8FEB2b3D60ed825fcef0610")
	nftDriverAddr     = common.HexToAddress("0xcf9C49B0962EDb01Cdaa5326299ba85D72405258")
	dripsHubAddr      = common.HexToAddress("0xd4DE319ed8B07e05FC0b2df16d749229478e494b")
	callerAddr        = common.HexToAddress("0x09e04Cb8168bd0E8773A79Cc2099f19C46776Fee")
)

// deployments maps chain IDs to the contract deployment on that chain.
var deployments = map[string]Deployment{
	"1": {
		ChainID:       "1",
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		DripsHub:      dripsHubAddr,
		Caller:        callerAddr,
	},
	"11155111": {
		ChainID:       "11155111",
		AddressDriver: addressDriverAddr,
		NFTDriver:     nftDriverAddr,
		DripsHub:      dripsHubAddr,
		Caller:        callerAddr,
	},
}

// DeploymentForChain returns the contract deployment for the given chain ID,
// or an unsupported-network error when the chain has none.
func DeploymentForChain(chainID string) (Deployment, error) {
	d, ok := deployments[chainID]
	if !ok {
		return Deployment{}, errs.UnsupportedNetwork(chainID)
	}
	return d, nil
}
