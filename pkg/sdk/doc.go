// Package sdk provides the high-level entry point for interacting with the
// Drips protocol.
//
// The SDK simplifies streaming, splitting, and collecting funds by wrapping
// the protocol's on-chain contracts, the subgraph indexer, and IPFS metadata
// storage behind validated clients.
//
// # Quick Start
//
// Create an SDK instance with configuration, then use the contract clients:
//
//	import (
//		"github.com/drips-network/drips-sdk-go/pkg/config"
//		"github.com/drips-network/drips-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		cfg := &config.Config{
//			RPCAddr:    "https://sepolia.infura.io/v3/YOUR_PROJECT_ID",
//			PrivateKey: "YOUR_PRIVATE_KEY",
//			Network:    config.Sepolia,
//			Debug:      true,
//		}
//
//		// Initialize SDK
//		dripsSDK, err := sdk.NewSDK(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dripsSDK.Close()
//
//		// Look up the signer's user ID
//		driver := dripsSDK.AddressDriver()
//		userID, err := driver.GetUserID(context.Background())
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("User ID: %s\n", userID)
//	}
//
// # Architecture
//
// The SDK coordinates several subsystems:
//
//   - Blockchain: Ethereum client with bindings for the AddressDriver,
//     NFTDriver, DripsHub, and Caller contracts
//   - Subgraph: read-only GraphQL indexer for historical protocol state
//   - Storage: IPFS for publishing and reading user metadata documents
//
// # Core Components
//
// Core (returned by NewSDK):
//   - AddressDriver: client keyed by the signer's Ethereum address
//   - NFTDriver: client keyed by minted token IDs
//   - DripsHub: cycle bookkeeping, balances, receive/split fund flow
//   - Caller: atomic batching and delegated submission
//   - Subgraph: indexer queries
//   - Storage: IPFS metadata store
//   - WaitForReceipt: block until a submitted transaction is mined
//   - GetEvm: low-level blockchain client
//   - Close: release resources
//
// AddressDriverClient:
//   - GetUserIDByAddress, GetUserID: derive protocol user IDs
//   - GetAllowance, Approve: ERC-20 spending approval for the driver
//   - Collect, Give: move funds
//   - SetSplits, SetDrips: replace receiver configurations
//   - EmitUserMetadata: publish metadata on-chain
//
// NFTDriverClient mirrors the address driver but keys every operation by a
// minted token ID; CreateAccount mints a new identity and
// TokenIDFromReceipt recovers its ID from the mined receipt.
//
// # Fund Flow
//
// Streamed funds move through three steps on the hub:
//
//  1. ReceiveDrips: fold completed cycles into the splittable balance
//  2. Split: distribute the splittable balance per the splits configuration
//  3. Collect: transfer the collectable remainder out of the protocol
//
// Receiver lists passed to SetSplits, SetDrips, and Split are sorted by
// user ID and deduplicated by the SDK before submission, as the contracts
// require.
//
// # Configuration
//
// Required configuration fields:
//   - RPCAddr: Ethereum RPC endpoint
//
// Optional fields:
//   - Network: Target network (config.Sepolia or config.Mainnet, default Sepolia)
//   - PrivateKey: Required for write operations
//   - SubgraphURL: Custom subgraph endpoint
//   - IpfsURL: Custom IPFS endpoint
//   - Debug: Enable verbose logging
//   - Timeouts: Custom timeout configuration
//
// # Error Handling
//
// Validation failures are reported as *errs.Error values before any network
// traffic happens; contract and transport failures are forwarded unchanged
// inside the passthrough kind:
//
//	hash, err := driver.SetSplits(ctx, receivers)
//	if errs.IsKind(err, errs.KindInvalidArgument) {
//		// a receiver list entry is malformed, nothing was submitted
//	}
//
// # Resource Management
//
// Always call Close() on the SDK instance to release network connections:
//
//	dripsSDK, err := sdk.NewSDK(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dripsSDK.Close()
//
// # Advanced Usage
//
// Access the low-level blockchain client for custom operations:
//
//	evm := dripsSDK.GetEvm()
//	// Use evm for direct contract calls, transactions, etc.
//
// # See Also
//
// For detailed examples, see the examples/ directory in the repository:
//   - examples/quick-start: look up a user ID and balances
//   - examples/streams: configure a stream and collect funds
package sdk
