package blockchain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// The bindings are hand-written, so parsing each embedded ABI is itself
// worth a test: a typo in the JSON would otherwise only surface at runtime.
func TestBindingsParse(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")

	if _, err := NewAddressDriver(addr, nil); err != nil {
		t.Fatalf("NewAddressDriver: %v", err)
	}
	if _, err := NewNFTDriver(addr, nil); err != nil {
		t.Fatalf("NewNFTDriver: %v", err)
	}
	if _, err := NewDripsHub(addr, nil); err != nil {
		t.Fatalf("NewDripsHub: %v", err)
	}
	if _, err := NewCaller(addr, nil); err != nil {
		t.Fatalf("NewCaller: %v", err)
	}
	if _, err := NewERC20(addr, nil); err != nil {
		t.Fatalf("NewERC20: %v", err)
	}
}

func TestAddressDriverPackCalldata(t *testing.T) {
	driver, err := NewAddressDriver(common.HexToAddress("0x01"), nil)
	if err != nil {
		t.Fatalf("NewAddressDriver: %v", err)
	}

	receivers := []SplitsReceiver{
		{UserId: big.NewInt(1), Weight: 500_000},
		{UserId: big.NewInt(2), Weight: 500_000},
	}
	data, err := driver.PackCalldata("setSplits", receivers)
	if err != nil {
		t.Fatalf("PackCalldata: %v", err)
	}
	if len(data) < 4 {
		t.Fatalf("calldata too short: %d bytes", len(data))
	}

	if _, err := driver.PackCalldata("noSuchMethod"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}

func TestTokenIDFromMintReceipt(t *testing.T) {
	driverAddr := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	driver, err := NewNFTDriver(driverAddr, nil)
	if err != nil {
		t.Fatalf("NewNFTDriver: %v", err)
	}

	tokenID := big.NewInt(42)
	receipt := &types.Receipt{
		Logs: []*types.Log{
			{
				// Unrelated log from another contract.
				Address: common.HexToAddress("0xbb"),
				Topics:  []common.Hash{transferTopic},
			},
			{
				Address: driverAddr,
				Topics: []common.Hash{
					transferTopic,
					{}, // mint: from the zero address
					common.BytesToHash(common.HexToAddress("0xcc").Bytes()),
					common.BigToHash(tokenID),
				},
			},
		},
	}

	got, err := driver.TokenIDFromMintReceipt(receipt)
	if err != nil {
		t.Fatalf("TokenIDFromMintReceipt: %v", err)
	}
	if got.Cmp(tokenID) != 0 {
		t.Fatalf("token ID = %s, want %s", got, tokenID)
	}
}

func TestTokenIDFromMintReceiptMissing(t *testing.T) {
	driver, err := NewNFTDriver(common.HexToAddress("0xaa"), nil)
	if err != nil {
		t.Fatalf("NewNFTDriver: %v", err)
	}

	if _, err := driver.TokenIDFromMintReceipt(nil); err == nil {
		t.Fatal("expected error for nil receipt")
	}
	if _, err := driver.TokenIDFromMintReceipt(&types.Receipt{}); err == nil {
		t.Fatal("expected error for receipt without a mint event")
	}
}
