package blockchain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// MaxUint256 returns the maximum uint256 value (2^256 - 1). Useful for
// setting ERC-20 allowances to "unlimited". A fresh value is returned on
// every call so callers can mutate it freely.
func MaxUint256() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
}

// GetAddressFromPrivateKeyECDSA derives the Ethereum address from the given
// ECDSA private key. It returns nil if the key is nil or its public part
// cannot be asserted to *ecdsa.PublicKey.
func GetAddressFromPrivateKeyECDSA(privateKeyECDSA *ecdsa.PrivateKey) *common.Address {
	if privateKeyECDSA == nil {
		return nil
	}
	publicKey := privateKeyECDSA.Public()
	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil
	}
	addr := crypto.PubkeyToAddress(*publicKeyECDSA)
	return &addr
}

// ParsePrivateKeyECDSA parses a hex-encoded ECDSA private key and returns the
// corresponding Ethereum address together with the private key object.
// It returns an error if the hex string is invalid or the public key cannot
// be derived from the private key.
func ParsePrivateKeyECDSA(privateKey string) (common.Address, *ecdsa.PrivateKey, error) {
	privateKeyECDSA, err := crypto.HexToECDSA(privateKey)
	if err != nil {
		return common.Address{}, nil, err
	}

	publicKey := privateKeyECDSA.Public()

	publicKeyECDSA, ok := publicKey.(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, nil, errors.New("failed to get public key")
	}

	address := crypto.PubkeyToAddress(*publicKeyECDSA)
	return address, privateKeyECDSA, nil
}

// StringToBytes32 returns a right-padded [32]byte containing at most the
// first 32 bytes of the provided string.
func StringToBytes32(str string) [32]byte {
	var byte32 [32]byte
	copy(byte32[:], str)
	return byte32
}

// TokensToBaseUnits converts a human token amount to the token's smallest
// unit using the given decimal count.
//
// Supported input types for iamount: string, float64, int64, decimal.Decimal,
// *decimal.Decimal. Any other type results in an error.
func TokensToBaseUnits(iamount any, decimals int32) (*big.Int, error) {
	amount, err := toDecimal(iamount)
	if err != nil {
		return nil, err
	}

	mul := decimal.New(1, decimals)
	result := amount.Mul(mul)

	base := new(big.Int)
	if _, ok := base.SetString(result.Truncate(0).String(), 10); !ok {
		return nil, errors.New("amount does not convert to an integer base unit value")
	}
	return base, nil
}

// BaseUnitsToTokens converts an amount in a token's smallest unit into a
// human token amount with the given decimal count of precision.
//
// Supported input types for ivalue: string, *big.Int, int64.
// Any other type results in an error.
func BaseUnitsToTokens(ivalue any, decimals int32) (decimal.Decimal, error) {
	value := new(big.Int)
	switch v := ivalue.(type) {
	case string:
		if _, ok := value.SetString(v, 10); !ok {
			return decimal.Zero, errors.New("not a decimal integer")
		}
	case *big.Int:
		if v == nil {
			return decimal.Zero, errors.New("nil value")
		}
		value = v
	case int64:
		value.SetInt64(v)
	default:
		zap.L().Error("Unsupported type for base unit value")
		return decimal.Zero, errors.New("unsupported type")
	}

	num, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Zero, err
	}
	return num.DivRound(decimal.New(1, decimals), decimals), nil
}

// AmtPerSecFromTokens converts a human per-second token amount into the
// contract's amount-per-second fixed point: smallest token units scaled by
// model.AmtPerSecExtraDecimals extra decimals.
func AmtPerSecFromTokens(iamount any, decimals int32) (*big.Int, error) {
	return TokensToBaseUnits(iamount, decimals+model.AmtPerSecExtraDecimals)
}

// toDecimal coerces the supported numeric input types to decimal.Decimal.
func toDecimal(iamount any) (decimal.Decimal, error) {
	switch v := iamount.(type) {
	case string:
		amount, err := decimal.NewFromString(v)
		if err != nil {
			zap.L().Error("Failed to convert string to decimal", zap.Error(err))
			return decimal.Zero, err
		}
		return amount, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		return *v, nil
	default:
		zap.L().Error("Unsupported type for token amount")
		return decimal.Zero, errors.New("unsupported type")
	}
}
