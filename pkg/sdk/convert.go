package sdk

import (
	"github.com/drips-network/drips-sdk-go/pkg/blockchain"
	"github.com/drips-network/drips-sdk-go/pkg/drips"
	"github.com/drips-network/drips-sdk-go/pkg/model"
)

// splitsToWire converts normalized splits receivers to the contracts' tuple
// shape. Receivers must already be validated and normalized.
func splitsToWire(receivers []model.SplitsReceiver) ([]blockchain.SplitsReceiver, error) {
	wire := make([]blockchain.SplitsReceiver, len(receivers))
	for i, r := range receivers {
		id, err := drips.ParseUserID("receivers.userId", r.UserID)
		if err != nil {
			return nil, err
		}
		wire[i] = blockchain.SplitsReceiver{UserId: id, Weight: r.Weight}
	}
	return wire, nil
}

// dripsToWire converts normalized drips receivers to the contracts' tuple
// shape. Receivers must already be validated and normalized.
func dripsToWire(receivers []model.DripsReceiver) ([]blockchain.DripsReceiver, error) {
	wire := make([]blockchain.DripsReceiver, len(receivers))
	for i, r := range receivers {
		id, err := drips.ParseUserID("receivers.userId", r.UserID)
		if err != nil {
			return nil, err
		}
		wire[i] = blockchain.DripsReceiver{UserId: id, Config: r.Config}
	}
	return wire, nil
}

// metadataToWire converts metadata entries to the contracts' tuple shape,
// right-padding each key into bytes32.
func metadataToWire(metadata []model.UserMetadata) []blockchain.UserMetadata {
	wire := make([]blockchain.UserMetadata, len(metadata))
	for i, m := range metadata {
		wire[i] = blockchain.UserMetadata{
			Key:   blockchain.StringToBytes32(m.Key),
			Value: []byte(m.Value),
		}
	}
	return wire
}
