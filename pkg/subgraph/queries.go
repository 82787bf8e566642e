package subgraph

import (
	"context"

	"github.com/drips-network/drips-sdk-go/pkg/drips"
	"github.com/drips-network/drips-sdk-go/pkg/errs"
)

const userAssetConfigByIDQuery = `
query userAssetConfig($configId: ID!) {
	userAssetConfig(id: $configId) {
		id
		assetId
		balance
		amountCollected
		dripsEntries {
			id
			userId
			config
		}
		lastUpdatedBlockTimestamp
	}
}`

const userAssetConfigsByUserQuery = `
query user($userId: ID!) {
	user(id: $userId) {
		assetConfigs {
			id
			assetId
			balance
			amountCollected
			dripsEntries {
				id
				userId
				config
			}
			lastUpdatedBlockTimestamp
		}
	}
}`

const splitsConfigByUserQuery = `
query user($userId: ID!) {
	user(id: $userId) {
		splitsEntries {
			id
			userId
			weight
		}
	}
}`

const dripsSetEventsByUserQuery = `
query dripsSetEvents($userId: String!) {
	dripsSetEvents(where: {userId: $userId}) {
		id
		userId
		assetId
		dripsHistoryHash
		balance
		maxEnd
		blockTimestamp
	}
}`

const userMetadataByUserQuery = `
query userMetadataByKey($userId: String!) {
	userMetadataEvents(where: {userId: $userId}) {
		id
		key
		value
		lastUpdatedBlockTimestamp
	}
}`

// GetUserAssetConfigByID returns the streaming configuration with the given
// subgraph ID ("<userId>-<assetId>"), or nil when none exists.
func (c *Client) GetUserAssetConfigByID(ctx context.Context, configID string) (*UserAssetConfig, error) {
	if configID == "" {
		return nil, errs.MissingArgument("configId")
	}

	var res struct {
		UserAssetConfig *UserAssetConfig `json:"userAssetConfig"`
	}
	if err := c.Query(ctx, userAssetConfigByIDQuery, map[string]any{"configId": configID}, &res); err != nil {
		return nil, err
	}
	return res.UserAssetConfig, nil
}

// GetAllUserAssetConfigsByUserID returns all streaming configurations of the
// user with the given decimal user ID.
func (c *Client) GetAllUserAssetConfigsByUserID(ctx context.Context, userID string) ([]UserAssetConfig, error) {
	if _, err := drips.ParseUserID("userId", userID); err != nil {
		return nil, err
	}

	var res struct {
		User *struct {
			AssetConfigs []UserAssetConfig `json:"assetConfigs"`
		} `json:"user"`
	}
	if err := c.Query(ctx, userAssetConfigsByUserQuery, map[string]any{"userId": userID}, &res); err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, nil
	}
	return res.User.AssetConfigs, nil
}

// GetSplitsConfigByUserID returns the splits entries of the user with the
// given decimal user ID.
func (c *Client) GetSplitsConfigByUserID(ctx context.Context, userID string) ([]SplitsEntry, error) {
	if _, err := drips.ParseUserID("userId", userID); err != nil {
		return nil, err
	}

	var res struct {
		User *struct {
			SplitsEntries []SplitsEntry `json:"splitsEntries"`
		} `json:"user"`
	}
	if err := c.Query(ctx, splitsConfigByUserQuery, map[string]any{"userId": userID}, &res); err != nil {
		return nil, err
	}
	if res.User == nil {
		return nil, nil
	}
	return res.User.SplitsEntries, nil
}

// GetDripsSetEventsByUserID returns the historical drips configuration
// updates of the user with the given decimal user ID.
func (c *Client) GetDripsSetEventsByUserID(ctx context.Context, userID string) ([]DripsSetEvent, error) {
	if _, err := drips.ParseUserID("userId", userID); err != nil {
		return nil, err
	}

	var res struct {
		DripsSetEvents []DripsSetEvent `json:"dripsSetEvents"`
	}
	if err := c.Query(ctx, dripsSetEventsByUserQuery, map[string]any{"userId": userID}, &res); err != nil {
		return nil, err
	}
	return res.DripsSetEvents, nil
}

// GetLatestUserMetadata returns the latest emitted metadata entries of the
// user with the given decimal user ID.
func (c *Client) GetLatestUserMetadata(ctx context.Context, userID string) ([]UserMetadataEntry, error) {
	if _, err := drips.ParseUserID("userId", userID); err != nil {
		return nil, err
	}

	var res struct {
		UserMetadataEvents []UserMetadataEntry `json:"userMetadataEvents"`
	}
	if err := c.Query(ctx, userMetadataByUserQuery, map[string]any{"userId": userID}, &res); err != nil {
		return nil, err
	}
	return res.UserMetadataEvents, nil
}
