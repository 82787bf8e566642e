package subgraph

// Entities returned by the subgraph. Numeric fields arrive as decimal
// strings because the underlying values are uint256.

// UserAssetConfig is a user's streaming configuration for one asset.
type UserAssetConfig struct {
	ID                        string       `json:"id"`
	AssetID                   string       `json:"assetId"`
	Balance                   string       `json:"balance"`
	AmountCollected           string       `json:"amountCollected"`
	DripsEntries              []DripsEntry `json:"dripsEntries"`
	LastUpdatedBlockTimestamp string       `json:"lastUpdatedBlockTimestamp"`
}

// DripsEntry is one streaming recipient inside a UserAssetConfig.
type DripsEntry struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Config string `json:"config"`
}

// SplitsEntry is one splits recipient of a user.
type SplitsEntry struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Weight string `json:"weight"`
}

// DripsSetEvent records one historical drips configuration update.
type DripsSetEvent struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	AssetID          string `json:"assetId"`
	DripsHistoryHash string `json:"dripsHistoryHash"`
	Balance          string `json:"balance"`
	MaxEnd           string `json:"maxEnd"`
	BlockTimestamp   string `json:"blockTimestamp"`
}

// UserMetadataEntry is the latest emitted metadata value for one key.
type UserMetadataEntry struct {
	ID                        string `json:"id"`
	Key                       string `json:"key"`
	Value                     string `json:"value"`
	LastUpdatedBlockTimestamp string `json:"lastUpdatedBlockTimestamp"`
}
