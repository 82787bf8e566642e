// Package storage reads and writes account metadata blobs in IPFS. Emitted
// user-metadata entries carry an ipfs:// URI pointing at a JSON document;
// this package resolves those URIs through a Kubo HTTP API node or a plain
// HTTP gateway.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/ipfs/kubo/client/rpc"
	"go.uber.org/zap"
)

// IpfsPrefix is the URI scheme prefix recognized for IPFS content.
const IpfsPrefix = "ipfs://"

// MetadataStore is the interface the SDK consumes for metadata blobs.
type MetadataStore interface {
	ReadMetadata(ctx context.Context, uri string) ([]byte, error)
	UploadJSON(ctx context.Context, data any) (string, error)
}

// Client resolves metadata URIs through a Kubo HTTP API node.
type Client struct {
	// HttpApi is a connected Kubo HTTP API client.
	*rpc.HttpApi
}

// NewClient constructs a metadata store backed by the Kubo node at apiURL.
// The timeout bounds one metadata read or upload.
func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	api, err := NewIPFSClient(apiURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{HttpApi: api}, nil
}

// NewIPFSClient constructs a Kubo HTTP API client pointed at url with the
// given HTTP timeout.
func NewIPFSClient(url string, timeout time.Duration) (*rpc.HttpApi, error) {
	httpClient := http.Client{
		Timeout: timeout,
	}
	client, err := rpc.NewURLApiWithClient(url, &httpClient)
	if err != nil {
		zap.L().Error("Connection failed to IPFS", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return client, nil
}

// ReadMetadata fetches the metadata blob identified by uri (an ipfs:// URI
// or a bare CID) via the Kubo node's `cat` command.
func (c *Client) ReadMetadata(ctx context.Context, uri string) (content []byte, err error) {
	if c.HttpApi == nil {
		return nil, fmt.Errorf("ipfs client not configured")
	}

	cID, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("Reading metadata from IPFS", zap.String("cid", cID.String()))

	resp, err := c.Request("cat", cID.String()).Send(ctx)
	if err != nil {
		zap.L().Error("cat command failed", zap.String("cid", cID.String()), zap.Error(err))
		return nil, err
	}
	defer func(resp *rpc.Response) {
		if cerr := resp.Close(); cerr != nil {
			zap.L().Error("failed to close ipfs response", zap.Error(cerr))
		}
	}(resp)

	if resp.Error != nil {
		zap.L().Error("cat command returned error", zap.String("cid", cID.String()), zap.Error(resp.Error))
		return nil, resp.Error
	}

	return io.ReadAll(resp.Output)
}

// UploadJSON serializes data to JSON and adds it to IPFS via the Kubo
// node's `add` command. Returns the IPFS URI (ipfs://<cid>) on success.
func (c *Client) UploadJSON(ctx context.Context, data any) (string, error) {
	if c.HttpApi == nil {
		return "", fmt.Errorf("ipfs client not configured")
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("error marshaling data to json", zap.Error(err))
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	req := c.Request("add")
	req.Body(strings.NewReader(string(jsonData)))

	resp, err := req.Send(ctx)
	if err != nil {
		zap.L().Error("error uploading to ipfs", zap.Error(err))
		return "", err
	}
	defer func(resp *rpc.Response) {
		if cerr := resp.Close(); cerr != nil {
			zap.L().Error("failed to close ipfs response", zap.Error(cerr))
		}
	}(resp)

	if resp.Error != nil {
		zap.L().Error("add command returned error", zap.Error(resp.Error))
		return "", resp.Error
	}

	body, err := io.ReadAll(resp.Output)
	if err != nil {
		return "", err
	}

	var addResp struct {
		Hash string `json:"Hash"`
	}
	if err := json.Unmarshal(body, &addResp); err != nil {
		return "", fmt.Errorf("failed to decode add response: %w", err)
	}

	zap.L().Debug("Uploaded metadata to IPFS", zap.String("hash", addResp.Hash))
	return IpfsPrefix + addResp.Hash, nil
}

// ParseURI strips the ipfs:// prefix, if any, and parses the remainder as
// a CID.
func ParseURI(uri string) (cid.Cid, error) {
	raw := strings.TrimPrefix(uri, IpfsPrefix)
	if raw == "" {
		return cid.Undef, fmt.Errorf("empty metadata URI")
	}
	cID, err := cid.Parse(raw)
	if err != nil {
		return cid.Undef, fmt.Errorf("not a valid CID %q: %w", raw, err)
	}
	return cID, nil
}
