package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// GetGatewayFile fetches a metadata blob from a plain HTTP IPFS gateway,
// for callers without access to a Kubo API node.
//
// It performs an HTTP GET to {gatewayEndpoint}{cid} within the given
// timeout and returns the response body. A non-2xx status is an error.
func GetGatewayFile(ctx context.Context, gatewayEndpoint, cID string, timeout time.Duration) ([]byte, error) {
	zap.L().Debug("Getting gateway file", zap.String("cid", cID))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gatewayEndpoint+cID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			zap.L().Error("failed to close gateway response", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
