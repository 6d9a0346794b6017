package bureau

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	id "credlens/pkg/domain"
)

// Client fetches a raw credit-bureau report for a BVN. Implementations: the
// real vendor API, a deterministic mock, and a caching decorator.
type Client interface {
	FetchCreditReport(ctx context.Context, bvn id.BVN) (*RawReport, error)
}

// HTTPClient calls the vendor's REST API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient constructs a vendor API client.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type creditBureauRequest struct {
	BVN string `json:"bvn"`
}

// FetchCreditReport performs the vendor call and maps failures onto the
// normalized provider error taxonomy. Cancellation and timeout policy lives
// here, not in the scoring engine.
func (c *HTTPClient) FetchCreditReport(ctx context.Context, bvn id.BVN) (*RawReport, error) {
	body, err := json.Marshal(creditBureauRequest{BVN: bvn.String()})
	if err != nil {
		return nil, NewProviderError(ErrorInternal, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/credit-bureau", bytes.NewReader(body))
	if err != nil {
		return nil, NewProviderError(ErrorInternal, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewProviderError(ErrorTimeout, "vendor call timed out", err)
		}
		return nil, NewProviderError(ErrorProviderOutage, "vendor unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewProviderError(ErrorNotFound, "no bureau record for bvn", nil)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, NewProviderError(ErrorAuthentication, "vendor rejected credentials", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewProviderError(ErrorRateLimited, "vendor rate limit exceeded", nil)
	case resp.StatusCode >= 500:
		return nil, NewProviderError(ErrorProviderOutage, fmt.Sprintf("vendor returned %d", resp.StatusCode), nil)
	default:
		return nil, NewProviderError(ErrorBadData, fmt.Sprintf("unexpected vendor status %d", resp.StatusCode), nil)
	}

	var report RawReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, NewProviderError(ErrorBadData, "decode vendor payload", err)
	}
	return &report, nil
}
