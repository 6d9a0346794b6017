package bureau

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "credlens/pkg/domain"
)

const testBVN = id.BVN("22233344455")

func TestHTTPClient_FetchCreditReport(t *testing.T) {
	t.Run("decodes vendor payload and sends credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/credit-bureau", r.URL.Path)
			assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"entity":{"score":{"totalNoOfActiveLoans":[{"source":"crc","value":2}]}}}`))
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "secret-key", time.Second)
		report, err := client.FetchCreditReport(context.Background(), testBVN)
		require.NoError(t, err)
		require.NotNil(t, report.Entity)
		require.NotNil(t, report.Entity.Score)
		require.Len(t, report.Entity.Score.TotalNoOfActiveLoans, 1)
	})

	t.Run("maps vendor statuses onto error categories", func(t *testing.T) {
		cases := map[int]ErrorCategory{
			http.StatusNotFound:            ErrorNotFound,
			http.StatusUnauthorized:        ErrorAuthentication,
			http.StatusForbidden:           ErrorAuthentication,
			http.StatusTooManyRequests:     ErrorRateLimited,
			http.StatusServiceUnavailable:  ErrorProviderOutage,
			http.StatusUnprocessableEntity: ErrorBadData,
		}
		for status, want := range cases {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))
			client := NewHTTPClient(srv.URL, "k", time.Second)
			_, err := client.FetchCreditReport(context.Background(), testBVN)
			require.Error(t, err, "status %d", status)
			assert.Equal(t, want, GetCategory(err), "status %d", status)
			srv.Close()
		}
	})

	t.Run("malformed body is bad_data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"entity":`))
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, "k", time.Second)
		_, err := client.FetchCreditReport(context.Background(), testBVN)
		require.Error(t, err)
		assert.Equal(t, ErrorBadData, GetCategory(err))
		assert.False(t, IsRetryable(err))
	})

	t.Run("unreachable vendor is a retryable outage", func(t *testing.T) {
		client := NewHTTPClient("http://127.0.0.1:1", "k", time.Second)
		_, err := client.FetchCreditReport(context.Background(), testBVN)
		require.Error(t, err)
		assert.Equal(t, ErrorProviderOutage, GetCategory(err))
		assert.True(t, IsRetryable(err))
	})
}

func TestMockClient_Deterministic(t *testing.T) {
	client := MockClient{}
	ctx := context.Background()

	first, err := client.FetchCreditReport(ctx, "22233344458")
	require.NoError(t, err)
	second, err := client.FetchCreditReport(ctx, "22233344458")
	require.NoError(t, err)
	assert.Equal(t, first, second, "same BVN must yield the same report")

	clean, err := client.FetchCreditReport(ctx, "22233344451")
	require.NoError(t, err)
	assert.NotEqual(t, first, clean, "profiles differ by BVN suffix")
	assert.Empty(t, clean.Entity.Score.TotalNoOfDelinquentFacilities)
	assert.NotEmpty(t, first.Entity.Score.TotalNoOfDelinquentFacilities)
}
