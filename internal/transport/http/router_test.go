package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credlens/internal/score"
	scorehandler "credlens/internal/score/handler"
	id "credlens/pkg/domain"
	authmw "credlens/pkg/platform/middleware/auth"
)

type staticValidator struct {
	userID string
}

func (v *staticValidator) ValidateToken(token string) (*authmw.Claims, error) {
	if token != "valid-token" {
		return nil, errors.New("invalid token")
	}
	return &authmw.Claims{UserID: v.userID}, nil
}

type stubScoreService struct{}

func (stubScoreService) CalculateScore(_ context.Context, _ id.UserID, _ id.AccountType) (*score.CreditScoreResult, error) {
	return &score.CreditScoreResult{Score: 776, AccountType: id.AccountTypeIndividual, FraudReasons: []string{}}, nil
}

func (stubScoreService) GetScore(_ context.Context, _ id.UserID) (*score.CreditScoreResult, error) {
	return &score.CreditScoreResult{Score: 776, AccountType: id.AccountTypeIndividual, FraudReasons: []string{}}, nil
}

func (stubScoreService) GetHistory(_ context.Context, _ id.UserID) ([]score.HistoryEntry, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Deps{
		Logger:      logger,
		Metrics:     nil, // middleware is nil-safe
		Validator:   &staticValidator{userID: id.NewUserID().String()},
		ScoreRoutes: scorehandler.New(stubScoreService{}, logger),
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRequestIDEchoedOnResponse(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-abc", rec.Header().Get("X-Request-Id"))
}

func TestV1RequiresBearerToken(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodPost, "/v1/score/calculate"},
		{http.MethodGet, "/v1/score"},
		{http.MethodGet, "/v1/score/history"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer bogus")
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestV1WithValidToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/score", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"score":776`)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
