package score

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credlens/internal/audit"
	"credlens/internal/bureau"
	"credlens/internal/identity"
	id "credlens/pkg/domain"
	domainerrors "credlens/pkg/domain-errors"
	"credlens/pkg/requestcontext"
)

type fakeBureau struct {
	report *bureau.RawReport
	err    error
	calls  int
}

func (f *fakeBureau) FetchCreditReport(_ context.Context, _ id.BVN) (*bureau.RawReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type fakeStore struct {
	mu      sync.Mutex
	latest  map[id.UserID]*CreditScoreResult
	history map[id.UserID][]HistoryEntry
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		latest:  make(map[id.UserID]*CreditScoreResult),
		history: make(map[id.UserID][]HistoryEntry),
	}
}

func (f *fakeStore) SaveResult(_ context.Context, userID id.UserID, result *CreditScoreResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.latest[userID] = result
	return nil
}

func (f *fakeStore) FindLatest(_ context.Context, userID id.UserID) (*CreditScoreResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result, ok := f.latest[userID]
	if !ok {
		return nil, domainerrors.New(domainerrors.CodeNotFound, "credit score not found")
	}
	return result, nil
}

func (f *fakeStore) AppendHistory(_ context.Context, userID id.UserID, entry HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history[userID] = append(f.history[userID], entry)
	return nil
}

func (f *fakeStore) ListHistory(_ context.Context, userID id.UserID) ([]HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]HistoryEntry{}, f.history[userID]...), nil
}

type fakeAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (f *fakeAuditor) Emit(_ context.Context, event audit.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeAuditor) byAction(action audit.Action) []audit.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []audit.Event
	for _, event := range f.events {
		if event.Action == action {
			matched = append(matched, event)
		}
	}
	return matched
}

type serviceFixture struct {
	service *Service
	bureau  *fakeBureau
	store   *fakeStore
	bvns    *identity.MemoryDirectory
	auditor *fakeAuditor
	userID  id.UserID
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	engine, err := NewEngine(DefaultConfig())
	require.NoError(t, err)

	fx := &serviceFixture{
		bureau:  &fakeBureau{report: &bureau.RawReport{}},
		store:   newFakeStore(),
		bvns:    identity.NewMemory(),
		auditor: &fakeAuditor{},
		userID:  id.NewUserID(),
	}
	require.NoError(t, fx.bvns.Enroll(context.Background(), fx.userID, id.BVN("22233344455")))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx.service = NewService(engine, fx.bureau, fx.bvns, fx.store, fx.auditor, logger, nil)
	return fx
}

func TestCalculateScorePersistsResultAndHistory(t *testing.T) {
	fx := newServiceFixture(t)
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	result, err := fx.service.CalculateScore(ctx, fx.userID, id.AccountTypeIndividual)
	require.NoError(t, err)
	assert.Equal(t, 776, result.Score)
	assert.Equal(t, now, result.LastUpdated)

	stored, err := fx.store.FindLatest(ctx, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, result, stored)

	history, err := fx.store.ListHistory(ctx, fx.userID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, result.Score, history[0].Score)
	assert.Equal(t, now, history[0].CreatedAt)
}

func TestCalculateScoreUsesPreviousScoreForChange(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	first, err := fx.service.CalculateScore(ctx, fx.userID, id.AccountTypeIndividual)
	require.NoError(t, err)
	assert.Zero(t, first.ScoreChange, "first calculation has no previous score")

	second, err := fx.service.CalculateScore(ctx, fx.userID, id.AccountTypeIndividual)
	require.NoError(t, err)
	assert.Equal(t, second.Score-first.Score, second.ScoreChange)

	history, err := fx.store.ListHistory(ctx, fx.userID)
	require.NoError(t, err)
	assert.Len(t, history, 2, "every calculation appends history")
}

func TestCalculateScoreWithoutEnrolledBVN(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.service.CalculateScore(context.Background(), id.NewUserID(), id.AccountTypeIndividual)
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeInvalidInput))
	assert.Zero(t, fx.bureau.calls, "no bureau call without a bvn")
}

func TestCalculateScoreBureauOutage(t *testing.T) {
	fx := newServiceFixture(t)
	fx.bureau.err = bureau.NewProviderError(bureau.ErrorProviderOutage, "vendor unreachable", nil)

	_, err := fx.service.CalculateScore(context.Background(), fx.userID, id.AccountTypeIndividual)
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeUpstreamUnavailable))

	_, err = fx.store.FindLatest(context.Background(), fx.userID)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound), "nothing persisted on failure")
}

func TestCalculateScoreBureauRecordMissing(t *testing.T) {
	fx := newServiceFixture(t)
	fx.bureau.err = bureau.NewProviderError(bureau.ErrorNotFound, "no record for bvn", nil)

	_, err := fx.service.CalculateScore(context.Background(), fx.userID, id.AccountTypeIndividual)
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound))
}

func TestCalculateScoreSaveFailure(t *testing.T) {
	fx := newServiceFixture(t)
	fx.store.saveErr = domainerrors.New(domainerrors.CodeInternal, "db down")

	_, err := fx.service.CalculateScore(context.Background(), fx.userID, id.AccountTypeIndividual)
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeInternal))
}

func TestCalculateScoreAuditsOutcome(t *testing.T) {
	t.Run("clean report", func(t *testing.T) {
		fx := newServiceFixture(t)

		_, err := fx.service.CalculateScore(context.Background(), fx.userID, id.AccountTypeIndividual)
		require.NoError(t, err)

		events := fx.auditor.byAction(audit.ActionScoreCalculated)
		require.Len(t, events, 1)
		assert.Equal(t, fx.userID, events[0].UserID)
		assert.Equal(t, "*******4455", events[0].Subject, "audit carries the masked bvn only")
		assert.Equal(t, "clear", events[0].Decision)
	})

	t.Run("fraud suspected", func(t *testing.T) {
		fx := newServiceFixture(t)
		fx.bureau.report = &bureau.RawReport{Entity: &bureau.ReportEntity{Score: &bureau.ReportScore{
			TotalNoOfActiveLoans: []bureau.SourcedValue{{Source: "crc", Value: 6.0}},
		}}}

		_, err := fx.service.CalculateScore(context.Background(), fx.userID, id.AccountTypeIndividual)
		require.NoError(t, err)

		events := fx.auditor.byAction(audit.ActionScoreCalculated)
		require.Len(t, events, 1)
		assert.Equal(t, "fraud_suspected", events[0].Decision)
		assert.Equal(t, "Multiple active loans (high risk)", events[0].Reason)
	})
}

func TestGetScore(t *testing.T) {
	fx := newServiceFixture(t)
	ctx := context.Background()

	t.Run("not calculated yet", func(t *testing.T) {
		_, err := fx.service.GetScore(ctx, fx.userID)
		require.Error(t, err)
		assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound))
	})

	t.Run("returns stored result without recalculating", func(t *testing.T) {
		calculated, err := fx.service.CalculateScore(ctx, fx.userID, id.AccountTypeIndividual)
		require.NoError(t, err)
		callsAfterCalculate := fx.bureau.calls

		found, err := fx.service.GetScore(ctx, fx.userID)
		require.NoError(t, err)
		assert.Equal(t, calculated, found)
		assert.Equal(t, callsAfterCalculate, fx.bureau.calls)

		assert.Len(t, fx.auditor.byAction(audit.ActionScoreViewed), 1)
	})
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("empty for new user", func(t *testing.T) {
		fx := newServiceFixture(t)

		history, err := fx.service.GetHistory(ctx, fx.userID)
		require.NoError(t, err)
		assert.Empty(t, history)
		assert.Len(t, fx.auditor.byAction(audit.ActionHistoryViewed), 1)
	})

	t.Run("accumulates per calculation", func(t *testing.T) {
		fx := newServiceFixture(t)

		for i := 0; i < 3; i++ {
			_, err := fx.service.CalculateScore(ctx, fx.userID, id.AccountTypeIndividual)
			require.NoError(t, err)
		}

		history, err := fx.service.GetHistory(ctx, fx.userID)
		require.NoError(t, err)
		assert.Len(t, history, 3)
		assert.Len(t, fx.auditor.byAction(audit.ActionHistoryViewed), 1)
	})
}
