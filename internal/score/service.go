package score

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"credlens/internal/audit"
	"credlens/internal/bureau"
	"credlens/internal/identity"
	"credlens/internal/score/metrics"
	id "credlens/pkg/domain"
	domainerrors "credlens/pkg/domain-errors"
	"credlens/pkg/requestcontext"
)

// ResultStore is the persistence port the service needs. Satisfied by
// store.Store; redeclared here so the service does not import its own
// subpackage.
type ResultStore interface {
	SaveResult(ctx context.Context, userID id.UserID, result *CreditScoreResult) error
	FindLatest(ctx context.Context, userID id.UserID) (*CreditScoreResult, error)
	AppendHistory(ctx context.Context, userID id.UserID, entry HistoryEntry) error
	ListHistory(ctx context.Context, userID id.UserID) ([]HistoryEntry, error)
}

// AuditPublisher decouples the service from the audit pipeline.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service orchestrates a score calculation: resolve the user's BVN, fetch
// the bureau report and the previous score in parallel, run the engine,
// persist, and audit.
type Service struct {
	engine  *Engine
	bureau  bureau.Client
	bvns    identity.BVNDirectory
	store   ResultStore
	auditor AuditPublisher
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewService(
	engine *Engine,
	bureauClient bureau.Client,
	bvns identity.BVNDirectory,
	store ResultStore,
	auditor AuditPublisher,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		engine:  engine,
		bureau:  bureauClient,
		bvns:    bvns,
		store:   store,
		auditor: auditor,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("credlens/score"),
	}
}

// CalculateScore runs a fresh calculation for the user and persists both
// the current result and a history snapshot.
func (s *Service) CalculateScore(ctx context.Context, userID id.UserID, accountType id.AccountType) (*CreditScoreResult, error) {
	ctx, span := s.tracer.Start(ctx, "score.Calculate",
		trace.WithAttributes(attribute.String("account_type", accountType.String())))
	defer span.End()

	start := time.Now()

	bvn, err := s.bvns.Lookup(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "bvn lookup failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		s.metrics.RecordCalculation("error")
		return nil, err
	}

	var (
		report   *bureau.RawReport
		previous *int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetched, err := s.bureau.FetchCreditReport(gctx, bvn)
		if err != nil {
			return err
		}
		report = fetched
		return nil
	})
	g.Go(func() error {
		latest, err := s.store.FindLatest(gctx, userID)
		if err != nil {
			// A first-time calculation has no previous score.
			if domainerrors.HasCode(err, domainerrors.CodeNotFound) {
				return nil
			}
			return err
		}
		previous = &latest.Score
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to gather scoring inputs",
			slog.String("user_id", userID.String()),
			slog.String("bvn", bvn.Masked()),
			slog.String("error", err.Error()),
		)
		s.metrics.RecordCalculation("error")
		return nil, s.mapBureauError(err)
	}

	result, err := s.engine.Calculate(report, accountType, previous, requestcontext.Now(ctx))
	if err != nil {
		s.metrics.RecordCalculation("error")
		return nil, err
	}

	if err := s.store.SaveResult(ctx, userID, result); err != nil {
		s.metrics.RecordCalculation("error")
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to save credit score")
	}
	if err := s.store.AppendHistory(ctx, userID, HistoryEntry{
		Score:     result.Score,
		Factors:   result.Factors,
		CreatedAt: result.LastUpdated,
	}); err != nil {
		s.metrics.RecordCalculation("error")
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to record score history")
	}

	s.audit(ctx, userID, bvn, result)
	s.observe(result, accountType, time.Since(start))

	s.logger.InfoContext(ctx, "credit score calculated",
		slog.String("user_id", userID.String()),
		slog.String("bvn", bvn.Masked()),
		slog.Int("score", result.Score),
		slog.Int("score_change", result.ScoreChange),
		slog.Bool("fraud_suspected", result.IsFraudSuspected),
	)
	return result, nil
}

// GetScore returns the user's current result without recalculating.
func (s *Service) GetScore(ctx context.Context, userID id.UserID) (*CreditScoreResult, error) {
	result, err := s.store.FindLatest(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.auditor.Emit(ctx, audit.Event{
		UserID: userID,
		Action: audit.ActionScoreViewed,
		Device: requestcontext.Device(ctx),
	})
	return result, nil
}

// GetHistory returns the user's score snapshots, oldest first.
func (s *Service) GetHistory(ctx context.Context, userID id.UserID) ([]HistoryEntry, error) {
	history, err := s.store.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.auditor.Emit(ctx, audit.Event{
		UserID: userID,
		Action: audit.ActionHistoryViewed,
		Device: requestcontext.Device(ctx),
	})
	return history, nil
}

func (s *Service) audit(ctx context.Context, userID id.UserID, bvn id.BVN, result *CreditScoreResult) {
	decision := "clear"
	reason := ""
	if result.IsFraudSuspected {
		decision = "fraud_suspected"
		reason = result.FraudReasons[0]
	}
	s.auditor.Emit(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionScoreCalculated,
		Subject:  bvn.Masked(),
		Decision: decision,
		Reason:   reason,
		Device:   requestcontext.Device(ctx),
	})
}

func (s *Service) observe(result *CreditScoreResult, accountType id.AccountType, elapsed time.Duration) {
	s.metrics.RecordCalculation("success")
	s.metrics.ObserveCalculateLatency(accountType.String(), elapsed.Seconds())
	s.metrics.ObserveScore(result.Score)
	for _, reason := range result.FraudReasons {
		s.metrics.RecordFraudFlag(reason)
	}
}

// mapBureauError folds provider failures into the domain error taxonomy.
func (s *Service) mapBureauError(err error) error {
	var providerErr *bureau.ProviderError
	if errors.As(err, &providerErr) {
		switch providerErr.Category {
		case bureau.ErrorNotFound:
			return domainerrors.Wrap(err, domainerrors.CodeNotFound, "no credit report for this bvn")
		case bureau.ErrorBadData:
			return domainerrors.Wrap(err, domainerrors.CodeUpstreamUnavailable, "credit bureau returned malformed data")
		default:
			return domainerrors.Wrap(err, domainerrors.CodeUpstreamUnavailable, "credit bureau is unavailable")
		}
	}
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to gather scoring inputs")
}
