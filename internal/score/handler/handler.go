// Package handler wires the scoring endpoints to the score service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"credlens/internal/score"
	id "credlens/pkg/domain"
	dErrors "credlens/pkg/domain-errors"
	"credlens/pkg/platform/httputil"
	"credlens/pkg/requestcontext"
)

// Service defines the interface for scoring operations.
type Service interface {
	CalculateScore(ctx context.Context, userID id.UserID, accountType id.AccountType) (*score.CreditScoreResult, error)
	GetScore(ctx context.Context, userID id.UserID) (*score.CreditScoreResult, error)
	GetHistory(ctx context.Context, userID id.UserID) ([]score.HistoryEntry, error)
}

// Handler serves the credit-score endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a score handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the scoring endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/score/calculate", h.HandleCalculate)
	r.Get("/score", h.HandleGet)
	r.Get("/score/history", h.HandleHistory)
}

// HandleCalculate handles POST /score/calculate requests.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[CalculateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CalculateScore(ctx, userID, req.ParsedAccountType())
	if err != nil {
		h.logger.ErrorContext(ctx, "score calculation failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "score calculation served",
		"request_id", requestID,
		"user_id", userID,
		"score", result.Score,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleGet handles GET /score requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	result, err := h.service.GetScore(ctx, userID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "score lookup failed",
				"request_id", requestID,
				"user_id", userID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleHistory handles GET /score/history requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	history, err := h.service.GetHistory(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "score history lookup failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromHistory(history))
}
