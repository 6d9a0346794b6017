package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"credlens/internal/score"
	id "credlens/pkg/domain"
)

// PostgresStore persists results in PostgreSQL. The current result lives in
// credit_scores (one row per user, upserted); every calculation also appends
// to credit_score_history, which is never updated or deleted.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed score store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveResult(ctx context.Context, userID id.UserID, result *score.CreditScoreResult) error {
	factors, err := json.Marshal(result.Factors)
	if err != nil {
		return fmt.Errorf("marshal score factors: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credit_scores (
			user_id, score, account_type, score_change, factors,
			fraud_reasons, is_fraud_suspected, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			score = EXCLUDED.score,
			account_type = EXCLUDED.account_type,
			score_change = EXCLUDED.score_change,
			factors = EXCLUDED.factors,
			fraud_reasons = EXCLUDED.fraud_reasons,
			is_fraud_suspected = EXCLUDED.is_fraud_suspected,
			last_updated = EXCLUDED.last_updated`,
		userID.String(), result.Score, string(result.AccountType), result.ScoreChange,
		factors, pq.Array(result.FraudReasons), result.IsFraudSuspected, result.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("save credit score: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindLatest(ctx context.Context, userID id.UserID) (*score.CreditScoreResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT score, account_type, score_change, factors,
		       fraud_reasons, is_fraud_suspected, last_updated
		FROM credit_scores
		WHERE user_id = $1`,
		userID.String(),
	)

	var (
		result      score.CreditScoreResult
		accountType string
		factors     []byte
		reasons     []string
	)
	err := row.Scan(&result.Score, &accountType, &result.ScoreChange, &factors,
		pq.Array(&reasons), &result.IsFraudSuspected, &result.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find credit score: %w", err)
	}
	if err := json.Unmarshal(factors, &result.Factors); err != nil {
		return nil, fmt.Errorf("unmarshal score factors: %w", err)
	}
	result.AccountType = id.AccountType(accountType)
	result.FraudReasons = reasons
	if result.FraudReasons == nil {
		result.FraudReasons = []string{}
	}
	result.IsFraudSuspected = len(result.FraudReasons) > 0
	return &result, nil
}

func (s *PostgresStore) AppendHistory(ctx context.Context, userID id.UserID, entry score.HistoryEntry) error {
	factors, err := json.Marshal(entry.Factors)
	if err != nil {
		return fmt.Errorf("marshal history factors: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credit_score_history (user_id, score, factors, created_at)
		VALUES ($1, $2, $3, $4)`,
		userID.String(), entry.Score, factors, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append score history: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListHistory(ctx context.Context, userID id.UserID) ([]score.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT score, factors, created_at
		FROM credit_score_history
		WHERE user_id = $1
		ORDER BY created_at ASC`,
		userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list score history: %w", err)
	}
	defer rows.Close()

	entries := []score.HistoryEntry{}
	for rows.Next() {
		var (
			entry   score.HistoryEntry
			factors []byte
		)
		if err := rows.Scan(&entry.Score, &factors, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if err := json.Unmarshal(factors, &entry.Factors); err != nil {
			return nil, fmt.Errorf("unmarshal history factors: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score history: %w", err)
	}
	return entries, nil
}
