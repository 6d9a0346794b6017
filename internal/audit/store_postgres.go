package audit

import (
	"context"
	"database/sql"
	"fmt"

	id "credlens/pkg/domain"
)

// PostgresStore persists events in the audit_events table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (
			user_id, action, subject, decision, reason, request_id, device, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.UserID.String(), string(event.Action), event.Subject, event.Decision,
		event.Reason, event.RequestID, event.Device, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, action, subject, decision, reason, request_id, device, created_at
		FROM audit_events
		WHERE user_id = $1
		ORDER BY created_at ASC`,
		userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			event  Event
			rawID  string
			action string
		)
		if err := rows.Scan(&rawID, &action, &event.Subject, &event.Decision,
			&event.Reason, &event.RequestID, &event.Device, &event.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		userID, err := id.ParseUserID(rawID)
		if err != nil {
			return nil, fmt.Errorf("stored audit event has invalid user id: %w", err)
		}
		event.UserID = userID
		event.Action = Action(action)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
