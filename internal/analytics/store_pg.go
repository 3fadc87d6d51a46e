package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PGStore persists analytics events in Postgres.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Insert(ctx context.Context, event Event) error {
	const q = `
        INSERT INTO analytics_events (id, type, payload, created_at)
        VALUES ($1, $2, $3, $4)`
	if _, err := s.db.ExecContext(ctx, q, event.ID, string(event.Type), []byte(event.Payload), event.CreatedAt); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

func (s *PGStore) ListSince(ctx context.Context, since time.Time) ([]Event, error) {
	const q = `
        SELECT id, type, payload, created_at
        FROM analytics_events
        WHERE created_at >= $1
        ORDER BY created_at ASC`
	rows, err := s.db.QueryContext(ctx, q, since)
	if err != nil {
		return nil, fmt.Errorf("list analytics events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e       Event
			typ     string
			payload []byte
		)
		if err := rows.Scan(&e.ID, &typ, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analytics event: %w", err)
		}
		e.Type = EventType(typ)
		e.Payload = payload
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analytics events: %w", err)
	}
	return out, nil
}
