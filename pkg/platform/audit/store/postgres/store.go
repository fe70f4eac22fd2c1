package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "clubledger/pkg/domain"
	audit "clubledger/pkg/platform/audit"
	txcontext "clubledger/pkg/platform/tx"
)

// Store implements audit.Store using the transactional outbox pattern.
// Events are written to the outbox table in the caller's transaction and
// relayed to a sink by the outbox worker.
type Store struct {
	db *sql.DB
}

// New creates a new PostgreSQL audit store that writes to the outbox.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append writes an audit event to the outbox table.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	payload := event.Payload
	if payload == nil {
		payload = json.RawMessage("{}")
	}

	var subject *uuid.UUID
	if !event.Subject.IsNil() {
		sub := uuid.UUID(event.Subject)
		subject = &sub
	}

	query := `
		INSERT INTO audit_outbox (
			id, category, action, club_id, subject, actor_id,
			block, payload, request_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := txcontext.Execer(ctx, s.db).ExecContext(ctx, query,
		event.ID,
		string(event.Category),
		event.Action,
		int64(event.ClubID),
		subject,
		event.ActorID,
		strconv.FormatUint(uint64(event.Block), 10),
		[]byte(payload),
		event.RequestID,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

const selectColumns = `
	SELECT id, category, action, club_id, subject, actor_id,
		   block::text, payload, request_id, created_at
	FROM audit_outbox
`

// ListByClub returns events for a club in append order.
func (s *Store) ListByClub(ctx context.Context, clubID id.ClubID) ([]audit.Event, error) {
	rows, err := txcontext.Execer(ctx, s.db).QueryContext(ctx,
		selectColumns+` WHERE club_id = $1 ORDER BY seq`, int64(clubID))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// FetchPending returns up to limit unpublished events, oldest first.
func (s *Store) FetchPending(ctx context.Context, limit int) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE published_at IS NULL ORDER BY seq LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query pending outbox: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// MarkPublished stamps relayed events so they are not fetched again.
func (s *Store) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]string, len(ids))
	for i, eventID := range ids {
		raw[i] = eventID.String()
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE audit_outbox SET published_at = NOW() WHERE id = ANY($1::uuid[])`,
		pq.Array(raw),
	)
	if err != nil {
		return fmt.Errorf("mark outbox published: %w", err)
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	var events []audit.Event
	for rows.Next() {
		var (
			event    audit.Event
			category string
			clubID   int64
			subject  *uuid.UUID
			block    string
			payload  []byte
		)
		err := rows.Scan(
			&event.ID,
			&category,
			&event.Action,
			&clubID,
			&subject,
			&event.ActorID,
			&block,
			&payload,
			&event.RequestID,
			&event.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Category = audit.EventCategory(category)
		event.ClubID = id.ClubID(clubID)
		if subject != nil {
			event.Subject = id.AccountID(*subject)
		}
		b, err := strconv.ParseUint(block, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse audit block: %w", err)
		}
		event.Block = id.BlockNumber(b)
		event.Payload = json.RawMessage(payload)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
