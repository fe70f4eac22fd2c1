package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"clubledger/internal/club/models"
	id "clubledger/pkg/domain"
	"clubledger/pkg/platform/sentinel"
	txcontext "clubledger/pkg/platform/tx"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// Store persists clubs, memberships and the club counter in PostgreSQL.
// Every query runs on the ambient transaction when one is in the context.
type Store struct {
	db *sql.DB
}

// New constructs a PostgreSQL-backed club store.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// NextClubID reads the counter row and locks it for the rest of the
// transaction, so concurrent creators allocate distinct ids.
func (s *Store) NextClubID(ctx context.Context) (id.ClubID, error) {
	query := `SELECT next_id FROM club_counter WHERE singleton`
	if _, ok := txcontext.From(ctx); ok {
		query += ` FOR UPDATE`
	}
	var next int64
	if err := txcontext.Execer(ctx, s.db).QueryRowContext(ctx, query).Scan(&next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("read club counter: %w", err)
	}
	return id.ClubID(next), nil
}

func (s *Store) SetNextClubID(ctx context.Context, next id.ClubID) error {
	_, err := txcontext.Execer(ctx, s.db).ExecContext(ctx, `
		INSERT INTO club_counter (singleton, next_id) VALUES (TRUE, $1)
		ON CONFLICT (singleton) DO UPDATE SET next_id = EXCLUDED.next_id
	`, int64(next))
	if err != nil {
		return fmt.Errorf("store club counter: %w", err)
	}
	return nil
}

func (s *Store) FindClub(ctx context.Context, clubID id.ClubID) (*models.Club, error) {
	var (
		club  models.Club
		name  []byte
		fee   string
		owner uuid.UUID
	)
	err := txcontext.Execer(ctx, s.db).QueryRowContext(ctx,
		`SELECT name, fee::text, owner FROM clubs WHERE id = $1`, int64(clubID),
	).Scan(&name, &fee, &owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find club: %w", err)
	}
	parsed, err := strconv.ParseUint(fee, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse club fee: %w", err)
	}
	club.ID = clubID
	club.Name = string(name)
	club.Fee = id.Balance(parsed)
	club.Owner = id.AccountID(owner)
	return &club, nil
}

func (s *Store) SaveClub(ctx context.Context, club *models.Club) error {
	_, err := txcontext.Execer(ctx, s.db).ExecContext(ctx, `
		INSERT INTO clubs (id, name, fee, owner) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET fee = EXCLUDED.fee, owner = EXCLUDED.owner
	`, int64(club.ID), []byte(club.Name), formatUint(uint64(club.Fee)), uuid.UUID(club.Owner))
	if err != nil {
		return translateErr("save club", err)
	}
	return nil
}

func (s *Store) FindMembership(ctx context.Context, clubID id.ClubID, account id.AccountID) (*models.Membership, error) {
	row := txcontext.Execer(ctx, s.db).QueryRowContext(ctx, `
		SELECT club_id, account, name, status, paid_until::text
		FROM memberships
		WHERE club_id = $1 AND account = $2
	`, int64(clubID), uuid.UUID(account))
	m, err := scanMembership(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find membership: %w", err)
	}
	return m, nil
}

func (s *Store) SaveMembership(ctx context.Context, membership *models.Membership) error {
	var until *string
	if u, ok := membership.Status.Until(); ok {
		v := formatUint(uint64(u))
		until = &v
	}
	_, err := txcontext.Execer(ctx, s.db).ExecContext(ctx, `
		INSERT INTO memberships (club_id, account, name, status, paid_until)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (club_id, account) DO UPDATE
		SET name = EXCLUDED.name, status = EXCLUDED.status, paid_until = EXCLUDED.paid_until
	`,
		int64(membership.ClubID),
		uuid.UUID(membership.Account),
		[]byte(membership.Name),
		membership.Status.Kind().String(),
		until,
	)
	if err != nil {
		return translateErr("save membership", err)
	}
	return nil
}

func (s *Store) ListMemberships(ctx context.Context, clubID id.ClubID) ([]models.Membership, error) {
	rows, err := txcontext.Execer(ctx, s.db).QueryContext(ctx, `
		SELECT club_id, account, name, status, paid_until::text
		FROM memberships
		WHERE club_id = $1
		ORDER BY account
	`, int64(clubID))
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var out []models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memberships: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMembership(row scanner) (*models.Membership, error) {
	var (
		clubID  int64
		account uuid.UUID
		name    []byte
		status  string
		until   sql.NullString
	)
	if err := row.Scan(&clubID, &account, &name, &status, &until); err != nil {
		return nil, err
	}
	m := &models.Membership{
		ClubID:  id.ClubID(clubID),
		Account: id.AccountID(account),
		Name:    string(name),
		Status:  models.Inactive(),
	}
	if status == models.StatusPaid.String() {
		if !until.Valid {
			return nil, fmt.Errorf("paid membership without expiry")
		}
		u, err := strconv.ParseUint(until.String, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse paid_until: %w", err)
		}
		m.Status = models.Paid(id.BlockNumber(u))
	}
	return m, nil
}

func translateErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w", op, sentinel.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
