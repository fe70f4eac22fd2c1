package balances

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "clubledger/pkg/domain"
	"clubledger/pkg/platform/tx"
)

// PostgresLedger is the FeeGateway over the balances table. Transfers join
// the ambient transaction from the context, or open their own.
type PostgresLedger struct {
	db      *sql.DB
	tx      *tx.Postgres
	ed      id.Balance
	metrics *Metrics
}

type PostgresOption func(*PostgresLedger)

func WithPostgresExistentialDeposit(ed id.Balance) PostgresOption {
	return func(l *PostgresLedger) { l.ed = ed }
}

func WithPostgresMetrics(m *Metrics) PostgresOption {
	return func(l *PostgresLedger) { l.metrics = m }
}

func NewPostgresLedger(db *sql.DB, opts ...PostgresOption) *PostgresLedger {
	l := &PostgresLedger{db: db, tx: tx.NewPostgres(db), ed: DefaultExistentialDeposit}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *PostgresLedger) Balance(ctx context.Context, account id.AccountID) (id.Balance, error) {
	var raw string
	err := tx.Execer(ctx, l.db).QueryRowContext(ctx,
		`SELECT free::text FROM balances WHERE account = $1`, uuid.UUID(account),
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query balance: %w", err)
	}
	return parseBalance(raw)
}

// Endow credits amount to account. Used at genesis and by tests.
func (l *PostgresLedger) Endow(ctx context.Context, account id.AccountID, amount id.Balance) error {
	_, err := tx.Execer(ctx, l.db).ExecContext(ctx, `
		INSERT INTO balances (account, free) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE
		SET free = LEAST(balances.free + EXCLUDED.free, 18446744073709551615)
	`, uuid.UUID(account), formatBalance(amount))
	if err != nil {
		return fmt.Errorf("endow account: %w", err)
	}
	return nil
}

func (l *PostgresLedger) Transfer(ctx context.Context, from, to id.AccountID, amount id.Balance) error {
	if amount == 0 || from == to {
		return nil
	}
	err := l.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := l.lock(ctx, from, to)
		if err != nil {
			return err
		}
		nextFrom, nextTo, err := settle(current[from], current[to], amount, l.ed)
		if err != nil {
			return err
		}
		if err := l.store(ctx, from, nextFrom); err != nil {
			return err
		}
		return l.store(ctx, to, nextTo)
	})
	l.metrics.observe(err)
	return err
}

// lock reads both rows FOR UPDATE in key order so concurrent transfers
// cannot deadlock.
func (l *PostgresLedger) lock(ctx context.Context, accounts ...id.AccountID) (map[id.AccountID]id.Balance, error) {
	keys := make([]string, len(accounts))
	for i, a := range accounts {
		keys[i] = a.String()
	}
	rows, err := tx.Execer(ctx, l.db).QueryContext(ctx, `
		SELECT account, free::text FROM balances
		WHERE account = ANY($1::uuid[])
		ORDER BY account
		FOR UPDATE
	`, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("lock balances: %w", err)
	}
	defer rows.Close()

	out := make(map[id.AccountID]id.Balance, len(accounts))
	for rows.Next() {
		var (
			account uuid.UUID
			raw     string
		)
		if err := rows.Scan(&account, &raw); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		b, err := parseBalance(raw)
		if err != nil {
			return nil, err
		}
		out[id.AccountID(account)] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate balances: %w", err)
	}
	return out, nil
}

func (l *PostgresLedger) store(ctx context.Context, account id.AccountID, free id.Balance) error {
	_, err := tx.Execer(ctx, l.db).ExecContext(ctx, `
		INSERT INTO balances (account, free) VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET free = EXCLUDED.free
	`, uuid.UUID(account), formatBalance(free))
	if err != nil {
		return fmt.Errorf("store balance: %w", err)
	}
	return nil
}

func parseBalance(raw string) (id.Balance, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance %q: %w", raw, err)
	}
	return id.Balance(v), nil
}

func formatBalance(b id.Balance) string {
	return strconv.FormatUint(uint64(b), 10)
}
