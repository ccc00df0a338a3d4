package accounts

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"log/slog"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
	"github.com/KirkDiggler/theta-arc/internal/pkg/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const sqliteDSNFlags = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// SQLiteConfig contains configuration for the SQLite account repository.
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository stores one JSON document per row. The clan and
// net_worth columns are kept alongside for ad hoc queries.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database file, applies migrations and returns the
// repository. Call Close when done.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path+sqliteDSNFlags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite")
	}
	if err := sqlitemigrate.Apply(ctx, db, migrationFS, "migrations"); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	slog.Info("Account store ready", "backend", "sqlite", "path", cfg.Path)
	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}

	var doc string
	err := r.db.QueryRowContext(ctx, "SELECT doc FROM accounts WHERE id = ?", input.ID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("account %s not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get account")
	}

	acct, err := decodeAccount([]byte(doc))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Account: acct}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateAccount(input.Account); err != nil {
		return nil, err
	}
	if _, err := r.SaveMany(ctx, SaveManyInput{Accounts: []*entities.Account{input.Account}}); err != nil {
		return nil, err
	}
	return &SaveOutput{Account: input.Account}, nil
}

func (r *SQLiteRepository) SaveMany(ctx context.Context, input SaveManyInput) (*SaveManyOutput, error) {
	for _, acct := range input.Accounts {
		if err := validateAccount(acct); err != nil {
			return nil, err
		}
	}
	if len(input.Accounts) == 0 {
		return &SaveManyOutput{}, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin account write")
	}
	defer func() { _ = tx.Rollback() }()

	now := r.clock.Now()
	for _, acct := range input.Accounts {
		acct.UpdatedAt = now
		data, err := json.Marshal(acct)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal account %s", acct.ID)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO accounts (id, doc, clan, net_worth, updated_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET doc = excluded.doc, clan = excluded.clan,
    net_worth = excluded.net_worth, updated_at = excluded.updated_at`,
			acct.ID, string(data), acct.Clan, acct.Currency.NetWorth(), now.UnixMilli(),
		); err != nil {
			return nil, errors.Wrapf(err, "failed to save account %s", acct.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit account write")
	}
	return &SaveManyOutput{}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, doc FROM accounts ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}
	defer func() { _ = rows.Close() }()

	out := []*entities.Account{}
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to scan account")
		}
		acct, err := decodeAccount([]byte(doc))
		if err != nil {
			slog.Warn("Skipping unreadable account", "user_id", id, "error", err)
			continue
		}
		out = append(out, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}
	return &ListOutput{Accounts: out}, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete account")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, errors.NotFoundf("account %s not found", input.ID)
	}
	return &DeleteOutput{}, nil
}
