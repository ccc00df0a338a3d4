// Package ledger loads and saves account documents for the game
// services. A user with no stored document gets a fresh default account.
package ledger

import (
	"context"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/repositories/accounts"
)

// Config holds the dependencies for the ledger
type Config struct {
	AccountRepo     accounts.Repository
	SpecialStatuses map[string]string
	DefaultStatus   string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.AccountRepo == nil {
		vb.RequiredField("AccountRepo")
	}

	return vb.Build()
}

// Ledger is the write-through account store used by every orchestrator
type Ledger struct {
	repo          accounts.Repository
	special       map[string]string
	defaultStatus string
}

// New creates a ledger
func New(cfg *Config) (*Ledger, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	special := make(map[string]string, len(cfg.SpecialStatuses))
	for k, v := range cfg.SpecialStatuses {
		special[k] = v
	}

	return &Ledger{
		repo:          cfg.AccountRepo,
		special:       special,
		defaultStatus: cfg.DefaultStatus,
	}, nil
}

// Status returns the fixed status for special users, otherwise current
func (l *Ledger) Status(userID, current string) string {
	if s, ok := l.special[userID]; ok {
		return s
	}
	if current == "" {
		return l.defaultStatus
	}
	return current
}

// Load returns the user's account, or a default one when none is stored.
// The result is normalized and safe to mutate.
func (l *Ledger) Load(ctx context.Context, userID string) (*entities.Account, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	out, err := l.repo.Get(ctx, accounts.GetInput{ID: userID})
	if err != nil {
		if errors.IsNotFound(err) {
			return entities.NewAccount(userID, l.Status(userID, "")), nil
		}
		return nil, errors.Wrapf(err, "failed to load account %s", userID)
	}

	acct := out.Account
	acct.Normalize()
	acct.Status = l.Status(userID, acct.Status)
	return acct, nil
}

// Peek returns the stored account without creating a default. Missing
// accounts are NotFound.
func (l *Ledger) Peek(ctx context.Context, userID string) (*entities.Account, error) {
	out, err := l.repo.Get(ctx, accounts.GetInput{ID: userID})
	if err != nil {
		return nil, err
	}
	out.Account.Normalize()
	return out.Account, nil
}

// Save writes one account
func (l *Ledger) Save(ctx context.Context, acct *entities.Account) error {
	if _, err := l.repo.Save(ctx, accounts.SaveInput{Account: acct}); err != nil {
		return errors.Wrapf(err, "failed to save account")
	}
	return nil
}

// SaveMany writes several accounts atomically
func (l *Ledger) SaveMany(ctx context.Context, accts ...*entities.Account) error {
	if _, err := l.repo.SaveMany(ctx, accounts.SaveManyInput{Accounts: accts}); err != nil {
		return errors.Wrapf(err, "failed to save accounts")
	}
	return nil
}

// Update loads the account, applies fn and saves when fn succeeds
func (l *Ledger) Update(ctx context.Context, userID string, fn func(*entities.Account) error) (*entities.Account, error) {
	acct, err := l.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(acct); err != nil {
		return nil, err
	}
	if err := l.Save(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// All returns every stored account
func (l *Ledger) All(ctx context.Context) ([]*entities.Account, error) {
	out, err := l.repo.List(ctx, accounts.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}
	return out.Accounts, nil
}

// Reset replaces the account with a fresh default, keeping its status
func (l *Ledger) Reset(ctx context.Context, userID string) (*entities.Account, error) {
	current, err := l.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	fresh := entities.NewAccount(userID, l.Status(userID, current.Status))
	if err := l.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
