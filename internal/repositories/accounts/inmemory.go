package accounts

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
	"github.com/KirkDiggler/theta-arc/internal/pkg/clock"
)

// InMemoryRepository keeps accounts in a map. Reads and writes go through
// deep copies so callers never share state with the store.
type InMemoryRepository struct {
	mu       sync.RWMutex
	clock    clock.Clock
	accounts map[string]*entities.Account
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:    c,
		accounts: make(map[string]*entities.Account),
	}
}

func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAccountIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[input.ID]
	if !ok {
		return nil, errors.NotFoundf("account %s not found", input.ID)
	}
	return &GetOutput{Account: acct.Clone()}, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if _, err := r.SaveMany(ctx, SaveManyInput{Accounts: []*entities.Account{input.Account}}); err != nil {
		return nil, err
	}
	return &SaveOutput{Account: input.Account}, nil
}

func (r *InMemoryRepository) SaveMany(_ context.Context, input SaveManyInput) (*SaveManyOutput, error) {
	for _, acct := range input.Accounts {
		if err := validateAccount(acct); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	for _, acct := range input.Accounts {
		acct.UpdatedAt = now
		r.accounts[acct.ID] = acct.Clone()
	}
	return &SaveManyOutput{}, nil
}

func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Account, 0, len(r.accounts))
	for _, acct := range r.accounts {
		out = append(out, acct.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &ListOutput{Accounts: out}, nil
}

func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[input.ID]; !ok {
		return nil, errors.NotFoundf("account %s not found", input.ID)
	}
	delete(r.accounts, input.ID)
	return &DeleteOutput{}, nil
}
