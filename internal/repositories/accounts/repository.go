// Package accounts persists player account documents. Every write replaces
// the whole document; SaveMany writes several documents atomically.
package accounts

//go:generate mockgen -destination=mock/mock_repository.go -package=accountsmock github.com/KirkDiggler/theta-arc/internal/repositories/accounts Repository

import (
	"context"

	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// Repository defines the interface for account persistence
type Repository interface {
	// Get retrieves an account by user ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the account doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save upserts one account document
	// Returns errors.InvalidArgument for nil accounts or empty IDs
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// SaveMany upserts several documents in one atomic write
	// Returns errors.InvalidArgument for nil accounts or empty IDs
	// Returns errors.Internal for storage failures; nothing is written then
	SaveMany(ctx context.Context, input SaveManyInput) (*SaveManyOutput, error)

	// List returns every stored account
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes an account
	// Returns errors.NotFound if the account doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting an account
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an account
type GetOutput struct {
	Account *entities.Account
}

// SaveInput defines the input for saving an account
type SaveInput struct {
	Account *entities.Account
}

// SaveOutput defines the output for saving an account
type SaveOutput struct {
	Account *entities.Account
}

// SaveManyInput defines the input for an atomic multi-account write
type SaveManyInput struct {
	Accounts []*entities.Account
}

// SaveManyOutput defines the output for an atomic multi-account write
type SaveManyOutput struct{}

// ListInput defines the input for listing accounts
type ListInput struct{}

// ListOutput defines the output for listing accounts
type ListOutput struct {
	Accounts []*entities.Account
}

// DeleteInput defines the input for deleting an account
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an account
type DeleteOutput struct{}
