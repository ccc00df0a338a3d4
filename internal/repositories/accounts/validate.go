package accounts

import (
	"github.com/KirkDiggler/theta-arc/internal/entities"
	"github.com/KirkDiggler/theta-arc/internal/errors"
)

const (
	errAccountNil     = "account cannot be nil"
	errAccountIDEmpty = "account ID cannot be empty"
)

func validateAccount(acct *entities.Account) error {
	if acct == nil {
		return errors.InvalidArgument(errAccountNil)
	}
	if acct.ID == "" {
		return errors.InvalidArgument(errAccountIDEmpty)
	}
	return nil
}
