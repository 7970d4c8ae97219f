package domain

import "context"

// AccountRepository is the abstraction for any kind of database intended to
// persist Accounts.
type AccountRepository interface {
	// AddAccount adds a new account to the repository.
	AddAccount(ctx context.Context, account *Account) error
	// GetAccount returns the account with the given id.
	GetAccount(ctx context.Context, id string) (*Account, error)
	// GetAccounts returns the accounts matching the given ids. Missing ids
	// are skipped, the result is a membership filter.
	GetAccounts(ctx context.Context, ids []string) ([]Account, error)
	// UpdateAccount updates the state of an account. The closure function
	// lets commit multiple changes to a certain account in a transactional
	// way.
	UpdateAccount(
		ctx context.Context,
		id string, updateFn func(a *Account) (*Account, error),
	) error
	// DeleteAccount removes an account from the repository.
	DeleteAccount(ctx context.Context, id string) error
}
