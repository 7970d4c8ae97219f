package domain

import "context"

// WalletRepository is the abstraction for any kind of database intended to
// persist Wallets.
type WalletRepository interface {
	// AddWallet adds a new wallet to the repository.
	AddWallet(ctx context.Context, wallet *Wallet) error
	// GetWallet returns the wallet with the given id, or nil if absent.
	// Absence is a normal outcome here, not an error.
	GetWallet(ctx context.Context, id string) (*Wallet, error)
	// GetAllWallets returns all wallets.
	GetAllWallets(ctx context.Context) ([]Wallet, error)
	// GetWalletsByAccount returns the wallets whose accounts set contains the
	// given account id. This is the derived assignee back-reference.
	GetWalletsByAccount(ctx context.Context, accountID string) ([]Wallet, error)
	// UpdateWallet updates the state of a wallet. The closure function lets
	// commit multiple changes to a certain wallet in a transactional way.
	UpdateWallet(
		ctx context.Context,
		id string, updateFn func(w *Wallet) (*Wallet, error),
	) error
	// DeleteWallet removes a wallet from the repository.
	DeleteWallet(ctx context.Context, id string) error
}
