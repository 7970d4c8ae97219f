package ports

import (
	"context"

	"github.com/walletd-network/walletd/internal/core/domain"
)

// RepoManager gives access to the repositories of the six wallet store
// entities and to the transaction engine that runs multiple repository
// operations as one atomic scope.
type RepoManager interface {
	NetworkRepository() domain.NetworkRepository
	TokenRepository() domain.TokenRepository
	WalletRepository() domain.WalletRepository
	AccountRepository() domain.AccountRepository
	ContextRepository() domain.ContextRepository
	CredentialRepository() domain.CredentialRepository

	Close()

	// NewTransaction opens a raw write transaction on the underlying store.
	NewTransaction() Transaction
	// RunTransaction runs the handler inside a single store transaction,
	// committing on success and discarding on any error. Write transactions
	// are serialized, one at a time per store instance; read-only ones
	// observe the last committed state.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)
}

// Transaction interface defines the method to commit or discard a database
// transaction.
type Transaction interface {
	Commit() error
	Discard()
}
