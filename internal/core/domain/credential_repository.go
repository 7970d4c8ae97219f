package domain

import "context"

// CredentialRepository is the abstraction for any kind of database intended
// to persist the encrypted seed material of HD wallets.
type CredentialRepository interface {
	// AddCredential adds a new credential to the repository.
	AddCredential(ctx context.Context, credential *Credential) error
	// GetCredential returns the credential of the given wallet.
	GetCredential(ctx context.Context, walletID string) (*Credential, error)
	// DeleteCredential removes the credential of the given wallet. Deleting
	// an absent credential is a no-op.
	DeleteCredential(ctx context.Context, walletID string) error
}
