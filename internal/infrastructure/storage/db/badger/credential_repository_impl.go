package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
)

type credentialRepositoryImpl struct {
	store *badgerhold.Store
}

// NewCredentialRepositoryImpl returns a badger implementation of the domain
// CredentialRepository.
func NewCredentialRepositoryImpl(store *badgerhold.Store) domain.CredentialRepository {
	return credentialRepositoryImpl{store}
}

func (r credentialRepositoryImpl) AddCredential(
	ctx context.Context, credential *domain.Credential,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxInsert(tx, credential.WalletID, credential); err != nil {
		return &domain.InternalError{
			Op:  "adding credential " + credential.WalletID,
			Err: err,
		}
	}
	return nil
}

func (r credentialRepositoryImpl) GetCredential(
	ctx context.Context, walletID string,
) (*domain.Credential, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var credential domain.Credential
	if err := r.store.TxGet(tx, walletID, &credential); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &domain.NotFoundError{Entity: "credential", ID: walletID}
		}
		return nil, &domain.InternalError{Op: "getting credential", Err: err}
	}
	return &credential, nil
}

func (r credentialRepositoryImpl) DeleteCredential(
	ctx context.Context, walletID string,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxDelete(tx, walletID, domain.Credential{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return &domain.InternalError{Op: "deleting credential", Err: err}
	}
	return nil
}
