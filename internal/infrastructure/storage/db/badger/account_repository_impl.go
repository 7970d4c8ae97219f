package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
)

type accountRepositoryImpl struct {
	store *badgerhold.Store
}

// NewAccountRepositoryImpl returns a badger implementation of the domain
// AccountRepository.
func NewAccountRepositoryImpl(store *badgerhold.Store) domain.AccountRepository {
	return accountRepositoryImpl{store}
}

func (r accountRepositoryImpl) AddAccount(
	ctx context.Context, account *domain.Account,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxInsert(tx, account.ID, account); err != nil {
		return &domain.InternalError{Op: "adding account " + account.ID, Err: err}
	}
	return nil
}

func (r accountRepositoryImpl) GetAccount(
	ctx context.Context, id string,
) (*domain.Account, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var account domain.Account
	if err := r.store.TxGet(tx, id, &account); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &domain.NotFoundError{Entity: "account", ID: id}
		}
		return nil, &domain.InternalError{Op: "getting account", Err: err}
	}
	return &account, nil
}

func (r accountRepositoryImpl) GetAccounts(
	ctx context.Context, ids []string,
) ([]domain.Account, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	accounts := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		var account domain.Account
		if err := r.store.TxGet(tx, id, &account); err != nil {
			if err == badgerhold.ErrNotFound {
				continue
			}
			return nil, &domain.InternalError{Op: "getting accounts", Err: err}
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r accountRepositoryImpl) UpdateAccount(
	ctx context.Context,
	id string, updateFn func(a *domain.Account) (*domain.Account, error),
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	account, err := r.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	updatedAccount, err := updateFn(account)
	if err != nil {
		return err
	}

	if err := r.store.TxUpdate(tx, id, updatedAccount); err != nil {
		return &domain.InternalError{Op: "updating account", Err: err}
	}
	return nil
}

func (r accountRepositoryImpl) DeleteAccount(
	ctx context.Context, id string,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxDelete(tx, id, domain.Account{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return &domain.NotFoundError{Entity: "account", ID: id}
		}
		return &domain.InternalError{Op: "deleting account", Err: err}
	}
	return nil
}
