package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
)

type walletRepositoryImpl struct {
	store *badgerhold.Store
}

// NewWalletRepositoryImpl returns a badger implementation of the domain
// WalletRepository.
func NewWalletRepositoryImpl(store *badgerhold.Store) domain.WalletRepository {
	return walletRepositoryImpl{store}
}

func (r walletRepositoryImpl) AddWallet(
	ctx context.Context, wallet *domain.Wallet,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxInsert(tx, wallet.ID, wallet); err != nil {
		return &domain.InternalError{Op: "adding wallet " + wallet.ID, Err: err}
	}
	return nil
}

func (r walletRepositoryImpl) GetWallet(
	ctx context.Context, id string,
) (*domain.Wallet, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var wallet domain.Wallet
	if err := r.store.TxGet(tx, id, &wallet); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, &domain.InternalError{Op: "getting wallet", Err: err}
	}
	return &wallet, nil
}

func (r walletRepositoryImpl) GetAllWallets(
	ctx context.Context,
) ([]domain.Wallet, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var wallets []domain.Wallet
	if err := r.store.TxFind(tx, &wallets, nil); err != nil {
		return nil, &domain.InternalError{Op: "listing wallets", Err: err}
	}
	return wallets, nil
}

func (r walletRepositoryImpl) GetWalletsByAccount(
	ctx context.Context, accountID string,
) ([]domain.Wallet, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var wallets []domain.Wallet
	query := badgerhold.Where("Accounts").Contains(accountID)
	if err := r.store.TxFind(tx, &wallets, query); err != nil {
		return nil, &domain.InternalError{Op: "listing wallets by account", Err: err}
	}
	return wallets, nil
}

func (r walletRepositoryImpl) UpdateWallet(
	ctx context.Context,
	id string, updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	wallet, err := r.GetWallet(ctx, id)
	if err != nil {
		return err
	}
	if wallet == nil {
		return &domain.NotFoundError{Entity: "wallet", ID: id}
	}

	updatedWallet, err := updateFn(wallet)
	if err != nil {
		return err
	}

	if err := r.store.TxUpdate(tx, id, updatedWallet); err != nil {
		return &domain.InternalError{Op: "updating wallet", Err: err}
	}
	return nil
}

func (r walletRepositoryImpl) DeleteWallet(
	ctx context.Context, id string,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxDelete(tx, id, domain.Wallet{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return &domain.NotFoundError{Entity: "wallet", ID: id}
		}
		return &domain.InternalError{Op: "deleting wallet", Err: err}
	}
	return nil
}
