package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
)

type contextRepositoryImpl struct {
	store *badgerhold.Store
}

// NewContextRepositoryImpl returns a badger implementation of the domain
// ContextRepository.
func NewContextRepositoryImpl(store *badgerhold.Store) domain.ContextRepository {
	return contextRepositoryImpl{store}
}

func (r contextRepositoryImpl) GetContext(
	ctx context.Context,
) (*domain.Context, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var mainContext domain.Context
	if err := r.store.TxGet(tx, domain.MainContextID, &mainContext); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &domain.NotFoundError{
				Entity: "context", ID: domain.MainContextID,
			}
		}
		return nil, &domain.InternalError{Op: "getting context", Err: err}
	}
	return &mainContext, nil
}

func (r contextRepositoryImpl) InitContext(ctx context.Context) error {
	tx := ctx.Value("tx").(*badger.Txn)

	mainContext := domain.NewContext()
	if err := r.store.TxInsert(tx, mainContext.ID, mainContext); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return &domain.InternalError{Op: "initializing context", Err: err}
	}
	return nil
}

func (r contextRepositoryImpl) UpdateContext(
	ctx context.Context,
	updateFn func(c *domain.Context) (*domain.Context, error),
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	mainContext, err := r.GetContext(ctx)
	if err != nil {
		return err
	}

	updatedContext, err := updateFn(mainContext)
	if err != nil {
		return err
	}

	if err := r.store.TxUpdate(tx, updatedContext.ID, updatedContext); err != nil {
		return &domain.InternalError{Op: "updating context", Err: err}
	}
	return nil
}
