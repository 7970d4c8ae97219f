package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
)

type tokenRepositoryImpl struct {
	store *badgerhold.Store
}

// NewTokenRepositoryImpl returns a badger implementation of the domain
// TokenRepository.
func NewTokenRepositoryImpl(store *badgerhold.Store) domain.TokenRepository {
	return tokenRepositoryImpl{store}
}

func (r tokenRepositoryImpl) AddToken(
	ctx context.Context, token *domain.Token,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxInsert(tx, token.ID, token); err != nil {
		return &domain.InternalError{Op: "adding token " + token.ID, Err: err}
	}
	return nil
}

func (r tokenRepositoryImpl) GetToken(
	ctx context.Context, id string,
) (*domain.Token, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var token domain.Token
	if err := r.store.TxGet(tx, id, &token); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, &domain.InternalError{Op: "getting token", Err: err}
	}
	return &token, nil
}

func (r tokenRepositoryImpl) GetTokensByNetwork(
	ctx context.Context, networkID string,
) ([]domain.Token, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var tokens []domain.Token
	query := badgerhold.Where("NetworkID").Eq(networkID).Index("NetworkID")
	if err := r.store.TxFind(tx, &tokens, query); err != nil {
		return nil, &domain.InternalError{Op: "listing tokens", Err: err}
	}
	return tokens, nil
}
