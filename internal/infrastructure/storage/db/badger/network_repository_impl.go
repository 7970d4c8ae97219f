package dbbadger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/walletd-network/walletd/internal/core/domain"
)

type networkRepositoryImpl struct {
	store *badgerhold.Store
}

// NewNetworkRepositoryImpl returns a badger implementation of the domain
// NetworkRepository.
func NewNetworkRepositoryImpl(store *badgerhold.Store) domain.NetworkRepository {
	return networkRepositoryImpl{store}
}

func (r networkRepositoryImpl) AddNetwork(
	ctx context.Context, network *domain.Network,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxInsert(tx, network.ID, network); err != nil {
		if err == badgerhold.ErrKeyExists {
			return &domain.InternalError{
				Op:  "adding network " + network.ID,
				Err: err,
			}
		}
		return &domain.InternalError{Op: "adding network", Err: err}
	}
	return nil
}

func (r networkRepositoryImpl) GetNetwork(
	ctx context.Context, id string,
) (*domain.Network, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var network domain.Network
	if err := r.store.TxGet(tx, id, &network); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, &domain.NotFoundError{Entity: "network", ID: id}
		}
		return nil, &domain.InternalError{Op: "getting network", Err: err}
	}
	return &network, nil
}

func (r networkRepositoryImpl) GetAllNetworks(
	ctx context.Context,
) ([]domain.Network, error) {
	tx := ctx.Value("tx").(*badger.Txn)

	var networks []domain.Network
	if err := r.store.TxFind(tx, &networks, nil); err != nil {
		return nil, &domain.InternalError{Op: "listing networks", Err: err}
	}
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Position > networks[j].Position
	})
	return networks, nil
}

func (r networkRepositoryImpl) UpdateNetwork(
	ctx context.Context,
	id string, updateFn func(n *domain.Network) (*domain.Network, error),
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	network, err := r.GetNetwork(ctx, id)
	if err != nil {
		return err
	}

	updatedNetwork, err := updateFn(network)
	if err != nil {
		return err
	}

	if err := r.store.TxUpdate(tx, id, updatedNetwork); err != nil {
		return &domain.InternalError{Op: "updating network", Err: err}
	}
	return nil
}

func (r networkRepositoryImpl) DeleteNetwork(
	ctx context.Context, id string,
) error {
	tx := ctx.Value("tx").(*badger.Txn)

	if err := r.store.TxDelete(tx, id, domain.Network{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return &domain.NotFoundError{Entity: "network", ID: id}
		}
		return &domain.InternalError{Op: "deleting network", Err: err}
	}
	return nil
}
