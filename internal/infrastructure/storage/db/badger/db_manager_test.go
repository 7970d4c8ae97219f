package dbbadger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
)

func TestRunTransactionCommitsOnSuccess(t *testing.T) {
	repoManager := newTestRepoManager(t)
	id := randomID("evm")

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			return nil, repoManager.NetworkRepository().AddNetwork(
				ctx, &domain.Network{ID: id, Name: "Testnet"},
			)
		},
	)
	require.NoError(t, err)

	res, err := repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repoManager.NetworkRepository().GetNetwork(ctx, id)
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "Testnet", res.(*domain.Network).Name)
}

func TestRunTransactionDiscardsOnError(t *testing.T) {
	repoManager := newTestRepoManager(t)
	id := randomID("evm")
	expectedErr := errors.New("something went wrong")

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			if err := repoManager.NetworkRepository().AddNetwork(
				ctx, &domain.Network{ID: id, Name: "Testnet"},
			); err != nil {
				return nil, err
			}
			return nil, expectedErr
		},
	)
	require.Equal(t, expectedErr, err)

	_, err = repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repoManager.NetworkRepository().GetNetwork(ctx, id)
		},
	)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRunTransactionRecoversFromPanic(t *testing.T) {
	repoManager := newTestRepoManager(t)
	id := randomID("evm")

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			if err := repoManager.NetworkRepository().AddNetwork(
				ctx, &domain.Network{ID: id, Name: "Testnet"},
			); err != nil {
				return nil, err
			}
			panic("boom")
		},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, err = repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repoManager.NetworkRepository().GetNetwork(ctx, id)
		},
	)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
