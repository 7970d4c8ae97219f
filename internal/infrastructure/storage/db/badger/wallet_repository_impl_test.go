package dbbadger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
)

func TestGetWalletReturnsNilWhenAbsent(t *testing.T) {
	repoManager := newTestRepoManager(t)

	res, err := repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repoManager.WalletRepository().GetWallet(ctx, "missing")
		},
	)
	require.NoError(t, err)
	assert.Nil(t, res.(*domain.Wallet))
}

func TestGetWalletsByAccount(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.WalletRepository()
	accountID := randomID("account")

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			if err := repo.AddWallet(ctx, &domain.Wallet{
				ID: "hd-1", Name: "HD Wallet 1", Type: domain.WalletTypeHD,
				Accounts: []string{accountID},
			}); err != nil {
				return nil, err
			}
			return nil, repo.AddWallet(ctx, &domain.Wallet{
				ID: "hd-2", Name: "HD Wallet 2", Type: domain.WalletTypeHD,
			})
		},
	)
	require.NoError(t, err)

	res, err := repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repo.GetWalletsByAccount(ctx, accountID)
		},
	)
	require.NoError(t, err)

	wallets := res.([]domain.Wallet)
	require.Len(t, wallets, 1)
	assert.Equal(t, "hd-1", wallets[0].ID)
}

func TestUpdateWalletNotFound(t *testing.T) {
	repoManager := newTestRepoManager(t)

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			return nil, repoManager.WalletRepository().UpdateWallet(
				ctx, "missing", func(w *domain.Wallet) (*domain.Wallet, error) {
					return w, nil
				},
			)
		},
	)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
