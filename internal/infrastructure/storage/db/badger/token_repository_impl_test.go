package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
)

func TestGetTokenReturnsNilWhenAbsent(t *testing.T) {
	repoManager := newTestRepoManager(t)

	res, err := repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repoManager.TokenRepository().GetToken(ctx, "missing")
		},
	)
	require.NoError(t, err)
	assert.Nil(t, res.(*domain.Token))
}

func TestGetTokensByNetwork(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.TokenRepository()

	tokens := []domain.Token{
		{ID: randomID("token"), Name: "USD Coin", NetworkID: "eth", Symbol: "USDC"},
		{ID: randomID("token"), Name: "Tether", NetworkID: "eth", Symbol: "USDT"},
		{ID: randomID("token"), Name: "PancakeSwap", NetworkID: "bsc", Symbol: "CAKE"},
	}

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			for i := range tokens {
				if err := repo.AddToken(ctx, &tokens[i]); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	)
	require.NoError(t, err)

	res, err := repoManager.RunTransaction(
		context.Background(), true, func(ctx context.Context) (interface{}, error) {
			return repo.GetTokensByNetwork(ctx, "eth")
		},
	)
	require.NoError(t, err)

	ethTokens := res.([]domain.Token)
	require.Len(t, ethTokens, 2)
	for _, token := range ethTokens {
		assert.Equal(t, "eth", token.NetworkID)
	}
}
