package dbbadger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
)

func TestInitContextIsIdempotent(t *testing.T) {
	repoManager := newTestRepoManager(t)
	repo := repoManager.ContextRepository()

	_, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			if err := repo.InitContext(ctx); err != nil {
				return nil, err
			}
			return nil, repo.UpdateContext(
				ctx, func(c *domain.Context) (*domain.Context, error) {
					c.NextHD++
					return c, nil
				},
			)
		},
	)
	require.NoError(t, err)

	// a second init must not reset the stored state
	res, err := repoManager.RunTransaction(
		context.Background(), false, func(ctx context.Context) (interface{}, error) {
			if err := repo.InitContext(ctx); err != nil {
				return nil, err
			}
			return repo.GetContext(ctx)
		},
	)
	require.NoError(t, err)

	mainContext := res.(*domain.Context)
	assert.Equal(t, 2, mainContext.NextHD)
	assert.False(t, mainContext.Sealed())
}
