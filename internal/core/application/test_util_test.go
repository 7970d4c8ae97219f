package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/internal/core/ports"
	dbbadger "github.com/walletd-network/walletd/internal/infrastructure/storage/db/badger"
	"github.com/walletd-network/walletd/pkg/crypter"
)

// newTestCrypter returns a crypto provider with weak scrypt parameters to
// keep the suite fast.
func newTestCrypter(t *testing.T) *crypter.Crypter {
	c, err := crypter.NewWithOpts(crypter.Opts{ScryptN: 256, ScryptR: 8, ScryptP: 1})
	require.NoError(t, err)
	return c
}

// newTestStore opens an in-memory store seeded with the preset networks and
// the initial security context.
func newTestStore(t *testing.T) ports.RepoManager {
	repoManager, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)
	t.Cleanup(repoManager.Close)

	require.NoError(t, InitStore(context.Background(), repoManager))
	return repoManager
}

func newTestServices(t *testing.T) (*CatalogService, *WalletService) {
	repoManager := newTestStore(t)
	return NewCatalogService(repoManager),
		NewWalletService(repoManager, newTestCrypter(t))
}

// newTestSeed derives the encrypted credential halves for a mnemonic the way
// the CLI does before calling CreateHDWallet.
func newTestSeed(
	t *testing.T, c *crypter.Crypter, mnemonic, password string,
) domain.RevealableSeed {
	entropy, seed, err := c.NewRevealableSeed(mnemonic, password)
	require.NoError(t, err)
	return domain.RevealableSeed{
		EntropyWithLangPrefixed: entropy,
		Seed:                    seed,
	}
}
