package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/pkg/crypter"
)

const (
	testMnemonic = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"
	testPassword = "supersecurekey"
)

func createTestHDWallet(
	t *testing.T, walletSvc *WalletService, c *crypter.Crypter, password string,
) *domain.Wallet {
	wallet, err := walletSvc.CreateHDWallet(
		context.Background(), password,
		newTestSeed(t, c, testMnemonic, password), "",
	)
	require.NoError(t, err)
	return wallet
}

func TestCreateHDWalletSealsContextOnFirstUse(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)
	assert.Equal(t, "hd-1", wallet.ID)
	assert.Equal(t, "HD Wallet 1", wallet.Name)
	assert.Equal(t, domain.WalletTypeHD, wallet.Type)
	assert.False(t, wallet.Backuped)

	// the first creation defined the password, a different one must be
	// rejected from now on
	_, err := walletSvc.CreateHDWallet(
		ctx, "somethingelse",
		newTestSeed(t, c, testMnemonic, "somethingelse"), "",
	)
	assert.Equal(t, domain.ErrWrongPassword, err)

	wallet2 := createTestHDWallet(t, walletSvc, c, testPassword)
	assert.Equal(t, "hd-2", wallet2.ID)
}

func TestHDWalletIDsAreNeverReused(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)
	assert.Equal(t, "hd-1", wallet.ID)

	require.NoError(t, walletSvc.RemoveWallet(ctx, wallet.ID, testPassword))

	wallet2 := createTestHDWallet(t, walletSvc, c, testPassword)
	assert.Equal(t, "hd-2", wallet2.ID)
}

func TestGetCredential(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	seed := newTestSeed(t, c, testMnemonic, testPassword)
	wallet, err := walletSvc.CreateHDWallet(ctx, testPassword, seed, "")
	require.NoError(t, err)

	credential, err := walletSvc.GetCredential(ctx, wallet.ID, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, credential.Mnemonic)
	// the seed bytes come back exactly as they were stored
	assert.Equal(t, seed.Seed, credential.Seed)

	_, err = walletSvc.GetCredential(ctx, wallet.ID, "wrongpassword")
	assert.Equal(t, domain.ErrWrongPassword, err)
}

func TestCreateHWWallet(t *testing.T) {
	_, walletSvc := newTestServices(t)
	ctx := context.Background()

	wallet, err := walletSvc.CreateHWWallet(ctx, "classic1s", "")
	require.NoError(t, err)
	assert.Equal(t, "hw-classic1s", wallet.ID)
	assert.Equal(t, domain.WalletTypeHW, wallet.Type)

	// no credential row is written for hardware wallets
	_, err = walletSvc.GetCredential(ctx, wallet.ID, "anything")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRemoveWalletCascades(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)

	_, err := walletSvc.AddAccount(ctx, domain.Account{
		ID: "acc-1", Name: "Account #1", Type: domain.AccountTypeSimple,
		CoinType: "60",
	})
	require.NoError(t, err)
	_, err = walletSvc.AddAccountToWallet(ctx, wallet.ID, "acc-1")
	require.NoError(t, err)

	require.NoError(t, walletSvc.RemoveWallet(ctx, wallet.ID, testPassword))

	removed, err := walletSvc.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Nil(t, removed)

	_, err = walletSvc.GetAccount(ctx, "acc-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = walletSvc.GetCredential(ctx, wallet.ID, testPassword)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRemoveWalletChecks(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	err := walletSvc.RemoveWallet(ctx, "missing", testPassword)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)
	err = walletSvc.RemoveWallet(ctx, wallet.ID, "wrongpassword")
	assert.Equal(t, domain.ErrWrongPassword, err)

	// the wallet must still be there
	stored, err := walletSvc.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestConfirmHDWalletBackuped(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)
	require.False(t, wallet.Backuped)

	updated, err := walletSvc.ConfirmHDWalletBackuped(ctx, wallet.ID)
	require.NoError(t, err)
	assert.True(t, updated.Backuped)

	// confirming twice is a no-op
	updated, err = walletSvc.ConfirmHDWalletBackuped(ctx, wallet.ID)
	require.NoError(t, err)
	assert.True(t, updated.Backuped)

	hw, err := walletSvc.CreateHWWallet(ctx, "classic1s", "")
	require.NoError(t, err)
	_, err = walletSvc.ConfirmHDWalletBackuped(ctx, hw.ID)
	assert.True(t, errors.Is(err, domain.ErrInvalidOperation))
}

func TestSetWalletName(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)

	updated, err := walletSvc.SetWalletName(ctx, wallet.ID, "Savings")
	require.NoError(t, err)
	assert.Equal(t, "Savings", updated.Name)
}

func TestAddAccountToWalletBumpsNextAccountID(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)

	for _, id := range []string{"acc-1", "acc-2"} {
		_, err := walletSvc.AddAccount(ctx, domain.Account{
			ID: id, Name: id, Type: domain.AccountTypeSimple, CoinType: "60",
		})
		require.NoError(t, err)
		_, err = walletSvc.AddAccountToWallet(ctx, wallet.ID, id)
		require.NoError(t, err)
	}
	// attaching an already attached account must not bump the counter
	_, err := walletSvc.AddAccountToWallet(ctx, wallet.ID, "acc-1")
	require.NoError(t, err)

	stored, err := walletSvc.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"acc-1", "acc-2"}, stored.Accounts)
	assert.Equal(t, 2, stored.NextAccountIDs["60"])
}

func TestRemoveAccount(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	wallet := createTestHDWallet(t, walletSvc, c, testPassword)

	_, err := walletSvc.AddAccount(ctx, domain.Account{
		ID: "acc-1", Name: "Account #1", Type: domain.AccountTypeSimple,
		CoinType: "60",
	})
	require.NoError(t, err)
	_, err = walletSvc.AddAccountToWallet(ctx, wallet.ID, "acc-1")
	require.NoError(t, err)

	// HD wallets require the password
	err = walletSvc.RemoveAccount(ctx, wallet.ID, "acc-1", "wrongpassword")
	assert.Equal(t, domain.ErrWrongPassword, err)

	require.NoError(t, walletSvc.RemoveAccount(ctx, wallet.ID, "acc-1", testPassword))

	stored, err := walletSvc.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Accounts)

	_, err = walletSvc.GetAccount(ctx, "acc-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// removing an account that is not attached
	err = walletSvc.RemoveAccount(ctx, wallet.ID, "acc-1", testPassword)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRemoveAccountFromHWWalletSkipsPasswordCheck(t *testing.T) {
	repoManager := newTestStore(t)
	c := newTestCrypter(t)
	walletSvc := NewWalletService(repoManager, c)
	ctx := context.Background()

	// seal the context first so a wrong password would be detectable
	createTestHDWallet(t, walletSvc, c, testPassword)

	hw, err := walletSvc.CreateHWWallet(ctx, "classic1s", "")
	require.NoError(t, err)

	_, err = walletSvc.AddAccount(ctx, domain.Account{
		ID: "acc-1", Name: "Account #1", Type: domain.AccountTypeSimple,
		CoinType: "60",
	})
	require.NoError(t, err)
	_, err = walletSvc.AddAccountToWallet(ctx, hw.ID, "acc-1")
	require.NoError(t, err)

	require.NoError(t, walletSvc.RemoveAccount(ctx, hw.ID, "acc-1", ""))
}

func TestAccountAddresses(t *testing.T) {
	_, walletSvc := newTestServices(t)
	ctx := context.Background()

	_, err := walletSvc.AddAccount(ctx, domain.Account{
		ID: "acc-simple", Name: "Simple", Type: domain.AccountTypeSimple,
		CoinType: "60",
	})
	require.NoError(t, err)
	_, err = walletSvc.AddAccount(ctx, domain.Account{
		ID: "acc-multi", Name: "Multi", Type: domain.AccountTypeMultiAddress,
		CoinType: "0",
	})
	require.NoError(t, err)

	// simple accounts hold a single address that gets replaced
	account, err := walletSvc.AddAccountAddress(ctx, "acc-simple", "eth", "0xaaa")
	require.NoError(t, err)
	assert.Equal(t, "0xaaa", account.Address)

	account, err = walletSvc.AddAccountAddress(ctx, "acc-simple", "eth", "0xbbb")
	require.NoError(t, err)
	assert.Equal(t, "0xbbb", account.Address)

	account, err = walletSvc.RemoveAccountAddress(ctx, "acc-simple", "eth", "0xbbb")
	require.NoError(t, err)
	assert.Empty(t, account.Address)

	// multi-address accounts accumulate a set
	for _, address := range []string{"bc1qaaa", "bc1qbbb", "bc1qaaa"} {
		account, err = walletSvc.AddAccountAddress(ctx, "acc-multi", "btc", address)
		require.NoError(t, err)
	}
	assert.ElementsMatch(t, []string{"bc1qaaa", "bc1qbbb"}, account.Addresses)

	account, err = walletSvc.RemoveAccountAddress(ctx, "acc-multi", "btc", "bc1qaaa")
	require.NoError(t, err)
	assert.Equal(t, []string{"bc1qbbb"}, account.Addresses)

	// removing an unknown address is a no-op
	account, err = walletSvc.RemoveAccountAddress(ctx, "acc-multi", "btc", "bc1qccc")
	require.NoError(t, err)
	assert.Equal(t, []string{"bc1qbbb"}, account.Addresses)
}

func TestSetAccountName(t *testing.T) {
	_, walletSvc := newTestServices(t)
	ctx := context.Background()

	_, err := walletSvc.AddAccount(ctx, domain.Account{
		ID: "acc-1", Name: "Account #1", Type: domain.AccountTypeSimple,
		CoinType: "60",
	})
	require.NoError(t, err)

	updated, err := walletSvc.SetAccountName(ctx, "acc-1", "Spending")
	require.NoError(t, err)
	assert.Equal(t, "Spending", updated.Name)

	_, err = walletSvc.SetAccountName(ctx, "missing", "Spending")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
