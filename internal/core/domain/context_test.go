package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/pkg/crypter"
)

func newTestCrypter(t *testing.T) *crypter.Crypter {
	c, err := crypter.NewWithOpts(crypter.Opts{ScryptN: 256, ScryptR: 8, ScryptP: 1})
	require.NoError(t, err)
	return c
}

func TestNewContextIsUnsealed(t *testing.T) {
	c := newTestCrypter(t)
	mainContext := domain.NewContext()

	assert.Equal(t, domain.MainContextID, mainContext.ID)
	assert.Equal(t, 1, mainContext.NextHD)
	assert.False(t, mainContext.Sealed())

	// an unsealed context accepts any password
	assert.True(t, mainContext.CheckPassword(c, "anything"))
	assert.True(t, mainContext.CheckPassword(c, "anything else"))
}

func TestContextSeal(t *testing.T) {
	c := newTestCrypter(t)
	mainContext := domain.NewContext()

	require.NoError(t, mainContext.Seal(c, "supersecurekey"))
	require.True(t, mainContext.Sealed())

	assert.True(t, mainContext.CheckPassword(c, "supersecurekey"))
	assert.False(t, mainContext.CheckPassword(c, "wrongpassword"))

	// sealing twice must not change the verify string
	verifyString := mainContext.VerifyString
	require.NoError(t, mainContext.Seal(c, "anotherpassword"))
	assert.Equal(t, verifyString, mainContext.VerifyString)
	assert.True(t, mainContext.CheckPassword(c, "supersecurekey"))
}
