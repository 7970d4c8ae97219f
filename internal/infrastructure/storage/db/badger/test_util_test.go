package dbbadger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"

	"github.com/walletd-network/walletd/internal/core/ports"
)

// newTestRepoManager opens an in-memory store, closed when the test ends.
func newTestRepoManager(t *testing.T) ports.RepoManager {
	repoManager, err := NewRepoManager("", nil)
	require.NoError(t, err)
	t.Cleanup(repoManager.Close)
	return repoManager
}

func randomID(prefix string) string {
	return prefix + "-" + randstr.Hex(8)
}
