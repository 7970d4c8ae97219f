package application

import (
	"context"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/internal/core/ports"
)

// presetNetworks are the chain configurations shipped with the application.
// They are seeded once at first open and can never be deleted, only
// enabled/disabled and cosmetically updated.
var presetNetworks = []domain.Network{
	{
		ID:                  "eth",
		Name:                "Ethereum",
		Impl:                "evm",
		Symbol:              "ETH",
		FeeSymbol:           "Gwei",
		Decimals:            18,
		FeeDecimals:         9,
		Balance2FeeDecimals: 9,
		RPCURL:              "https://cloudflare-eth.com",
		Enabled:             true,
	},
	{
		ID:                  "bsc",
		Name:                "BNB Smart Chain",
		Impl:                "evm",
		Symbol:              "BNB",
		FeeSymbol:           "Gwei",
		Decimals:            18,
		FeeDecimals:         9,
		Balance2FeeDecimals: 9,
		RPCURL:              "https://bsc-dataseed1.binance.org",
		Enabled:             true,
	},
	{
		ID:                  "polygon",
		Name:                "Polygon",
		Impl:                "evm",
		Symbol:              "MATIC",
		FeeSymbol:           "Gwei",
		Decimals:            18,
		FeeDecimals:         9,
		Balance2FeeDecimals: 9,
		RPCURL:              "https://polygon-rpc.com",
		Enabled:             true,
	},
	{
		ID:                  "sol",
		Name:                "Solana",
		Impl:                "sol",
		Symbol:              "SOL",
		FeeSymbol:           "SOL",
		Decimals:            9,
		FeeDecimals:         9,
		Balance2FeeDecimals: 9,
		RPCURL:              "https://api.mainnet-beta.solana.com",
		Enabled:             false,
	},
}

// InitStore brings a freshly opened store to its initial state: it creates
// the singleton security context if missing and seeds the preset networks
// when the catalog is empty. It is safe to call on every open.
func InitStore(ctx context.Context, repoManager ports.RepoManager) error {
	_, err := repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			if err := repoManager.ContextRepository().InitContext(ctx); err != nil {
				return nil, err
			}

			networks, err := repoManager.NetworkRepository().GetAllNetworks(ctx)
			if err != nil {
				return nil, err
			}
			if len(networks) > 0 {
				return nil, nil
			}

			for position, network := range presetNetworks {
				network.Preset = true
				network.Position = position
				if err := repoManager.NetworkRepository().AddNetwork(
					ctx, &network,
				); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	)
	return err
}
