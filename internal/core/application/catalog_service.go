package application

import (
	"context"
	"fmt"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/internal/core/ports"
)

const (
	readOnlyTx  = true
	readWriteTx = false
)

// UpdateNetworkArgs are the optional fields of a partial network update.
// Empty fields are left untouched.
type UpdateNetworkArgs struct {
	Name   string
	Symbol string
	RPCURL string
}

// NetworkListItem is one entry of a full network list replacement. The
// position of each network is implied by its index in the list.
type NetworkListItem struct {
	ID      string
	Enabled bool
}

// CatalogService exposes CRUD over the Network and Token catalog, enforcing
// ordering and preset-immutability rules.
type CatalogService struct {
	repoManager ports.RepoManager
}

// NewCatalogService returns a CatalogService using the given repositories.
func NewCatalogService(repoManager ports.RepoManager) *CatalogService {
	return &CatalogService{repoManager: repoManager}
}

// ListNetworks returns all networks in descending position order.
func (s *CatalogService) ListNetworks(ctx context.Context) ([]domain.Network, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.NetworkRepository().GetAllNetworks(ctx)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.([]domain.Network), nil
}

// AddNetwork persists a new custom network, assigning it the next free
// position at the end of the catalog.
func (s *CatalogService) AddNetwork(
	ctx context.Context, network domain.Network,
) (*domain.Network, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			networks, err := s.repoManager.NetworkRepository().GetAllNetworks(ctx)
			if err != nil {
				return nil, err
			}

			position := 0
			if len(networks) > 0 {
				// networks are sorted by descending position
				position = networks[0].Position + 1
			}
			network.Position = position
			network.Preset = false

			if err := s.repoManager.NetworkRepository().AddNetwork(
				ctx, &network,
			); err != nil {
				return nil, err
			}
			return &network, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Network), nil
}

// GetNetwork returns the network with the given id.
func (s *CatalogService) GetNetwork(
	ctx context.Context, id string,
) (*domain.Network, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.NetworkRepository().GetNetwork(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Network), nil
}

// UpdateNetworkList rewrites enabled flag and position of every network in
// one transaction. The list must contain exactly all existing networks, the
// position of each one is its index in the list.
func (s *CatalogService) UpdateNetworkList(
	ctx context.Context, networks []NetworkListItem,
) error {
	_, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			existing, err := s.repoManager.NetworkRepository().GetAllNetworks(ctx)
			if err != nil {
				return nil, err
			}
			if len(existing) != len(networks) {
				return nil, fmt.Errorf(
					"%w: network list length mismatch, expected %d got %d",
					domain.ErrInvalidOperation, len(existing), len(networks),
				)
			}

			for position, item := range networks {
				position, item := position, item
				if err := s.repoManager.NetworkRepository().UpdateNetwork(
					ctx, item.ID,
					func(n *domain.Network) (*domain.Network, error) {
						n.Enabled = item.Enabled
						n.Position = position
						return n, nil
					},
				); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	)
	return err
}

// UpdateNetwork applies a partial update to the given network. Omitted fields
// are no-ops.
func (s *CatalogService) UpdateNetwork(
	ctx context.Context, id string, args UpdateNetworkArgs,
) (*domain.Network, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			var network *domain.Network
			if err := s.repoManager.NetworkRepository().UpdateNetwork(
				ctx, id,
				func(n *domain.Network) (*domain.Network, error) {
					if args.Name != "" {
						n.Name = args.Name
					}
					if args.Symbol != "" {
						n.Symbol = args.Symbol
					}
					if args.RPCURL != "" {
						n.RPCURL = args.RPCURL
					}
					network = n
					return n, nil
				},
			); err != nil {
				return nil, err
			}
			return network, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Network), nil
}

// DeleteNetwork removes a custom network. Preset networks can never be
// deleted.
func (s *CatalogService) DeleteNetwork(ctx context.Context, id string) error {
	_, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			network, err := s.repoManager.NetworkRepository().GetNetwork(ctx, id)
			if err != nil {
				return nil, err
			}
			if network.Preset {
				return nil, fmt.Errorf(
					"%w: network %s is preset, delete forbidden",
					domain.ErrInvalidOperation, id,
				)
			}
			return nil, s.repoManager.NetworkRepository().DeleteNetwork(ctx, id)
		},
	)
	return err
}

// AddToken persists a new custom token.
func (s *CatalogService) AddToken(
	ctx context.Context, token domain.Token,
) (*domain.Token, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			if err := s.repoManager.TokenRepository().AddToken(ctx, &token); err != nil {
				return nil, err
			}
			return &token, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Token), nil
}

// GetToken returns the token with the given id, or nil if absent.
func (s *CatalogService) GetToken(
	ctx context.Context, id string,
) (*domain.Token, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.TokenRepository().GetToken(ctx, id)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Token), nil
}

// GetTokens returns the tokens listed on the given network. With a non-empty
// accountID the result is restricted to the tokens associated with that
// account.
func (s *CatalogService) GetTokens(
	ctx context.Context, networkID, accountID string,
) ([]domain.Token, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readOnlyTx, func(ctx context.Context) (interface{}, error) {
			tokens, err := s.repoManager.TokenRepository().GetTokensByNetwork(
				ctx, networkID,
			)
			if err != nil {
				return nil, err
			}
			if accountID == "" {
				return tokens, nil
			}

			account, err := s.repoManager.AccountRepository().GetAccount(
				ctx, accountID,
			)
			if err != nil {
				return nil, err
			}

			filtered := make([]domain.Token, 0, len(tokens))
			for _, token := range tokens {
				if account.HasToken(token.ID) {
					filtered = append(filtered, token)
				}
			}
			return filtered, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.([]domain.Token), nil
}

// AddTokenToAccount associates a token with an account. Both must exist
// already; re-adding an existing association is a no-op.
func (s *CatalogService) AddTokenToAccount(
	ctx context.Context, accountID, tokenID string,
) (*domain.Token, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			token, err := s.repoManager.TokenRepository().GetToken(ctx, tokenID)
			if err != nil {
				return nil, err
			}
			if token == nil {
				return nil, &domain.NotFoundError{Entity: "token", ID: tokenID}
			}

			if err := s.repoManager.AccountRepository().UpdateAccount(
				ctx, accountID,
				func(a *domain.Account) (*domain.Account, error) {
					a.AddToken(tokenID)
					return a, nil
				},
			); err != nil {
				return nil, err
			}
			return token, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Token), nil
}

// RemoveTokenFromAccount removes a token association from an account. Both
// must exist; removing an absent association is not an error.
func (s *CatalogService) RemoveTokenFromAccount(
	ctx context.Context, accountID, tokenID string,
) error {
	_, err := s.repoManager.RunTransaction(
		ctx, readWriteTx, func(ctx context.Context) (interface{}, error) {
			token, err := s.repoManager.TokenRepository().GetToken(ctx, tokenID)
			if err != nil {
				return nil, err
			}
			if token == nil {
				return nil, &domain.NotFoundError{Entity: "token", ID: tokenID}
			}

			return nil, s.repoManager.AccountRepository().UpdateAccount(
				ctx, accountID,
				func(a *domain.Account) (*domain.Account, error) {
					a.RemoveToken(tokenID)
					return a, nil
				},
			)
		},
	)
	return err
}
