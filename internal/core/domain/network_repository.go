package domain

import "context"

// NetworkRepository is the abstraction for any kind of database intended to
// persist Networks.
type NetworkRepository interface {
	// AddNetwork adds a new network to the repository.
	AddNetwork(ctx context.Context, network *Network) error
	// GetNetwork returns the network with the given id.
	GetNetwork(ctx context.Context, id string) (*Network, error)
	// GetAllNetworks returns all networks in descending position order.
	GetAllNetworks(ctx context.Context) ([]Network, error)
	// UpdateNetwork updates the state of a network. The closure function lets
	// commit multiple changes to a certain network in a transactional way.
	UpdateNetwork(
		ctx context.Context,
		id string, updateFn func(n *Network) (*Network, error),
	) error
	// DeleteNetwork removes a network from the repository.
	DeleteNetwork(ctx context.Context, id string) error
}
