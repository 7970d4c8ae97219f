package domain

import "context"

// TokenRepository is the abstraction for any kind of database intended to
// persist Tokens.
type TokenRepository interface {
	// AddToken adds a new token to the repository.
	AddToken(ctx context.Context, token *Token) error
	// GetToken returns the token with the given id, or nil if absent. A
	// missing token is a normal outcome here, not an error.
	GetToken(ctx context.Context, id string) (*Token, error)
	// GetTokensByNetwork returns all tokens listed on the given network.
	GetTokensByNetwork(ctx context.Context, networkID string) ([]Token, error)
}
