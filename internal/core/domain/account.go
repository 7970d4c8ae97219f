package domain

const (
	// AccountTypeSimple identifies accounts holding a single address.
	AccountTypeSimple = "simple"
	// AccountTypeMultiAddress identifies accounts holding a set of addresses.
	AccountTypeMultiAddress = "multiaddress"
)

// Account is the entity data structure for a derived account. An account
// belongs to exactly one wallet in normal operation; the owning wallet is
// derived by querying the wallets whose Accounts set contains the account id,
// it is never stored on the account itself.
type Account struct {
	ID        string `badgerhold:"key"`
	Name      string
	Type      string
	Path      string
	CoinType  string
	Pub       string
	XPub      string
	Address   string
	Addresses []string
	Tokens    []string
}

// HasToken returns whether the token is associated with the account.
func (a *Account) HasToken(tokenID string) bool {
	for _, id := range a.Tokens {
		if id == tokenID {
			return true
		}
	}
	return false
}

// AddToken associates a token with the account, with set semantics.
func (a *Account) AddToken(tokenID string) bool {
	if a.HasToken(tokenID) {
		return false
	}
	a.Tokens = append(a.Tokens, tokenID)
	return true
}

// RemoveToken removes a token association. Removing an absent association is
// not an error.
func (a *Account) RemoveToken(tokenID string) bool {
	for i, id := range a.Tokens {
		if id == tokenID {
			a.Tokens = append(a.Tokens[:i], a.Tokens[i+1:]...)
			return true
		}
	}
	return false
}

// HasAddress returns whether the address is in the account's address set.
func (a *Account) HasAddress(address string) bool {
	for _, addr := range a.Addresses {
		if addr == address {
			return true
		}
	}
	return false
}

// AddAddress adds an address to the account's set, with set semantics.
func (a *Account) AddAddress(address string) bool {
	if a.HasAddress(address) {
		return false
	}
	a.Addresses = append(a.Addresses, address)
	return true
}

// RemoveAddress removes an address from the account's set.
func (a *Account) RemoveAddress(address string) bool {
	for i, addr := range a.Addresses {
		if addr == address {
			a.Addresses = append(a.Addresses[:i], a.Addresses[i+1:]...)
			return true
		}
	}
	return false
}
