package domain

import "strings"

const (
	// WalletTypeHD identifies wallets whose keys are derived from a stored seed.
	WalletTypeHD = "hd"
	// WalletTypeHW identifies wallets backed by a hardware signing device.
	WalletTypeHW = "hw"
	// WalletTypeImported identifies wallets created from an imported key.
	WalletTypeImported = "imported"
	// WalletTypeWatching identifies watch-only wallets.
	WalletTypeWatching = "watching"
)

// Wallet is the entity data structure for a container of derived accounts.
// The id prefix determines the type at creation time, afterwards Type is the
// only source of truth for the wallet classification.
type Wallet struct {
	ID             string `badgerhold:"key"`
	Name           string
	Type           string
	Backuped       bool
	Accounts       []string
	NextAccountIDs map[string]int
}

// WalletTypeFromID derives the wallet type from the textual prefix of a
// wallet id. It is meant to be used once, when a wallet record is created.
func WalletTypeFromID(walletID string) string {
	switch {
	case strings.HasPrefix(walletID, WalletTypeHD+"-"):
		return WalletTypeHD
	case strings.HasPrefix(walletID, WalletTypeHW+"-"):
		return WalletTypeHW
	case strings.HasPrefix(walletID, WalletTypeImported+"-"):
		return WalletTypeImported
	case strings.HasPrefix(walletID, WalletTypeWatching+"-"):
		return WalletTypeWatching
	default:
		return ""
	}
}

// IsHD returns whether the wallet holds a seed credential.
func (w *Wallet) IsHD() bool {
	return w.Type == WalletTypeHD
}

// CanBeRemoved returns whether the wallet type allows removal. Imported and
// watching wallets are immutable containers by convention.
func (w *Wallet) CanBeRemoved() bool {
	return w.Type == WalletTypeHD || w.Type == WalletTypeHW
}

// CanBeRenamed returns whether the wallet type allows renaming.
func (w *Wallet) CanBeRenamed() bool {
	return w.CanBeRemoved()
}

// HasAccount returns whether the given account belongs to the wallet.
func (w *Wallet) HasAccount(accountID string) bool {
	for _, id := range w.Accounts {
		if id == accountID {
			return true
		}
	}
	return false
}

// AddAccount adds an account to the wallet's set and returns whether the set
// changed. Re-adding an already associated account is a no-op.
func (w *Wallet) AddAccount(accountID string) bool {
	if w.HasAccount(accountID) {
		return false
	}
	w.Accounts = append(w.Accounts, accountID)
	return true
}

// RemoveAccount removes an account from the wallet's set and returns whether
// the set changed.
func (w *Wallet) RemoveAccount(accountID string) bool {
	for i, id := range w.Accounts {
		if id == accountID {
			w.Accounts = append(w.Accounts[:i], w.Accounts[i+1:]...)
			return true
		}
	}
	return false
}
