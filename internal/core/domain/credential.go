package domain

import (
	"encoding/hex"
	"encoding/json"
)

// RevealableSeed is the secret material of an HD wallet as handed over by the
// crypto provider: the entropy prefixed with its wordlist language tag and
// the derived seed, both already encrypted with the user password.
type RevealableSeed struct {
	EntropyWithLangPrefixed []byte
	Seed                    []byte
}

// ExportedCredential is the decoded form of a stored credential returned to
// the caller: the recovered mnemonic and the seed bytes exactly as they were
// provided at wallet creation.
type ExportedCredential struct {
	Mnemonic string
	Seed     []byte
}

// Credential is the entity data structure for the encrypted seed material of
// one HD wallet. Its primary key is the owning wallet's id; HW, imported and
// watching wallets never have a credential row.
type Credential struct {
	WalletID   string `badgerhold:"key"`
	Credential string
}

type credentialBlob struct {
	Entropy string `json:"entropy"`
	Seed    string `json:"seed"`
}

// NewCredential serializes the revealable seed into the hex-in-JSON blob
// stored for the given wallet.
func NewCredential(walletID string, seed RevealableSeed) (*Credential, error) {
	blob, err := json.Marshal(credentialBlob{
		Entropy: hex.EncodeToString(seed.EntropyWithLangPrefixed),
		Seed:    hex.EncodeToString(seed.Seed),
	})
	if err != nil {
		return nil, err
	}
	return &Credential{
		WalletID:   walletID,
		Credential: string(blob),
	}, nil
}

// RevealableSeed decodes the stored blob back into the seed material.
func (c *Credential) RevealableSeed() (*RevealableSeed, error) {
	blob := credentialBlob{}
	if err := json.Unmarshal([]byte(c.Credential), &blob); err != nil {
		return nil, err
	}
	entropy, err := hex.DecodeString(blob.Entropy)
	if err != nil {
		return nil, err
	}
	seed, err := hex.DecodeString(blob.Seed)
	if err != nil {
		return nil, err
	}
	return &RevealableSeed{
		EntropyWithLangPrefixed: entropy,
		Seed:                    seed,
	}, nil
}
