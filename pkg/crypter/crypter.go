package crypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/scrypt"
)

const (
	// langEnglish is the wordlist tag prefixed to the entropy bytes.
	langEnglish byte = 1

	saltLen = 32
	keyLen  = 32
)

// Opts allows to tune the scrypt key-stretching parameters, mainly to speed
// up tests. The zero value selects the default parameters.
type Opts struct {
	ScryptN int
	ScryptR int
	ScryptP int
}

func (o Opts) validate() error {
	if o.ScryptN < 0 || o.ScryptR < 0 || o.ScryptP < 0 {
		return ErrInvalidScryptParams
	}
	if o.ScryptN > 0 && (o.ScryptN&(o.ScryptN-1)) != 0 {
		return ErrInvalidScryptParams
	}
	return nil
}

// Crypter is the default crypto provider of the wallet store. It derives
// encryption keys from passwords with scrypt and seals data with AES-256-GCM,
// appending the key salt to the cyphertext.
type Crypter struct {
	scryptN int
	scryptR int
	scryptP int
}

// New returns a Crypter with the default scrypt parameters.
// 2^20 = 1048576 recommended length for key-stretching
// check the doc for other recommended values:
// https://godoc.org/golang.org/x/crypto/scrypt
func New() *Crypter {
	crypter, _ := NewWithOpts(Opts{})
	return crypter
}

// NewWithOpts returns a Crypter with custom scrypt parameters.
func NewWithOpts(opts Opts) (*Crypter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.ScryptN == 0 {
		opts.ScryptN = 1048576
	}
	if opts.ScryptR == 0 {
		opts.ScryptR = 8
	}
	if opts.ScryptP == 0 {
		opts.ScryptP = 1
	}
	return &Crypter{
		scryptN: opts.ScryptN,
		scryptR: opts.ScryptR,
		scryptP: opts.ScryptP,
	}, nil
}

// Encrypt encrypts a plaintext with a key derived from the password.
func (c *Crypter) Encrypt(password string, plainText []byte) ([]byte, error) {
	if len(plainText) <= 0 {
		return nil, ErrNullPlainText
	}
	if len(password) <= 0 {
		return nil, ErrNullPassword
	}

	key, salt, err := c.deriveKey([]byte(password), nil)
	if err != nil {
		return nil, err
	}

	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(blockCipher)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	cypherText := gcm.Seal(nonce, nonce, plainText, nil)
	cypherText = append(cypherText, salt...)

	return cypherText, nil
}

// Decrypt reverses Encrypt with the same password.
func (c *Crypter) Decrypt(password string, cypherText []byte) ([]byte, error) {
	if len(cypherText) <= 0 {
		return nil, ErrNullCypherText
	}
	if len(password) <= 0 {
		return nil, ErrNullPassword
	}
	if len(cypherText) <= saltLen {
		return nil, ErrInvalidCypherText
	}

	salt, data := cypherText[len(cypherText)-saltLen:], cypherText[:len(cypherText)-saltLen]

	key, _, err := c.deriveKey([]byte(password), salt)
	if err != nil {
		return nil, err
	}

	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(blockCipher)
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, ErrInvalidCypherText
	}
	nonce, text := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plainText, err := gcm.Open(nil, nonce, text, nil)
	if err != nil {
		return nil, ErrInvalidPassword
	}
	return plainText, nil
}

// MnemonicFromEntropy recovers the mnemonic from the encrypted
// language-prefixed entropy stored in a wallet credential.
func (c *Crypter) MnemonicFromEntropy(entropy []byte, password string) (string, error) {
	plainEntropy, err := c.Decrypt(password, entropy)
	if err != nil {
		return "", err
	}
	if len(plainEntropy) < 2 {
		return "", ErrInvalidEntropy
	}
	// first byte is the wordlist language tag
	return bip39.NewMnemonic(plainEntropy[1:])
}

// NewRevealableSeed derives the encrypted language-prefixed entropy and the
// encrypted seed for a mnemonic, the two halves of a wallet credential.
func (c *Crypter) NewRevealableSeed(
	mnemonic, password string,
) (entropy []byte, seed []byte, err error) {
	plainEntropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, nil, ErrInvalidMnemonic
	}

	entropy, err = c.Encrypt(
		password, append([]byte{langEnglish}, plainEntropy...),
	)
	if err != nil {
		return nil, nil, err
	}

	seed, err = c.Encrypt(password, bip39.NewSeed(mnemonic, ""))
	if err != nil {
		return nil, nil, err
	}
	return entropy, seed, nil
}

// NewMnemonic returns a new random mnemonic for the given entropy size in
// bits. A zero size defaults to 128 bits, twelve words.
func NewMnemonic(entropySize int) (string, error) {
	if entropySize == 0 {
		entropySize = 128
	}
	if entropySize < 128 || entropySize > 256 || entropySize%32 != 0 {
		return "", ErrInvalidEntropySize
	}

	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func (c *Crypter) deriveKey(password, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltLen)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	key, err := scrypt.Key(password, salt, c.scryptN, c.scryptR, c.scryptP, keyLen)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}
