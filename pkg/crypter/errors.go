package crypter

import "errors"

var (
	// ErrNullPlainText ...
	ErrNullPlainText = errors.New("plaintext must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cyphertext must not be null")
	// ErrInvalidCypherText is returned when the cyphertext is too short to
	// contain the appended salt and nonce.
	ErrInvalidCypherText = errors.New("cyphertext is not valid")
	// ErrNullPassword ...
	ErrNullPassword = errors.New("password must not be null")
	// ErrInvalidPassword is returned when decryption fails authentication.
	ErrInvalidPassword = errors.New("password is not valid")
	// ErrInvalidEntropy is returned when the decrypted entropy is too short
	// to carry the language prefix.
	ErrInvalidEntropy = errors.New("entropy is not valid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New("entropy size must be a multiple of 32 in the range [128, 256]")
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is not valid")
	// ErrInvalidScryptParams ...
	ErrInvalidScryptParams = errors.New("scrypt params are not valid")
)
