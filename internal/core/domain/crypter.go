package domain

// Crypter is the boundary contract consumed from the external crypto
// provider. The store delegates all cryptographic primitives to it and never
// implements them itself.
type Crypter interface {
	// Encrypt encrypts a plaintext with a key derived from the password.
	Encrypt(password string, plainText []byte) ([]byte, error)
	// Decrypt reverses Encrypt with the same password.
	Decrypt(password string, cypherText []byte) ([]byte, error)
	// MnemonicFromEntropy recovers the mnemonic from the encrypted
	// language-prefixed entropy stored in a credential.
	MnemonicFromEntropy(entropy []byte, password string) (string, error)
}
