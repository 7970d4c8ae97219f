package domain

import "encoding/hex"

// MainContextID is the fixed primary key of the singleton Context record.
const MainContextID = "mainContext"

// DefaultVerifyString is both the sentinel marking an unsealed context and
// the plaintext marker that gets encrypted with the user password when the
// context is sealed.
const DefaultVerifyString = "DEFAULT_VERIFY_STRING"

// Context is the process-wide singleton consulted by every password-gated
// operation. VerifyString holds either the unset sentinel or the hex-encoded
// ciphertext of the marker encrypted with the user password. NextHD is the
// next unused HD-wallet ordinal, it only ever increases and is never reused
// even after wallet deletion.
type Context struct {
	ID           string `badgerhold:"key"`
	VerifyString string
	NextHD       int
}

// NewContext returns the initial state of the singleton context.
func NewContext() *Context {
	return &Context{
		ID:           MainContextID,
		VerifyString: DefaultVerifyString,
		NextHD:       1,
	}
}

// Sealed returns whether the verify string has been replaced by
// password-derived ciphertext.
func (c *Context) Sealed() bool {
	return c.VerifyString != DefaultVerifyString
}

// CheckPassword verifies the given password against the verify string. While
// the context is not sealed any password is accepted, the first HD wallet
// creation defines it.
func (c *Context) CheckPassword(crypter Crypter, password string) bool {
	if !c.Sealed() {
		return true
	}
	cypherText, err := hex.DecodeString(c.VerifyString)
	if err != nil {
		return false
	}
	plainText, err := crypter.Decrypt(password, cypherText)
	if err != nil {
		return false
	}
	return string(plainText) == DefaultVerifyString
}

// Seal replaces the sentinel verify string with the marker encrypted with the
// given password. Sealing an already sealed context is a no-op.
func (c *Context) Seal(crypter Crypter, password string) error {
	if c.Sealed() {
		return nil
	}
	cypherText, err := crypter.Encrypt(password, []byte(DefaultVerifyString))
	if err != nil {
		return err
	}
	c.VerifyString = hex.EncodeToString(cypherText)
	return nil
}
