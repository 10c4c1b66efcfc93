package weavetest

import (
	"crypto/rand"

	"github.com/iov-one/bazaar"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a freshly generated ed25519 key pair.
func NewKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewCondition returns the condition of a freshly generated ed25519 key.
func NewCondition() bazaar.Condition {
	pub, _ := NewKey()
	return bazaar.PubKeyCondition(pub)
}

// NewAddress returns the address of a freshly generated ed25519 key.
func NewAddress() bazaar.Address {
	return NewCondition().Address()
}

// SequenceAddress returns a deterministic address for given number. Use it
// when a test needs stable, readable identities.
func SequenceAddress(n int) bazaar.Address {
	return bazaar.NewCondition("test", "seq", []byte{byte(n >> 8), byte(n)}).Address()
}
