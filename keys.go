package bazaar

import (
	"golang.org/x/crypto/ed25519"
)

const (
	// signatureExtension and ed25519Type build the condition of an
	// ed25519 public key.
	signatureExtension = "sigs"
	ed25519Type        = "ed25519"
)

// PubKeyCondition returns the condition fulfilled by the owner of the private
// part of given ed25519 public key.
func PubKeyCondition(pub ed25519.PublicKey) Condition {
	return NewCondition(signatureExtension, ed25519Type, pub)
}

// PubKeyAddress returns the account address of given ed25519 public key.
//
// Authenticating the key holder is the job of the host. The ledger only needs
// a stable identity derived from it.
func PubKeyAddress(pub ed25519.PublicKey) Address {
	return PubKeyCondition(pub).Address()
}
