// Package crypto provides hashing and key derivation primitives for
// validator identity material.
package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/Klingon-tech/klingnet-valkey/pkg/types"
)

// ErrKeyLength reports key bytes of the wrong size reaching a derivation
// step. This indicates an internal pipeline defect, not bad user input.
var ErrKeyLength = errors.New("invalid key length")

// Hash computes a SHA-256 hash of the input data. The consensus engine
// mandates SHA-256 for both mnemonic checksums and node addresses.
func Hash(data []byte) [sha256.Size]byte {
	return sha256.Sum256(data)
}

// AddressFromPubKey derives a node address from an ed25519 public key.
// Address = SHA256(pubkey)[:20].
func AddressFromPubKey(pubKey []byte) (types.Address, error) {
	if len(pubKey) != PublicKeySize {
		return types.Address{}, fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrKeyLength, PublicKeySize, len(pubKey))
	}
	h := Hash(pubKey)
	var addr types.Address
	copy(addr[:], h[:types.AddressSize])
	return addr, nil
}
