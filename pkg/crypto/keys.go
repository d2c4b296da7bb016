package crypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"
)

// Key sizes for the consensus engine's ed25519 key format.
const (
	// PublicKeySize is the length of an ed25519 public key.
	PublicKeySize = 32

	// PrivateKeySize is the length of the engine's on-disk private key:
	// the 32-byte ed25519 seed followed by the 32-byte public key.
	PrivateKeySize = 64

	// SeedSize is the length of a BIP-39 derived seed.
	SeedSize = 64
)

// KeyPair holds a derived validator signing key pair.
type KeyPair struct {
	// Private is the 64-byte seed||pubkey layout the engine persists.
	Private []byte
	// Public is the raw 32-byte ed25519 public key.
	Public []byte
}

// Provider derives an ed25519 key pair from 32 bytes of key material.
// It exists so the signing backend is an explicit dependency of the
// derivation step rather than a process-global choice.
type Provider interface {
	// KeyPairFromMaterial returns (public, private) where private follows
	// the engine's seed||pubkey convention.
	KeyPairFromMaterial(material [32]byte) (pub, priv []byte)
}

// Ed25519Provider is the production Provider backed by crypto/ed25519.
type Ed25519Provider struct{}

// KeyPairFromMaterial derives the key pair using standard ed25519 key
// generation with material as the seed.
func (Ed25519Provider) KeyPairFromMaterial(material [32]byte) (pub, priv []byte) {
	key := ed25519.NewKeyFromSeed(material[:])
	pub = make([]byte, PublicKeySize)
	copy(pub, key[ed25519.SeedSize:])

	// Assemble seed||pubkey explicitly rather than relying on the
	// library's internal layout.
	priv = make([]byte, PrivateKeySize)
	copy(priv[:32], material[:])
	copy(priv[32:], pub)
	return pub, priv
}

// DeriveKeyPair derives the validator key pair from a 64-byte BIP-39 seed.
// The ed25519 seed is SHA256(seed); the derivation is pure, so the same
// seed always yields byte-identical keys.
func DeriveKeyPair(p Provider, seed []byte) (KeyPair, error) {
	if len(seed) != SeedSize {
		return KeyPair{}, fmt.Errorf("%w: seed must be %d bytes, got %d",
			ErrKeyLength, SeedSize, len(seed))
	}
	material := sha256.Sum256(seed)
	pub, priv := p.KeyPairFromMaterial(material)
	return KeyPair{Private: priv, Public: pub}, nil
}
