// Package validator assembles the consensus engine's persisted validator
// identity record (priv_validator_key.json).
package validator

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Klingon-tech/klingnet-valkey/pkg/crypto"
	"github.com/Klingon-tech/klingnet-valkey/pkg/types"
)

// Key type tags expected by the consensus engine's serialization
// convention. They must match byte-for-byte or the engine rejects the file.
const (
	PubKeyTypeTag  = "tendermint/PubKeyEd25519"
	PrivKeyTypeTag = "tendermint/PrivKeyEd25519"
)

// DefaultFilename is the output path used when the caller does not choose one.
const DefaultFilename = "priv_validator_key.json"

// KeyInfo is the engine's tagged key envelope.
type KeyInfo struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Record is the validator identity structure persisted to disk. Field
// order and JSON key names match the engine's expected schema exactly.
type Record struct {
	Address types.Address `json:"address"`
	PubKey  KeyInfo       `json:"pub_key"`
	PrivKey KeyInfo       `json:"priv_key"`
}

// BuildRecord assembles a Record from a derived key pair. Pure
// transformation; persisting the record is the caller's responsibility.
func BuildRecord(kp crypto.KeyPair) (Record, error) {
	addr, err := crypto.AddressFromPubKey(kp.Public)
	if err != nil {
		return Record{}, fmt.Errorf("derive address: %w", err)
	}
	if len(kp.Private) != crypto.PrivateKeySize {
		return Record{}, fmt.Errorf("%w: private key must be %d bytes, got %d",
			crypto.ErrKeyLength, crypto.PrivateKeySize, len(kp.Private))
	}
	return Record{
		Address: addr,
		PubKey: KeyInfo{
			Type:  PubKeyTypeTag,
			Value: base64.StdEncoding.EncodeToString(kp.Public),
		},
		PrivKey: KeyInfo{
			Type:  PrivKeyTypeTag,
			Value: base64.StdEncoding.EncodeToString(kp.Private),
		},
	}, nil
}

// Save writes the record as pretty-printed JSON, readable only by the
// owner. The file contains the private key.
func (r Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
