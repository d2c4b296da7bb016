// show_key.go prints and cross-checks the identity in a priv_validator_key.json.
// Usage: go run scripts/show_key.go <keyfile>
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Klingon-tech/klingnet-valkey/internal/validator"
	"github.com/Klingon-tech/klingnet-valkey/pkg/crypto"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: show_key <keyfile>")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var record validator.Record
	if err := json.Unmarshal(data, &record); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	pub, err := base64.StdEncoding.DecodeString(record.PubKey.Value)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	addr, err := crypto.AddressFromPubKey(pub)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("address=%s\n", record.Address)
	fmt.Printf("pubkey=%s\n", record.PubKey.Value)
	if addr != record.Address {
		fmt.Fprintf(os.Stderr, "WARNING: stored address %s does not match pubkey-derived %s\n",
			record.Address, addr)
		os.Exit(1)
	}
}
