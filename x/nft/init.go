package nft

import (
	"sort"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

const optKey = "nft"

// GenesisToken is a token minted from the genesis file.
type GenesisToken struct {
	ID    TokenID        `json:"id"`
	Owner bazaar.Address `json:"owner"`
}

// Genesis is the genesis file content of the nft extension.
type Genesis struct {
	Collection map[string]string `json:"collection"`
	Tokens     []GenesisToken    `json:"tokens"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ bazaar.Initializer = Initializer{}

// FromGenesis sets the collection attributes and mints all tokens declared
// in the genesis file.
func (Initializer) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	ctrl := NewController(NewBucket())

	keys := make([]string, 0, len(gen.Collection))
	for k := range gen.Collection {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := ctrl.SetAttribute(db, k, gen.Collection[k]); err != nil {
			return errors.Wrapf(err, "collection attribute %q", k)
		}
	}

	for i, t := range gen.Tokens {
		if err := ctrl.Mint(db, t.Owner, t.ID); err != nil {
			return errors.Wrapf(err, "genesis token %d", i)
		}
	}
	return nil
}
