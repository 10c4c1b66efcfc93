package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use bazaar.Address, so address in hex, not base64
type GenesisAccount struct {
	Address bazaar.Address `json:"address"`
	Amount  uint64         `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ bazaar.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts bazaar.Options, kv bazaar.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	ctrl := NewController(NewBucket())
	for i, acct := range accts {
		if err := ctrl.IssueCoins(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "genesis account %d", i)
		}
	}
	return nil
}
