package ownable

import (
	"github.com/iov-one/bazaar"
)

const optKey = "ownable"

// Genesis is the genesis file content of the ownable extension.
type Genesis struct {
	Principal bazaar.Address `json:"principal"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ bazaar.Initializer = Initializer{}

// FromGenesis sets the principal if the genesis file declares one.
func (Initializer) FromGenesis(opts bazaar.Options, db bazaar.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen.Principal == nil {
		return nil
	}
	return Init(db, gen.Principal)
}
