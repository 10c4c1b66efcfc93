package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/ownable"
)

// Genesis file format.
type Genesis struct {
	AppState bazaar.Options `json:"app_state"`
}

// Initializers returns the genesis initializers of all extensions used by
// the ledger.
func Initializers() bazaar.Initializer {
	return bazaar.ChainInitializers(
		ownable.Initializer{},
		cash.Initializer{},
		nft.Initializer{},
	)
}

// FromGenesis loads the initial state of all extensions. Nothing is written
// if any of the extensions fails.
func (l *Ledger) FromGenesis(opts bazaar.Options) error {
	return l.exec("genesis", nil, func(db bazaar.KVStore) error {
		return Initializers().FromGenesis(opts, db)
	})
}

// LoadGenesis reads a genesis file and loads its application state.
func (l *Ledger) LoadGenesis(filePath string) error {
	gen, err := loadGenesis(filePath)
	if err != nil {
		return err
	}
	return l.FromGenesis(gen.AppState)
}

// loadGenesis tries to load a given file into a Genesis struct
func loadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "unmarshal genesis file: %s", err)
	}
	return gen, nil
}
