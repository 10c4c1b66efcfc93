package ownable

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const confKey = "ownable"

// Init sets the principal. It can be called only once.
func Init(db gconf.Store, principal bazaar.Address) error {
	switch ok, err := gconf.Exists(db, confKey); {
	case err != nil:
		return err
	case ok:
		return errors.Wrap(errors.ErrDuplicate, "principal already set")
	}
	return gconf.Save(db, confKey, &Configuration{Principal: principal})
}

// Principal returns the distinguished principal. It fails with
// errors.ErrNotFound if the principal was not set yet.
func Principal(db gconf.ReadStore) (bazaar.Address, error) {
	var conf Configuration
	if err := gconf.Load(db, confKey, &conf); err != nil {
		return nil, errors.Wrap(err, "principal")
	}
	return bazaar.Address(conf.Principal), nil
}

// RequirePrincipal returns errors.ErrUnauthorized unless caller is the
// distinguished principal.
func RequirePrincipal(db gconf.ReadStore, caller bazaar.Address) error {
	principal, err := Principal(db)
	if err != nil {
		return err
	}
	if !principal.Equals(caller) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s is not the principal", caller)
	}
	return nil
}
