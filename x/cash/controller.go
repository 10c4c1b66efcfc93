package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Controller is the functionality needed by other extensions to inspect and
// move balances.
type Controller interface {
	// Balance returns the amount held by given account. An account that was
	// never credited holds zero.
	Balance(bazaar.ReadOnlyKVStore, bazaar.Address) (uint64, error)

	// MoveCoins moves the given amount from src to dest.
	MoveCoins(db bazaar.KVStore, src, dest bazaar.Address, amount uint64) error

	// IssueCoins credits the destination account with a new amount.
	IssueCoins(db bazaar.KVStore, dest bazaar.Address, amount uint64) error
}

// BaseController is a simple implementation of Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a base controller.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount held by given account.
func (c BaseController) Balance(db bazaar.ReadOnlyKVStore, addr bazaar.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "account")
	}
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, nil
	}
	return w.Amount(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient balance, it fails
// with ErrInsufficientFunds and nothing is written.
func (c BaseController) MoveCoins(db bazaar.KVStore, src, dest bazaar.Address, amount uint64) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}

	sender, err := c.bucket.GetOrCreate(db, src)
	if err != nil {
		return err
	}
	if sender.Amount() < amount {
		return errors.Wrapf(ErrInsufficientFunds, "balance %d, required %d", sender.Amount(), amount)
	}
	// Nothing changes hands.
	if amount == 0 || src.Equals(dest) {
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	// save them and return
	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount to the destination address.
// Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db bazaar.KVStore, dest bazaar.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
