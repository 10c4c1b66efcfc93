package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/ownable"
)

// Controller orchestrates listing and purchase of tokens. It never
// modifies balances or ownership directly, all changes go through the cash
// and nft controllers.
type Controller struct {
	listings ListingBucket
	sells    SellBucket
	tokens   nft.Controller
	balances cash.Controller
}

// NewController returns a marketplace controller using given token
// registry and balance ledger.
func NewController(tokens nft.Controller, balances cash.Controller) Controller {
	return Controller{
		listings: NewListingBucket(),
		sells:    NewSellBucket(),
		tokens:   tokens,
		balances: balances,
	}
}

// List offers the token for sale. The caller must own the token. The
// principal is granted the right to transfer the token, the price is
// recorded and the token is appended to the sell sequence.
//
// Listing an already listed token overwrites the price and appends another
// sell sequence entry.
func (c Controller) List(db bazaar.KVStore, caller bazaar.Address, id nft.TokenID, price uint64) error {
	owner, err := c.tokens.OwnerOf(db, id)
	if err != nil {
		return err
	}
	if owner == nil || !owner.Equals(caller) {
		return errors.Wrapf(nft.ErrNotTokenOwner, "token %s", id)
	}

	principal, err := ownable.Principal(db)
	if err != nil {
		return err
	}
	if !principal.Equals(caller) {
		approved, err := c.tokens.IsApproved(db, id, principal)
		if err != nil {
			return err
		}
		if !approved {
			if err := c.tokens.Approve(db, caller, principal, id, true); err != nil {
				return errors.Wrap(err, "delegate to principal")
			}
		}
	}

	if err := c.listings.Save(db, id, &Listing{Price: price, Seller: caller}); err != nil {
		return err
	}
	return c.sells.Append(db, id)
}

// SellList returns the sell sequence in listing order. It may contain
// duplicates and tokens that were already sold.
func (c Controller) SellList(db bazaar.ReadOnlyKVStore) ([]nft.TokenID, error) {
	return c.sells.All(db)
}

// Price returns the price record of the token or nil if it is not listed.
func (c Controller) Price(db bazaar.ReadOnlyKVStore, id nft.TokenID) (*Listing, error) {
	return c.listings.Get(db, id)
}

// Buy pays the listed price of the token from the buyer to the expected
// seller. The token ownership and the listing are not changed.
func (c Controller) Buy(db bazaar.KVStore, buyer bazaar.Address, id nft.TokenID, expectedSeller bazaar.Address) error {
	listing, err := c.checkPurchase(db, buyer, id, expectedSeller)
	if err != nil {
		return err
	}
	return c.balances.MoveCoins(db, buyer, expectedSeller, listing.Price)
}

// BuyAtomic works as Buy and additionally moves the token to the buyer and
// removes the price record. The sell sequence is not changed.
func (c Controller) BuyAtomic(db bazaar.KVStore, buyer bazaar.Address, id nft.TokenID, expectedSeller bazaar.Address) error {
	listing, err := c.checkPurchase(db, buyer, id, expectedSeller)
	if err != nil {
		return err
	}
	if err := c.balances.MoveCoins(db, buyer, expectedSeller, listing.Price); err != nil {
		return err
	}
	if err := c.tokens.Transfer(db, expectedSeller, buyer, id); err != nil {
		return errors.Wrap(err, "hand over token")
	}
	return c.listings.Delete(db, id)
}

// checkPurchase validates a purchase and returns the listing. The checks
// are executed in order: listing, funds, seller.
func (c Controller) checkPurchase(db bazaar.KVStore, buyer bazaar.Address, id nft.TokenID, expectedSeller bazaar.Address) (*Listing, error) {
	listing, err := c.listings.Get(db, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, errors.Wrapf(ErrNotListed, "token %s", id)
	}

	balance, err := c.balances.Balance(db, buyer)
	if err != nil {
		return nil, err
	}
	if balance < listing.Price {
		return nil, errors.Wrapf(cash.ErrInsufficientFunds, "balance %d, price %d", balance, listing.Price)
	}

	owner, err := c.tokens.OwnerOf(db, id)
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.Equals(expectedSeller) {
		return nil, errors.Wrapf(ErrSellerMismatch, "token %s owner is %s", id, owner)
	}
	return listing, nil
}

// Transfer moves the token to a new owner. The caller must be the owner or
// hold a transfer approval, which the principal obtains by listing. The
// payload is opaque and is never stored. A payload longer than
// MaxPayloadLength fails with errors.ErrInput before the token is looked up.
func (c Controller) Transfer(db bazaar.KVStore, caller, to bazaar.Address, id nft.TokenID, payload []byte) error {
	if len(payload) > MaxPayloadLength {
		return errors.Wrapf(errors.ErrInput, "payload too long: %d", len(payload))
	}
	return c.tokens.Transfer(db, caller, to, id)
}
