package nft

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

// Controller is the token registry functionality used by other extensions.
type Controller interface {
	// Mint creates a new token owned by given account.
	Mint(db bazaar.KVStore, owner bazaar.Address, id TokenID) error
	// Burn removes a token. Only the current holder can burn it.
	Burn(db bazaar.KVStore, holder bazaar.Address, id TokenID) error
	// Destroy removes a token whoever holds it. Authorization is the
	// responsibility of the caller.
	Destroy(db bazaar.KVStore, id TokenID) error
	// Transfer moves the ownership of a token. The caller must be the
	// owner or hold a transfer approval.
	Transfer(db bazaar.KVStore, caller, to bazaar.Address, id TokenID) error
	// Approve grants or revokes the operator transfer authority.
	Approve(db bazaar.KVStore, caller, operator bazaar.Address, id TokenID, approved bool) error
	OwnerOf(db bazaar.ReadOnlyKVStore, id TokenID) (bazaar.Address, error)
	IsApproved(db bazaar.ReadOnlyKVStore, id TokenID, operator bazaar.Address) (bool, error)
	TokensOf(db bazaar.ReadOnlyKVStore, owner bazaar.Address) ([]TokenID, error)
	TotalSupply(db bazaar.ReadOnlyKVStore) (uint64, error)
	SetAttribute(db bazaar.KVStore, key, value string) error
	Attribute(db bazaar.ReadOnlyKVStore, key string) (string, error)
}

// BaseController is the default implementation of Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Mint creates a new token owned by given account. It fails with
// ErrTokenExists if the token was already minted.
func (c BaseController) Mint(db bazaar.KVStore, owner bazaar.Address, id TokenID) error {
	if err := id.Validate(); err != nil {
		return errors.Wrap(err, "token id")
	}
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	switch exists, err := c.bucket.Has(db, id); {
	case err != nil:
		return err
	case exists:
		return errors.Wrapf(ErrTokenExists, "token %s", id)
	}
	return c.bucket.Save(db, id, &Token{Owner: owner})
}

// Burn removes the token. It fails with ErrNotTokenOwner unless holder owns
// the token.
func (c BaseController) Burn(db bazaar.KVStore, holder bazaar.Address, id TokenID) error {
	t, err := c.load(db, id)
	if err != nil {
		return err
	}
	if !t.OwnerAddress().Equals(holder) {
		return errors.Wrapf(ErrNotTokenOwner, "token %s", id)
	}
	return c.bucket.Delete(db, id)
}

// Destroy removes the token regardless of its holder. It fails with
// ErrTokenNotFound if the token does not exist.
func (c BaseController) Destroy(db bazaar.KVStore, id TokenID) error {
	if _, err := c.load(db, id); err != nil {
		return err
	}
	return c.bucket.Delete(db, id)
}

// Transfer moves the token to a new owner. The caller must be the current
// owner or must hold a transfer approval. All approvals are cleared.
func (c BaseController) Transfer(db bazaar.KVStore, caller, to bazaar.Address, id TokenID) error {
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	t, err := c.load(db, id)
	if err != nil {
		return err
	}
	if !t.OwnerAddress().Equals(caller) && !t.HasApproval(Transfer, caller) {
		return errors.Wrapf(ErrNotTokenOwner, "token %s", id)
	}
	t.Owner = to
	t.Approvals = nil
	return c.bucket.Save(db, id, t)
}

// Approve grants the operator the right to transfer the token, or revokes
// that right. Only the owner can manage approvals of a token.
func (c BaseController) Approve(db bazaar.KVStore, caller, operator bazaar.Address, id TokenID, approved bool) error {
	if err := operator.Validate(); err != nil {
		return errors.Wrap(err, "operator")
	}
	t, err := c.load(db, id)
	if err != nil {
		return err
	}
	if !t.OwnerAddress().Equals(caller) {
		return errors.Wrapf(ErrNotTokenOwner, "token %s", id)
	}
	if operator.Equals(caller) {
		return errors.Wrapf(ErrSelfApproval, "token %s", id)
	}
	if approved {
		t.Grant(Transfer, operator)
	} else {
		t.Revoke(Transfer, operator)
	}
	return c.bucket.Save(db, id, t)
}

// OwnerOf returns the owner of the token or nil if the token does not
// exist.
func (c BaseController) OwnerOf(db bazaar.ReadOnlyKVStore, id TokenID) (bazaar.Address, error) {
	t, err := c.bucket.Get(db, id)
	if err != nil || t == nil {
		return nil, err
	}
	return t.OwnerAddress(), nil
}

// IsApproved returns true if the operator may transfer the token on behalf
// of its owner.
func (c BaseController) IsApproved(db bazaar.ReadOnlyKVStore, id TokenID, operator bazaar.Address) (bool, error) {
	t, err := c.bucket.Get(db, id)
	if err != nil || t == nil {
		return false, err
	}
	return t.HasApproval(Transfer, operator), nil
}

// TokensOf returns all tokens owned by given account, ordered by id.
func (c BaseController) TokensOf(db bazaar.ReadOnlyKVStore, owner bazaar.Address) ([]TokenID, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	return c.bucket.ByOwner(db, owner)
}

// TotalSupply returns the number of existing tokens.
func (c BaseController) TotalSupply(db bazaar.ReadOnlyKVStore) (uint64, error) {
	return c.bucket.Count(db)
}

// SetAttribute sets a collection attribute.
func (c BaseController) SetAttribute(db bazaar.KVStore, key, value string) error {
	coll, err := loadCollection(db)
	if err != nil {
		return err
	}
	coll.Set(key, value)
	return gconf.Save(db, collectionConfKey, coll)
}

// Attribute returns the value of a collection attribute or an empty string
// if it is not set.
func (c BaseController) Attribute(db bazaar.ReadOnlyKVStore, key string) (string, error) {
	coll, err := loadCollection(db)
	if err != nil {
		return "", err
	}
	v, _ := coll.Get(key)
	return v, nil
}

func (c BaseController) load(db bazaar.ReadOnlyKVStore, id TokenID) (*Token, error) {
	if err := id.Validate(); err != nil {
		return nil, errors.Wrap(err, "token id")
	}
	t, err := c.bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.Wrapf(ErrTokenNotFound, "token %s", id)
	}
	return t, nil
}
