package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Balance is the persisted state of a single account.
type Balance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return proto.CompactTextString(m) }
func (*Balance) ProtoMessage()    {}

// Validate is a noop, any amount is a valid balance.
func (m *Balance) Validate() error {
	return nil
}

//--- Wallet (Balance object, balance + key)

// Wallet is the actual object that we want to pass around
// in our code. It contains a balance as well as the
// address. It is connected to the Bucket to easily manipulate
// state.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Balance
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates a wallet with this address holding given amount.
func NewWallet(key bazaar.Address, amount uint64) *Wallet {
	return &Wallet{key: key, value: &Balance{Amount: amount}}
}

// Value gets the value stored in the object
func (w Wallet) Value() orm.Model {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if err := bazaar.Address(w.key).Validate(); err != nil {
		return errors.Field("Key", err, "invalid address")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: &Balance{Amount: w.value.Amount},
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Amount returns the balance stored in the wallet
func (w Wallet) Amount() uint64 {
	return w.value.Amount
}

// Add modifies the wallet to add given amount. It fails if the balance
// would overflow.
func (w *Wallet) Add(amount uint64) error {
	sum := w.value.Amount + amount
	if sum < w.value.Amount {
		return errors.Wrapf(errors.ErrOverflow, "%d + %d", w.value.Amount, amount)
	}
	w.value.Amount = sum
	return nil
}

// Subtract modifies the wallet to remove given amount. It fails if the
// balance does not cover the amount.
func (w *Wallet) Subtract(amount uint64) error {
	if w.value.Amount < amount {
		return errors.Wrapf(ErrInsufficientFunds, "balance %d, required %d", w.value.Amount, amount)
	}
	w.value.Amount -= amount
	return nil
}

//--- cash.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil, 0)),
	}
}

// Get returns the wallet stored under given address or nil.
func (b Bucket) Get(db bazaar.ReadOnlyKVStore, key bazaar.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	w, ok := obj.(*Wallet)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj)
	}
	return w, nil
}

// Save persists the wallet.
func (b Bucket) Save(db bazaar.KVStore, value *Wallet) error {
	return b.Bucket.Save(db, value)
}

// GetOrCreate returns the wallet stored under given address or a new, empty
// one. A created wallet is not saved.
func (b Bucket) GetOrCreate(db bazaar.ReadOnlyKVStore, key bazaar.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key, 0)
	}
	return wallet, nil
}
