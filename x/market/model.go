package market

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/x/nft"
)

// Bucket names.
const (
	ListingBucketName = "listing"
	SellBucketName    = "selllist"
)

// MaxPayloadLength is the maximum size of the opaque transfer payload.
const MaxPayloadLength = 1024

// Listing is the price record of a token offered for sale.
type Listing struct {
	Price  uint64 `protobuf:"varint,1,opt,name=price,proto3" json:"price,omitempty"`
	Seller []byte `protobuf:"bytes,2,opt,name=seller,proto3" json:"seller,omitempty"`
}

func (m *Listing) Reset()         { *m = Listing{} }
func (m *Listing) String() string { return proto.CompactTextString(m) }
func (*Listing) ProtoMessage()    {}

// Validate ensures the seller is a valid address.
func (m *Listing) Validate() error {
	return errors.Field("Seller", bazaar.Address(m.Seller).Validate(), "invalid seller")
}

// SellEntry is a single element of the sell sequence.
type SellEntry struct {
	TokenID []byte `protobuf:"bytes,1,opt,name=token_id,json=tokenId,proto3" json:"token_id,omitempty"`
}

func (m *SellEntry) Reset()         { *m = SellEntry{} }
func (m *SellEntry) String() string { return proto.CompactTextString(m) }
func (*SellEntry) ProtoMessage()    {}

// Validate ensures the entry refers to a well formed token id.
func (m *SellEntry) Validate() error {
	return errors.Field("TokenID", nft.TokenID(m.TokenID).Validate(), "invalid token id")
}

// ListingBucket stores price records keyed by token id.
type ListingBucket struct {
	orm.Bucket
}

// NewListingBucket returns a bucket with the default name.
func NewListingBucket() ListingBucket {
	return ListingBucket{
		Bucket: orm.NewBucket(ListingBucketName, orm.NewSimpleObj(nil, new(Listing))),
	}
}

// Get returns the price record of the token or nil.
func (b ListingBucket) Get(db bazaar.ReadOnlyKVStore, id nft.TokenID) (*Listing, error) {
	obj, err := b.Bucket.Get(db, id)
	if err != nil || obj == nil {
		return nil, err
	}
	l, ok := obj.Value().(*Listing)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return l, nil
}

// Save writes the price record of the token.
func (b ListingBucket) Save(db bazaar.KVStore, id nft.TokenID, l *Listing) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, l))
}

// SellBucket stores the sell sequence. Entries are keyed by an increasing
// sequence value so that key order is insertion order.
type SellBucket struct {
	orm.Bucket
	seq orm.Sequence
}

// NewSellBucket returns a bucket with the default name.
func NewSellBucket() SellBucket {
	b := orm.NewBucket(SellBucketName, orm.NewSimpleObj(nil, new(SellEntry)))
	return SellBucket{
		Bucket: b,
		seq:    b.Sequence("id"),
	}
}

// Append adds the token at the end of the sell sequence.
func (b SellBucket) Append(db bazaar.KVStore, id nft.TokenID) error {
	key, err := b.seq.NextVal(db)
	if err != nil {
		return errors.Wrap(err, "sell sequence")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(key, &SellEntry{TokenID: id}))
}

// All returns all entries of the sell sequence in insertion order.
func (b SellBucket) All(db bazaar.ReadOnlyKVStore) ([]nft.TokenID, error) {
	var ids []nft.TokenID
	err := b.Bucket.Iterate(db, func(obj orm.Object) error {
		e, ok := obj.Value().(*SellEntry)
		if !ok {
			return errors.WithType(errors.ErrModel, obj.Value())
		}
		ids = append(ids, nft.TokenID(e.TokenID))
		return nil
	})
	return ids, err
}
