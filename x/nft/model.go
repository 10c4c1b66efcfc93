package nft

import (
	"sort"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// BucketName is where the tokens are stored.
const BucketName = "nfts"

// Approval grants an account the right to execute an action on a token.
type Approval struct {
	Action  string `protobuf:"bytes,1,opt,name=action,proto3" json:"action,omitempty"`
	Address []byte `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *Approval) Reset()         { *m = Approval{} }
func (m *Approval) String() string { return proto.CompactTextString(m) }
func (*Approval) ProtoMessage()    {}

// Validate ensures the approval refers to a supported action and a valid
// account.
func (m *Approval) Validate() error {
	var errs error
	if !Action(m.Action).Valid() {
		errs = errors.AppendField(errs, "Action", errors.ErrInput.Newf("unknown action %q", m.Action))
	}
	errs = errors.AppendField(errs, "Address", bazaar.Address(m.Address).Validate())
	return errs
}

// Token is the registry record of a single token. A record exists for as
// long as the token is owned.
type Token struct {
	Owner     []byte      `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Approvals []*Approval `protobuf:"bytes,2,rep,name=approvals,proto3" json:"approvals,omitempty"`
}

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

// Validate ensures the token has an owner and all approvals are valid.
func (m *Token) Validate() error {
	errs := errors.AppendField(nil, "Owner", bazaar.Address(m.Owner).Validate())
	for _, a := range m.Approvals {
		if a == nil {
			errs = errors.AppendField(errs, "Approvals", errors.ErrEmpty)
			continue
		}
		errs = errors.AppendField(errs, "Approvals", a.Validate())
	}
	return errs
}

// OwnerAddress returns the owner of the token.
func (m *Token) OwnerAddress() bazaar.Address {
	return bazaar.Address(m.Owner)
}

// HasApproval returns true if given account is approved to execute the
// action on this token.
func (m *Token) HasApproval(action Action, addr bazaar.Address) bool {
	for _, a := range m.Approvals {
		if a.Action == string(action) && addr.Equals(a.Address) {
			return true
		}
	}
	return false
}

// Grant adds an approval unless the same one is already present.
func (m *Token) Grant(action Action, addr bazaar.Address) {
	if m.HasApproval(action, addr) {
		return
	}
	m.Approvals = append(m.Approvals, &Approval{Action: string(action), Address: addr})
}

// Revoke removes the approval of given account for the action.
func (m *Token) Revoke(action Action, addr bazaar.Address) {
	kept := m.Approvals[:0]
	for _, a := range m.Approvals {
		if a.Action == string(action) && addr.Equals(a.Address) {
			continue
		}
		kept = append(kept, a)
	}
	m.Approvals = kept
}

//--- nft.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket. Tokens are indexed by
// their owner.
type Bucket struct {
	orm.Bucket
}

const ownerIndex = "owner"

// NewBucket initializes a nft.Bucket with default name
func NewBucket() Bucket {
	b := orm.NewBucket(BucketName, orm.NewSimpleObj(nil, new(Token))).
		WithIndex(ownerIndex, ownerIndexer, false)
	return Bucket{Bucket: b}
}

func ownerIndexer(obj orm.Object) ([]byte, error) {
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return t.Owner, nil
}

// Get returns the token stored under given id or nil.
func (b Bucket) Get(db bazaar.ReadOnlyKVStore, id TokenID) (*Token, error) {
	obj, err := b.Bucket.Get(db, id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	return asToken(obj)
}

// Save writes the token under given id.
func (b Bucket) Save(db bazaar.KVStore, id TokenID, t *Token) error {
	return b.Bucket.Save(db, orm.NewSimpleObj(id, t))
}

// ByOwner returns the identifiers of all tokens held by given account,
// ordered by identifier.
func (b Bucket) ByOwner(db bazaar.ReadOnlyKVStore, owner bazaar.Address) ([]TokenID, error) {
	objs, err := b.Bucket.GetIndexed(db, ownerIndex, owner)
	if err != nil {
		return nil, err
	}
	ids := make([]TokenID, 0, len(objs))
	for _, o := range objs {
		ids = append(ids, TokenID(o.Key()))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })
	return ids, nil
}

func asToken(obj orm.Object) (*Token, error) {
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.WithType(errors.ErrModel, obj.Value())
	}
	return t, nil
}
