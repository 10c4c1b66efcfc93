package nft

import (
	"sort"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

// Well known collection attribute keys.
const (
	AttrName   = "name"
	AttrSymbol = "symbol"
)

const (
	collectionConfKey = "nft"
	maxAttrKeyLength  = 64
	maxAttrValueLen   = 1024
)

// Attribute is a single key/value pair describing the collection.
type Attribute struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Attribute) Reset()         { *m = Attribute{} }
func (m *Attribute) String() string { return proto.CompactTextString(m) }
func (*Attribute) ProtoMessage()    {}

// Collection holds the attributes of the whole token collection, ordered
// by key.
type Collection struct {
	Attributes []*Attribute `protobuf:"bytes,1,rep,name=attributes,proto3" json:"attributes,omitempty"`
}

func (m *Collection) Reset()         { *m = Collection{} }
func (m *Collection) String() string { return proto.CompactTextString(m) }
func (*Collection) ProtoMessage()    {}

// Validate ensures that attribute keys are unique, sorted and within the
// size limits.
func (m *Collection) Validate() error {
	for i, a := range m.Attributes {
		switch {
		case a == nil:
			return errors.Field("Attributes", errors.ErrEmpty, "attribute %d", i)
		case a.Key == "":
			return errors.Field("Attributes", errors.ErrEmpty, "attribute %d key", i)
		case len(a.Key) > maxAttrKeyLength:
			return errors.Field("Attributes", errors.ErrInput, "attribute %q key too long", a.Key)
		case len(a.Value) > maxAttrValueLen:
			return errors.Field("Attributes", errors.ErrInput, "attribute %q value too long", a.Key)
		case i > 0 && m.Attributes[i-1].Key >= a.Key:
			return errors.Field("Attributes", errors.ErrState, "attribute %q not in order", a.Key)
		}
	}
	return nil
}

// Get returns the value of the attribute and true if it is set.
func (m *Collection) Get(key string) (string, bool) {
	i := sort.Search(len(m.Attributes), func(i int) bool { return m.Attributes[i].Key >= key })
	if i < len(m.Attributes) && m.Attributes[i].Key == key {
		return m.Attributes[i].Value, true
	}
	return "", false
}

// Set inserts or updates the attribute, keeping the order by key.
func (m *Collection) Set(key, value string) {
	i := sort.Search(len(m.Attributes), func(i int) bool { return m.Attributes[i].Key >= key })
	if i < len(m.Attributes) && m.Attributes[i].Key == key {
		m.Attributes[i].Value = value
		return
	}
	m.Attributes = append(m.Attributes, nil)
	copy(m.Attributes[i+1:], m.Attributes[i:])
	m.Attributes[i] = &Attribute{Key: key, Value: value}
}

func loadCollection(db gconf.ReadStore) (*Collection, error) {
	var c Collection
	switch err := gconf.Load(db, collectionConfKey, &c); {
	case errors.ErrNotFound.Is(err):
		return &c, nil
	case err != nil:
		return nil, err
	}
	return &c, nil
}
