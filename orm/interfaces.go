package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar"
)

// Object is what is stored in the bucket
// Key is joined with the prefix to set the full key
// Value is the data stored
//
// this can be light wrapper around a protobuf-defined type
type Object interface {
	Keyed
	Cloneable
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	bazaar.Validater
	Value() Model
}

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db bazaar.ReadOnlyKVStore, key []byte) (Object, error)
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}

// Model is a protobuf message that can validate itself. All values stored
// by a bucket are models and are serialized with the protobuf encoding.
type Model interface {
	proto.Message
	bazaar.Validater
}
