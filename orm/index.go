package orm

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

const idxPrefix = "_i."

// Indexer calculates the secondary index key for a given object. Returning
// a nil key excludes the object from the index.
type Indexer func(Object) ([]byte, error)

// Index represents a secondary index on some data.
//
// Every indexed object is stored as a separate entry, so that the index can
// grow without rewriting a single record. The entry key is the index prefix,
// followed by the length prefixed index value and the primary key of the
// object.
type Index struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
}

// NewIndex constructs an index.
// Indexer calculates the index for an object
// unique enforces a unique constraint on the index
func NewIndex(name string, indexer Indexer, unique bool) Index {
	return Index{
		name:   name,
		id:     append([]byte(idxPrefix), []byte(name+":")...),
		index:  indexer,
		unique: unique,
	}
}

// Name returns the name of this index.
func (i Index) Name() string {
	return i.name
}

// valuePrefix returns the key prefix of all entries indexed under value.
func (i Index) valuePrefix(value []byte) ([]byte, error) {
	if len(value) > math.MaxUint16 {
		return nil, errors.Wrap(ErrInvalidIndex, "value too long")
	}
	l := len(i.id)
	out := make([]byte, l+2+len(value))
	copy(out, i.id)
	binary.BigEndian.PutUint16(out[l:], uint16(len(value)))
	copy(out[l+2:], value)
	return out, nil
}

// Update handles updating the reference to the object in
// the secondary index.
//
// prev == nil means insert
// save == nil means delete
// both == nil is error
// if both != nil and prev.Key() != save.Key() this is an error
func (i Index) Update(db bazaar.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(ErrInvalidIndex, "update requires at least one non-nil object")
	case prev == nil:
		return i.insert(db, save)
	case save == nil:
		return i.remove(db, prev)
	}

	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(ErrInvalidIndex, "save and prev keys differ")
	}
	before, err := i.index(prev)
	if err != nil {
		return err
	}
	after, err := i.index(save)
	if err != nil {
		return err
	}
	if bytes.Equal(before, after) {
		return nil
	}
	if err := i.remove(db, prev); err != nil {
		return err
	}
	return i.insert(db, save)
}

func (i Index) insert(db bazaar.KVStore, obj Object) error {
	value, err := i.index(obj)
	if err != nil || value == nil {
		return err
	}
	if i.unique {
		refs, err := i.Keys(db, value)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if !bytes.Equal(ref, obj.Key()) {
				return errors.Wrapf(errors.ErrDuplicate, "index %s", i.name)
			}
		}
	}
	prefix, err := i.valuePrefix(value)
	if err != nil {
		return err
	}
	return db.Set(append(prefix, obj.Key()...), obj.Key())
}

func (i Index) remove(db bazaar.KVStore, obj Object) error {
	value, err := i.index(obj)
	if err != nil || value == nil {
		return err
	}
	prefix, err := i.valuePrefix(value)
	if err != nil {
		return err
	}
	return db.Delete(append(prefix, obj.Key()...))
}

// Keys returns the primary keys of all objects indexed under given value,
// ordered by the primary key.
func (i Index) Keys(db bazaar.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	prefix, err := i.valuePrefix(value)
	if err != nil {
		return nil, err
	}
	start, end := prefixRange(prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var refs [][]byte
	for {
		key, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return refs, nil
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, append([]byte(nil), key[len(prefix):]...))
	}
}
