package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/bazaar/errors"
)

// mergeIterator combines the cached items of a btree with the results of the
// parent store iterator, taking overwrites and deletes into consideration.
type mergeIterator struct {
	cached    []btree.Item
	parent    Iterator
	ascending bool

	// next element of the parent, read ahead
	pKey, pValue []byte
	pDone        bool
	pErr         error
}

func newMergeIterator(cached []btree.Item, parent Iterator, ascending bool) *mergeIterator {
	it := &mergeIterator{
		cached:    cached,
		parent:    parent,
		ascending: ascending,
	}
	it.advanceParent()
	return it
}

func (it *mergeIterator) advanceParent() {
	key, value, err := it.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		it.pDone = true
		it.pKey, it.pValue = nil, nil
	case err != nil:
		it.pErr = err
	default:
		it.pKey, it.pValue = key, value
	}
}

// before returns true if key a comes before key b in the order of iteration.
func (it *mergeIterator) before(a, b []byte) bool {
	if it.ascending {
		return bytes.Compare(a, b) < 0
	}
	return bytes.Compare(a, b) > 0
}

// Next returns the next visible element.
func (it *mergeIterator) Next() (key, value []byte, err error) {
	for {
		if it.pErr != nil {
			return nil, nil, it.pErr
		}
		if len(it.cached) == 0 {
			if it.pDone {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "merge iterator")
			}
			key, value = it.pKey, it.pValue
			it.advanceParent()
			return key, value, nil
		}

		item := it.cached[0]
		ckey := item.(keyer).Key()
		if !it.pDone && it.before(it.pKey, ckey) {
			key, value = it.pKey, it.pValue
			it.advanceParent()
			return key, value, nil
		}

		// The cached value shadows the parent value of the same key.
		if !it.pDone && bytes.Equal(it.pKey, ckey) {
			it.advanceParent()
		}
		it.cached = it.cached[1:]

		switch t := item.(type) {
		case setItem:
			return t.key, t.value, nil
		case deletedItem:
			continue
		default:
			return nil, nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", item)
		}
	}
}

// Release releases the parent iterator.
func (it *mergeIterator) Release() {
	it.parent.Release()
	it.cached = nil
}
