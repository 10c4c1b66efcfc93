package store

import (
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

/**
TestSuite provides many methods that can be called in package-specific test code.
We just customize the store being tested (pass in constructor), the rest of the
logic is generic to the KVStore interface.

This is intended in particular to remove duplication between btree_test.go
and iavl/adapter_test.go, but can be used for any implementation of KVStore.
*/
type TestSuite struct {
	makeBase TestStoreConstructor
}

type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks on our cache
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	// make sure the store is empty at start but returns results
	// that are written to it
	k, v := []byte("french"), []byte("fry")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	s.AssertGetHas(t, cache, k2, nil, false)
	assert.Nil(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	s.AssertGetHas(t, c2, k, v, true)
	s.AssertGetHas(t, c2, k2, v2, true)
	assert.Nil(t, c2.Set(k3, v3))
	s.AssertGetHas(t, c2, k3, v3, true)
	c2.Discard()
	s.AssertGetHas(t, base, k3, nil, false)

	// delete in a cache is only visible after write
	c3 := base.CacheWrap()
	assert.Nil(t, c3.Delete(k))
	s.AssertGetHas(t, c3, k, nil, false)
	s.AssertGetHas(t, base, k, v, true)
	assert.Nil(t, c3.Write())
	s.AssertGetHas(t, base, k, nil, false)
}

// Iterate checks that cached and base values are merged in order, with
// deletes and overwrites applied.
func (s *TestSuite) Iterate(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	for _, k := range []string{"a", "c", "e", "g"} {
		assert.Nil(t, base.Set([]byte(k), []byte("base-"+k)))
	}

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("cache-b")))
	assert.Nil(t, cache.Set([]byte("c"), []byte("cache-c")))
	assert.Nil(t, cache.Delete([]byte("e")))
	assert.Nil(t, cache.Set([]byte("h"), []byte("cache-h")))

	it, err := cache.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, []Model{
		{Key: []byte("a"), Value: []byte("base-a")},
		{Key: []byte("b"), Value: []byte("cache-b")},
		{Key: []byte("c"), Value: []byte("cache-c")},
		{Key: []byte("g"), Value: []byte("base-g")},
		{Key: []byte("h"), Value: []byte("cache-h")},
	}, s.readAll(t, it))

	it, err = cache.Iterator([]byte("b"), []byte("g"))
	assert.Nil(t, err)
	assert.Equal(t, []Model{
		{Key: []byte("b"), Value: []byte("cache-b")},
		{Key: []byte("c"), Value: []byte("cache-c")},
	}, s.readAll(t, it))

	it, err = cache.ReverseIterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, []Model{
		{Key: []byte("h"), Value: []byte("cache-h")},
		{Key: []byte("g"), Value: []byte("base-g")},
		{Key: []byte("c"), Value: []byte("cache-c")},
		{Key: []byte("b"), Value: []byte("cache-b")},
		{Key: []byte("a"), Value: []byte("base-a")},
	}, s.readAll(t, it))
}

func (s *TestSuite) readAll(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Release()

	var res []Model
	for {
		key, value, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res
		}
		assert.Nil(t, err)
		res = append(res, Model{Key: key, Value: value})
	}
}

// AssertGetHas makes sure that the store returns given value for the key and
// that the presence of the key is reported correctly.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}
