package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func makeBase() (store.CacheableKVStore, func()) {
	commit, err := NewMemCommitStore()
	if err != nil {
		panic(err)
	}
	return commit.Adapter(), func() {}
}

func TestIavlGetSet(t *testing.T) {
	store.NewTestSuite(makeBase).GetSet(t)
}

func TestIavlIterate(t *testing.T) {
	store.NewTestSuite(makeBase).Iterate(t)
}

func TestCommitAndReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "iavl-adapter-")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	commit, err := NewCommitStore(dir, "ledger")
	assert.Nil(t, err)

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("token"), []byte("alice")))
	assert.Nil(t, cache.Write())

	// Not committed yet, so the committed view does not see it.
	got, err := commit.Get([]byte("token"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	id, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	got, err = commit.Get([]byte("token"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("alice"), got)

	// A discarded cache never reaches the tree.
	cache = commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("other"), []byte("bob")))
	cache.Discard()
	_, err = commit.Commit()
	assert.Nil(t, err)

	commit.Close()

	// Reopening the database loads the latest version.
	reopened, err := NewCommitStore(dir, "ledger")
	assert.Nil(t, err)
	defer reopened.Close()
	latest, err := reopened.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), latest.Version)

	got, err = reopened.Get([]byte("token"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("alice"), got)
	got, err = reopened.Get([]byte("other"))
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestRollback(t *testing.T) {
	commit, err := NewMemCommitStore()
	assert.Nil(t, err)
	kv := commit.Adapter()

	// Nothing committed yet.
	assert.Nil(t, kv.Set([]byte("token"), []byte("alice")))
	commit.Rollback()
	got, err := kv.Get([]byte("token"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, kv.Set([]byte("token"), []byte("alice")))
	_, err = commit.Commit()
	assert.Nil(t, err)

	assert.Nil(t, kv.Set([]byte("token"), []byte("bob")))
	assert.Nil(t, kv.Set([]byte("other"), []byte("carol")))
	commit.Rollback()

	got, err = kv.Get([]byte("token"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("alice"), got)
	got, err = kv.Get([]byte("other"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	latest, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), latest.Version)
}
