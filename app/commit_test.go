package app

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentLedger(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	owner := weavetest.SequenceAddress(1)
	buyer := weavetest.SequenceAddress(2)

	l, err := OpenLedger(dir)
	require.NoError(t, err)
	require.NoError(t, l.Initialize(owner))
	require.NoError(t, l.TransferBalance(owner, buyer, 300))
	require.NoError(t, l.ListForSale(owner, nft.U8(1), 100))

	// A failed operation does not produce a new version.
	err = l.TransferBalance(buyer, owner, 301)
	assert.True(t, cash.ErrInsufficientFunds.Is(err), "%+v", err)

	v, err := l.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Version)
	assert.NotEmpty(t, v.Hash)
	l.Close()

	l, err = OpenLedger(dir)
	require.NoError(t, err)
	defer l.Close()

	v, err = l.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Version)

	p, err := l.Principal()
	require.NoError(t, err)
	assert.Equal(t, owner, p)
	n, err := l.BalanceOf(buyer)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), n)
	ids, err := l.SellList()
	require.NoError(t, err)
	assert.Equal(t, []nft.TokenID{nft.U8(1)}, ids)

	require.NoError(t, l.Buy(buyer, nft.U8(1), owner))
	n, err = l.BalanceOf(owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(800), n)

	v, err = l.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Version)
}

func TestInMemoryLedgerHasNoVersion(t *testing.T) {
	l, err := New(weavetest.SequenceAddress(1))
	require.NoError(t, err)
	_, err = l.Version()
	assert.True(t, errors.ErrState.Is(err), "%+v", err)
	// Close is a noop.
	l.Close()
}

func TestFailedCommitDropsWrites(t *testing.T) {
	dir, err := ioutil.TempDir("", "ledger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	owner := weavetest.SequenceAddress(1)
	other := weavetest.SequenceAddress(2)

	l, err := OpenLedger(dir)
	require.NoError(t, err)
	defer l.Close()
	require.NoError(t, l.Initialize(owner))

	commit := l.commit
	l.commit = func() (bazaar.CommitID, error) {
		return bazaar.CommitID{}, errors.ErrDatabase.New("disk full")
	}
	err = l.TransferBalance(owner, other, 100)
	assert.True(t, errors.ErrDatabase.Is(err), "%+v", err)
	assert.Equal(t, uint64(1000), balanceOf(t, l, owner))
	assert.Equal(t, uint64(0), balanceOf(t, l, other))

	// The next successful commit does not carry the dropped writes.
	l.commit = commit
	require.NoError(t, l.TransferBalance(owner, other, 10))
	assert.Equal(t, uint64(990), balanceOf(t, l, owner))
	assert.Equal(t, uint64(10), balanceOf(t, l, other))

	v, err := l.Version()
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Version)
}
