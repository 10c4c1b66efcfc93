package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("seqs", NewSimpleObj(nil, &Counter{}))
	s := b.Sequence("id")

	latest, raw, err := s.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), latest)
	if raw != nil {
		t.Fatalf("unexpected raw value: %X", raw)
	}

	first, err := s.NextVal(db)
	assert.Nil(t, err)
	second, err := s.NextVal(db)
	assert.Nil(t, err)
	if bytes.Compare(first, second) >= 0 {
		t.Fatalf("sequence not increasing: %X >= %X", first, second)
	}

	n, err := s.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), n)

	// Another sequence of the same bucket is independent.
	other := b.Sequence("other")
	n, err = other.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix  []byte
		wantEnd []byte
	}{
		"simple":       {prefix: []byte("abc"), wantEnd: []byte("abd")},
		"carry":        {prefix: []byte{0x01, 0xff}, wantEnd: []byte{0x02, 0x00}},
		"no upper end": {prefix: []byte{0xff, 0xff}, wantEnd: nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.prefix, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}
