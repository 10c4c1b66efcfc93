package gconf

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest/assert"
)

type MyConfig struct {
	Number int64  `protobuf:"varint,1,opt,name=number,proto3" json:"number,omitempty"`
	Text   string `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Addr   []byte `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *MyConfig) Reset()         { *m = MyConfig{} }
func (m *MyConfig) String() string { return proto.CompactTextString(m) }
func (*MyConfig) ProtoMessage()    {}

func (m *MyConfig) Validate() error {
	if m.Number < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		Conf        *MyConfig
		WantSaveErr *errors.Error
	}{
		"all fields": {
			Conf: &MyConfig{Number: 852151421, Text: "foobar", Addr: []byte("an address")},
		},
		"only text": {
			Conf: &MyConfig{Text: "foobar"},
		},
		"invalid configuration cannot be saved": {
			Conf:        &MyConfig{Number: -1},
			WantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "mypkg", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			if tc.WantSaveErr != nil {
				ok, err := Exists(db, "mypkg")
				assert.Nil(t, err)
				assert.Equal(t, false, ok)
				return
			}

			var got MyConfig
			if err := Load(db, "mypkg", &got); err != nil {
				t.Fatalf("cannot load configuration: %s", err)
			}
			assert.Equal(t, tc.Conf, &got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	db := store.MemStore()
	assert.Nil(t, Save(db, "other", &MyConfig{Number: 1}))

	var conf MyConfig
	if err := Load(db, "mypkg", &conf); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error: %s", err)
	}
	ok, err := Exists(db, "other")
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
}
