package bazaar_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	Convey("test hexademical address printing", t, func() {
		addr := bazaar.Address([]byte("ABCD123456LHB1234567"))

		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", []byte(addr)))
		So(bazaar.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("test hexademical condition printing", t, func() {
		cond := bazaar.NewCondition("foo", "bar", []byte("ABCD123456LHB"))

		So(cond.String(), ShouldEqual, "foo/bar/"+fmt.Sprintf("%X", "ABCD123456LHB"))
		So(bazaar.Condition("garbage").String(), ShouldStartWith, "Invalid Condition")
	})
}

func TestAddressUnmarshalJSON(t *testing.T) {
	raw := []byte("0123456789abcdefghij")
	bech, err := bazaar.Address(raw).Bech32String("tiov")
	require.NoError(t, err)

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr bazaar.Address
	}{
		"default decoding": {
			json:     `"30313233343536373839616263646566676869 6a"`,
			wantErr:  errors.ErrInput,
			wantAddr: nil,
		},
		"hex without prefix": {
			json:     `"303132333435363738396162636465666768696a"`,
			wantAddr: bazaar.Address(raw),
		},
		"hex decoding": {
			json:     `"hex:303132333435363738396162636465666768696a"`,
			wantAddr: bazaar.Address(raw),
		},
		"hex of invalid length": {
			json:    `"hex:6865782d61646472"`,
			wantErr: errors.ErrInput,
		},
		"bech32 decoding": {
			json:     `"bech32:` + bech + `"`,
			wantAddr: bazaar.Address(raw),
		},
		"invalid bech32": {
			json:    `"bech32:tiov1qqqq"`,
			wantErr: errors.ErrInput,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: bazaar.NewCondition("foo", "bar", []byte("conditiondata")).Address(),
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrType,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a bazaar.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestAddressMarshalJSON(t *testing.T) {
	addr := bazaar.NewCondition("foo", "bar", []byte("data")).Address()
	got, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"`+strings.ToUpper(fmt.Sprintf("%x", []byte(addr)))+`"`, string(got))

	var back bazaar.Address
	require.NoError(t, json.Unmarshal(got, &back))
	assert.True(t, addr.Equals(back))
}

func TestAddressValidate(t *testing.T) {
	assert.NoError(t, bazaar.NewAddress([]byte("anything")).Validate())
	assert.True(t, errors.ErrInput.Is(bazaar.Address("short").Validate()))
	assert.True(t, errors.ErrInput.Is(bazaar.Address(nil).Validate()))
	assert.Nil(t, bazaar.NewAddress(nil))
}

func TestConditionParse(t *testing.T) {
	cond := bazaar.NewCondition("sigs", "ed25519", []byte{0, 1, 2})
	ext, typ, data, err := cond.Parse()
	require.NoError(t, err)
	assert.Equal(t, "sigs", ext)
	assert.Equal(t, "ed25519", typ)
	assert.Equal(t, []byte{0, 1, 2}, data)
	assert.NoError(t, cond.Validate())

	_, _, _, err = bazaar.Condition("no/separator").Parse()
	assert.True(t, errors.ErrInput.Is(err))
	assert.True(t, errors.ErrInput.Is(bazaar.Condition("a/b/c").Validate()))
}
