package nft

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestTokenIDText(t *testing.T) {
	cases := map[string]struct {
		text     string
		want     TokenID
		wantText string
		wantErr  *errors.Error
	}{
		"u8":               {text: "u8:1", want: U8(1)},
		"u16":              {text: "u16:300", want: U16(300)},
		"u32":              {text: "u32:70000", want: U32(70000)},
		"u64":              {text: "u64:18446744073709551615", want: U64(1<<64 - 1)},
		"u128 hex":         {text: "u128:0x00000000000000010000000000000002", want: U128(1, 2)},
		"u128 decimal":     {text: "u128:18446744073709551618", want: U128(1, 2), wantText: "u128:0x00000000000000010000000000000002"},
		"bytes":            {text: "bytes:0x6e6674", want: BytesID([]byte("nft"))},
		"u8 out of range":  {text: "u8:256", wantErr: errors.ErrInput},
		"u128 too big":     {text: "u128:0x100000000000000000000000000000000", wantErr: errors.ErrInput},
		"negative":         {text: "u32:-1", wantErr: errors.ErrInput},
		"empty bytes":      {text: "bytes:0x", wantErr: errors.ErrInput},
		"bytes without 0x": {text: "bytes:6e6674", wantErr: errors.ErrInput},
		"unknown kind":     {text: "i8:1", wantErr: errors.ErrInput},
		"missing kind":     {text: "1", wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			id, err := ParseTokenID(tc.text)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want, id)
			wantText := tc.wantText
			if wantText == "" {
				wantText = tc.text
			}
			assert.Equal(t, wantText, id.String())
		})
	}
}

func TestTokenIDValidate(t *testing.T) {
	long := make([]byte, MaxBytesIDLength+1)

	cases := map[string]struct {
		id      TokenID
		wantErr *errors.Error
	}{
		"u8":                {id: U8(0)},
		"max bytes length":  {id: BytesID(long[1:])},
		"nil":               {id: nil, wantErr: errors.ErrEmpty},
		"empty bytes":       {id: BytesID(nil), wantErr: errors.ErrInput},
		"too long bytes":    {id: BytesID(long), wantErr: errors.ErrInput},
		"unknown kind":      {id: TokenID{42, 1}, wantErr: errors.ErrInput},
		"truncated integer": {id: TokenID{byte(KindU32), 1, 2}, wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.id.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestTokenIDOrdering(t *testing.T) {
	ids := []TokenID{
		BytesID([]byte{0x01}),
		U16(2),
		U8(200),
		U128(0, 1),
		U8(3),
		U16(1),
		BytesID([]byte{0x00, 0xff}),
		U64(1),
		U32(1),
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })

	want := []string{
		"u8:3",
		"u8:200",
		"u16:1",
		"u16:2",
		"u32:1",
		"u64:1",
		"u128:0x00000000000000000000000000000001",
		"bytes:0x00ff",
		"bytes:0x01",
	}
	got := make([]string, len(ids))
	for i, id := range ids {
		got[i] = id.String()
	}
	assert.Equal(t, want, got)
	assert.Equal(t, true, U8(7).Equals(U8(7)))
	assert.Equal(t, false, U8(7).Equals(U16(7)))
}

func TestTokenIDJSON(t *testing.T) {
	var doc struct {
		IDs []TokenID `json:"ids"`
	}
	raw := `{"ids": ["u8:1", "bytes:0xcafe"]}`
	assert.Nil(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, []TokenID{U8(1), BytesID([]byte{0xca, 0xfe})}, doc.IDs)

	out, err := json.Marshal(doc)
	assert.Nil(t, err)
	assert.Equal(t, `{"ids":["u8:1","bytes:0xcafe"]}`, string(out))

	if err := json.Unmarshal([]byte(`{"ids": ["u8:x"]}`), &doc); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
