package nft

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"

	"github.com/iov-one/bazaar/errors"
)

// Kind is the discriminator of a token identifier.
type Kind byte

// Supported identifier kinds. The numeric value of a kind defines the order
// of identifiers of different kinds.
const (
	KindU8 Kind = iota + 1
	KindU16
	KindU32
	KindU64
	KindU128
	KindBytes
)

// MaxBytesIDLength is the maximum length of a raw bytes identifier.
const MaxBytesIDLength = 256

var kindNames = map[Kind]string{
	KindU8:    "u8",
	KindU16:   "u16",
	KindU32:   "u32",
	KindU64:   "u64",
	KindU128:  "u128",
	KindBytes: "bytes",
}

// kindSizes holds the payload size of fixed width kinds.
var kindSizes = map[Kind]int{
	KindU8:   1,
	KindU16:  2,
	KindU32:  4,
	KindU64:  8,
	KindU128: 16,
}

// TokenID identifies a token. It is stored as the kind byte followed by the
// big endian encoded value, or the raw bytes for KindBytes. Byte wise
// comparison of two identifiers orders them by kind first and value second.
type TokenID []byte

// U8 returns an 8 bit unsigned integer token identifier.
func U8(v uint8) TokenID {
	return TokenID{byte(KindU8), v}
}

// U16 returns a 16 bit unsigned integer token identifier.
func U16(v uint16) TokenID {
	id := make(TokenID, 3)
	id[0] = byte(KindU16)
	binary.BigEndian.PutUint16(id[1:], v)
	return id
}

// U32 returns a 32 bit unsigned integer token identifier.
func U32(v uint32) TokenID {
	id := make(TokenID, 5)
	id[0] = byte(KindU32)
	binary.BigEndian.PutUint32(id[1:], v)
	return id
}

// U64 returns a 64 bit unsigned integer token identifier.
func U64(v uint64) TokenID {
	id := make(TokenID, 9)
	id[0] = byte(KindU64)
	binary.BigEndian.PutUint64(id[1:], v)
	return id
}

// U128 returns a 128 bit unsigned integer token identifier composed of the
// high and the low 64 bits.
func U128(hi, lo uint64) TokenID {
	id := make(TokenID, 17)
	id[0] = byte(KindU128)
	binary.BigEndian.PutUint64(id[1:], hi)
	binary.BigEndian.PutUint64(id[9:], lo)
	return id
}

// BytesID returns a raw bytes token identifier.
func BytesID(raw []byte) TokenID {
	id := make(TokenID, 1+len(raw))
	id[0] = byte(KindBytes)
	copy(id[1:], raw)
	return id
}

// Kind returns the kind of this identifier or zero if the identifier is
// empty.
func (id TokenID) Kind() Kind {
	if len(id) == 0 {
		return 0
	}
	return Kind(id[0])
}

// Validate returns an error if the identifier is not well formed.
func (id TokenID) Validate() error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "token id")
	}
	kind := id.Kind()
	if kind == KindBytes {
		switch n := len(id) - 1; {
		case n == 0:
			return errors.Wrap(errors.ErrInput, "empty bytes token id")
		case n > MaxBytesIDLength:
			return errors.Wrapf(errors.ErrInput, "bytes token id too long: %d", n)
		}
		return nil
	}
	size, ok := kindSizes[kind]
	if !ok {
		return errors.Wrapf(errors.ErrInput, "unknown token id kind %d", kind)
	}
	if len(id)-1 != size {
		return errors.Wrapf(errors.ErrInput, "invalid %s token id length: %d", kindNames[kind], len(id)-1)
	}
	return nil
}

// Equals returns true if both identifiers are the same.
func (id TokenID) Equals(other TokenID) bool {
	return bytes.Equal(id, other)
}

// Compare returns an integer comparing two identifiers. The result will be 0
// if id == other, -1 if id < other, and +1 if id > other.
func (id TokenID) Compare(other TokenID) int {
	return bytes.Compare(id, other)
}

// String returns the textual representation, for example "u8:1" or
// "bytes:0x6e6674".
func (id TokenID) String() string {
	if err := id.Validate(); err != nil {
		return "(invalid)"
	}
	payload := id[1:]
	switch kind := id.Kind(); kind {
	case KindU8:
		return "u8:" + strconv.FormatUint(uint64(payload[0]), 10)
	case KindU16:
		return "u16:" + strconv.FormatUint(uint64(binary.BigEndian.Uint16(payload)), 10)
	case KindU32:
		return "u32:" + strconv.FormatUint(uint64(binary.BigEndian.Uint32(payload)), 10)
	case KindU64:
		return "u64:" + strconv.FormatUint(binary.BigEndian.Uint64(payload), 10)
	default:
		return kindNames[kind] + ":0x" + hex.EncodeToString(payload)
	}
}

// ParseTokenID decodes the textual representation of an identifier.
//
// Integer kinds accept decimal values. The u128 kind accepts decimal or 0x
// prefixed hex values. The bytes kind requires a 0x prefixed hex value.
func ParseTokenID(s string) (TokenID, error) {
	chunks := strings.SplitN(s, ":", 2)
	if len(chunks) != 2 {
		return nil, errors.Wrapf(errors.ErrInput, "token id %q: missing kind", s)
	}
	name, value := chunks[0], chunks[1]

	var id TokenID
	switch name {
	case "u8", "u16", "u32", "u64":
		bits := map[string]int{"u8": 8, "u16": 16, "u32": 32, "u64": 64}[name]
		n, err := strconv.ParseUint(value, 10, bits)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "token id %q: %s", s, err)
		}
		switch bits {
		case 8:
			id = U8(uint8(n))
		case 16:
			id = U16(uint16(n))
		case 32:
			id = U32(uint32(n))
		default:
			id = U64(n)
		}
	case "u128":
		n, ok := new(big.Int).SetString(value, 0)
		if !ok || n.Sign() < 0 || n.BitLen() > 128 {
			return nil, errors.Wrapf(errors.ErrInput, "token id %q: invalid u128 value", s)
		}
		raw := make([]byte, 16)
		b := n.Bytes()
		copy(raw[16-len(b):], b)
		id = append(TokenID{byte(KindU128)}, raw...)
	case "bytes":
		if !strings.HasPrefix(value, "0x") {
			return nil, errors.Wrapf(errors.ErrInput, "token id %q: missing 0x prefix", s)
		}
		raw, err := hex.DecodeString(value[2:])
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "token id %q: %s", s, err)
		}
		id = BytesID(raw)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "token id %q: unknown kind %q", s, name)
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}

// MarshalJSON encodes the identifier using its textual representation.
func (id TokenID) MarshalJSON() ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes the textual representation of an identifier.
func (id *TokenID) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrapf(errors.ErrInput, "token id: %s", err)
	}
	parsed, err := ParseTokenID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
