package nft

import (
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLifecycle(t *testing.T) {
	Convey("Test token registry works as intended", t, func() {
		alice := weavetest.SequenceAddress(1)
		bob := weavetest.SequenceAddress(2)
		carol := weavetest.SequenceAddress(3)

		kv := store.MemStore()
		ctrl := NewController(NewBucket())

		Convey("When a token is minted", func() {
			So(ctrl.Mint(kv, alice, U8(1)), ShouldBeNil)

			Convey("The minter owns it", func() {
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldResemble, alice)
			})

			Convey("It cannot be minted again", func() {
				err := ctrl.Mint(kv, bob, U8(1))
				So(ErrTokenExists.Is(err), ShouldBeTrue)
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldResemble, alice)
			})

			Convey("A token of another kind with the same value is distinct", func() {
				So(ctrl.Mint(kv, bob, U16(1)), ShouldBeNil)
				n, err := ctrl.TotalSupply(kv)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})

			Convey("Only the holder can burn it", func() {
				err := ctrl.Burn(kv, bob, U8(1))
				So(ErrNotTokenOwner.Is(err), ShouldBeTrue)

				So(ctrl.Burn(kv, alice, U8(1)), ShouldBeNil)
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldBeNil)

				err = ctrl.Burn(kv, alice, U8(1))
				So(ErrTokenNotFound.Is(err), ShouldBeTrue)
			})

			Convey("Destroy removes it whoever holds it", func() {
				So(ctrl.Destroy(kv, U8(1)), ShouldBeNil)
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldBeNil)
				ids, err := ctrl.TokensOf(kv, alice)
				So(err, ShouldBeNil)
				So(ids, ShouldBeEmpty)

				err = ctrl.Destroy(kv, U8(1))
				So(ErrTokenNotFound.Is(err), ShouldBeTrue)
			})

			Convey("A burned token can be minted again", func() {
				So(ctrl.Burn(kv, alice, U8(1)), ShouldBeNil)
				So(ctrl.Mint(kv, bob, U8(1)), ShouldBeNil)
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldResemble, bob)
			})

			Convey("The owner can transfer it", func() {
				So(ctrl.Transfer(kv, alice, bob, U8(1)), ShouldBeNil)
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldResemble, bob)

				err = ctrl.Transfer(kv, alice, carol, U8(1))
				So(ErrNotTokenOwner.Is(err), ShouldBeTrue)
			})

			Convey("An approved operator can transfer it once", func() {
				So(ctrl.Approve(kv, alice, carol, U8(1), true), ShouldBeNil)
				ok, err := ctrl.IsApproved(kv, U8(1), carol)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)

				So(ctrl.Transfer(kv, carol, bob, U8(1)), ShouldBeNil)
				owner, err := ctrl.OwnerOf(kv, U8(1))
				So(err, ShouldBeNil)
				So(owner, ShouldResemble, bob)

				// Approvals do not survive the ownership change.
				ok, err = ctrl.IsApproved(kv, U8(1), carol)
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
				err = ctrl.Transfer(kv, carol, alice, U8(1))
				So(ErrNotTokenOwner.Is(err), ShouldBeTrue)
			})

			Convey("A revoked approval cannot be used", func() {
				So(ctrl.Approve(kv, alice, carol, U8(1), true), ShouldBeNil)
				So(ctrl.Approve(kv, alice, carol, U8(1), false), ShouldBeNil)
				err := ctrl.Transfer(kv, carol, bob, U8(1))
				So(ErrNotTokenOwner.Is(err), ShouldBeTrue)
			})

			Convey("Only the owner can approve", func() {
				err := ctrl.Approve(kv, bob, carol, U8(1), true)
				So(ErrNotTokenOwner.Is(err), ShouldBeTrue)
				err = ctrl.Approve(kv, alice, alice, U8(1), true)
				So(ErrSelfApproval.Is(err), ShouldBeTrue)
			})
		})

		Convey("When a token does not exist", func() {
			err := ctrl.Transfer(kv, alice, bob, U8(9))
			So(ErrTokenNotFound.Is(err), ShouldBeTrue)
			err = ctrl.Approve(kv, alice, bob, U8(9), true)
			So(ErrTokenNotFound.Is(err), ShouldBeTrue)
			owner, err := ctrl.OwnerOf(kv, U8(9))
			So(err, ShouldBeNil)
			So(owner, ShouldBeNil)
		})
	})
}

func TestMintValidation(t *testing.T) {
	kv := store.MemStore()
	ctrl := NewController(NewBucket())

	err := ctrl.Mint(kv, weavetest.SequenceAddress(1), BytesID(nil))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	err = ctrl.Mint(kv, bazaar.Address("short"), U8(1))
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	n, err := ctrl.TotalSupply(kv)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestTokensOf(t *testing.T) {
	kv := store.MemStore()
	ctrl := NewController(NewBucket())
	alice := weavetest.SequenceAddress(1)
	bob := weavetest.SequenceAddress(2)

	for _, id := range []TokenID{BytesID([]byte("z")), U8(9), U8(2), U32(1)} {
		require.NoError(t, ctrl.Mint(kv, alice, id))
	}
	require.NoError(t, ctrl.Mint(kv, bob, U8(5)))
	require.NoError(t, ctrl.Transfer(kv, alice, bob, U8(9)))

	got, err := ctrl.TokensOf(kv, alice)
	require.NoError(t, err)
	assert.Equal(t, []TokenID{U8(2), U32(1), BytesID([]byte("z"))}, got)

	got, err = ctrl.TokensOf(kv, bob)
	require.NoError(t, err)
	assert.Equal(t, []TokenID{U8(5), U8(9)}, got)

	got, err = ctrl.TokensOf(kv, weavetest.SequenceAddress(3))
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := ctrl.TotalSupply(kv)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)
}

func TestCollectionAttributes(t *testing.T) {
	kv := store.MemStore()
	ctrl := NewController(NewBucket())

	v, err := ctrl.Attribute(kv, AttrName)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, ctrl.SetAttribute(kv, AttrSymbol, "MPSP"))
	require.NoError(t, ctrl.SetAttribute(kv, AttrName, "MyPSP34"))
	require.NoError(t, ctrl.SetAttribute(kv, "url", "https://example.com"))
	require.NoError(t, ctrl.SetAttribute(kv, AttrName, "Renamed"))

	v, err = ctrl.Attribute(kv, AttrName)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", v)
	v, err = ctrl.Attribute(kv, AttrSymbol)
	require.NoError(t, err)
	assert.Equal(t, "MPSP", v)

	err = ctrl.SetAttribute(kv, "", "value")
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)
}
