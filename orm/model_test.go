package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar/errors"
)

// Counter is a minimal model used by the orm tests.
type Counter struct {
	Count int64  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	Owner []byte `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *Counter) Reset()         { *m = Counter{} }
func (m *Counter) String() string { return proto.CompactTextString(m) }
func (*Counter) ProtoMessage()    {}

func (m *Counter) Validate() error {
	if m.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative counter")
	}
	return nil
}

func newCounterObj(key string, count int64, owner string) *SimpleObj {
	var o []byte
	if owner != "" {
		o = []byte(owner)
	}
	return NewSimpleObj([]byte(key), &Counter{Count: count, Owner: o})
}

func counterOwner(obj Object) ([]byte, error) {
	c, ok := obj.Value().(*Counter)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return c.Owner, nil
}
