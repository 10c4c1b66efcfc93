package ownable

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Configuration is the persisted state of the extension.
type Configuration struct {
	Principal []byte `protobuf:"bytes,1,opt,name=principal,proto3" json:"principal,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// Validate ensures the principal is a valid address.
func (m *Configuration) Validate() error {
	return errors.Field("Principal", bazaar.Address(m.Principal).Validate(), "invalid principal")
}
