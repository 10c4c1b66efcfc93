package market

import "github.com/iov-one/bazaar/errors"

// Market extension reserves 600~609 error codes
var (
	ErrNotListed      = errors.Register(600, "token not listed")
	ErrSellerMismatch = errors.Register(601, "seller mismatch")
)
