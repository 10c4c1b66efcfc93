package cash

import "github.com/iov-one/bazaar/errors"

// Cash extension reserves 300~309 error codes

// ErrInsufficientFunds is returned when a balance does not cover the
// requested amount.
var ErrInsufficientFunds = errors.Register(300, "insufficient funds")
