package nft

import "github.com/iov-one/bazaar/errors"

// NFT extension reserves 500~509 error codes
var (
	ErrTokenExists   = errors.Register(500, "token already exists")
	ErrTokenNotFound = errors.Register(501, "token not found")
	ErrNotTokenOwner = errors.Register(502, "not token owner")
	ErrSelfApproval  = errors.Register(503, "self approval")
)
