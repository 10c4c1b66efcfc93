package nft

// Action is the name of an operation that an approval grants on a token.
type Action string

const (
	// Transfer allows the approved account to move the token.
	Transfer Action = "ActionTransfer"
)

// Valid reports whether the action is supported by the registry.
func (a Action) Valid() bool {
	return a == Transfer
}
