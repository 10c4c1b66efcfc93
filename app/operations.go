package app

import (
	"encoding/hex"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/x/nft"
	"github.com/iov-one/bazaar/x/ownable"
)

// FirstToken is the token minted to the principal by Initialize.
var FirstToken = nft.U8(1)

// New returns an initialized ledger kept in memory, with caller as the
// principal.
func New(caller bazaar.Address, opts ...Option) (*Ledger, error) {
	l := NewLedger(store.MemStore(), opts...)
	if err := l.Initialize(caller); err != nil {
		return nil, err
	}
	return l, nil
}

// Initialize sets caller as the principal, credits it with the initial
// balance, mints the first token to it and sets the collection name and
// symbol. A ledger can be initialized only once.
func (l *Ledger) Initialize(caller bazaar.Address) error {
	return l.exec("initialize", caller, func(db bazaar.KVStore) error {
		if err := ownable.Init(db, caller); err != nil {
			return err
		}
		if err := l.balances.IssueCoins(db, caller, l.conf.initialBalance); err != nil {
			return err
		}
		if err := l.tokens.Mint(db, caller, FirstToken); err != nil {
			return err
		}
		if err := l.tokens.SetAttribute(db, nft.AttrName, l.conf.name); err != nil {
			return err
		}
		return l.tokens.SetAttribute(db, nft.AttrSymbol, l.conf.symbol)
	})
}

// TransferBalance moves amount from the caller to the recipient.
func (l *Ledger) TransferBalance(caller, to bazaar.Address, amount uint64) error {
	return l.exec("transfer_balance", caller, func(db bazaar.KVStore) error {
		return l.balances.MoveCoins(db, caller, to, amount)
	}, "to", to, "amount", amount)
}

// BalanceOf returns the balance of the account. An unknown account holds
// zero.
func (l *Ledger) BalanceOf(account bazaar.Address) (uint64, error) {
	var amount uint64
	err := l.query("balance_of", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		amount, err = l.balances.Balance(db, account)
		return err
	})
	return amount, err
}

// Mint creates a token owned by the caller.
func (l *Ledger) Mint(caller bazaar.Address, id nft.TokenID) error {
	return l.exec("mint", caller, func(db bazaar.KVStore) error {
		return l.tokens.Mint(db, caller, id)
	}, "token", id)
}

// BurnAsHolder burns a token owned by the caller.
func (l *Ledger) BurnAsHolder(caller bazaar.Address, id nft.TokenID) error {
	return l.exec("burn_as_holder", caller, func(db bazaar.KVStore) error {
		return l.tokens.Burn(db, caller, id)
	}, "token", id)
}

// BurnAsOwner burns any existing token, whoever holds it. Only the principal
// can call it. The account is recorded in the log and is not checked against
// the holder.
func (l *Ledger) BurnAsOwner(caller, account bazaar.Address, id nft.TokenID) error {
	return l.exec("burn_as_owner", caller, func(db bazaar.KVStore) error {
		if err := ownable.RequirePrincipal(db, caller); err != nil {
			return err
		}
		return l.tokens.Destroy(db, id)
	}, "account", account, "token", id)
}

// ListForSale offers a token of the caller for given price.
func (l *Ledger) ListForSale(caller bazaar.Address, id nft.TokenID, price uint64) error {
	return l.exec("list_for_sale", caller, func(db bazaar.KVStore) error {
		return l.market.List(db, caller, id, price)
	}, "token", id, "price", price)
}

// SellList returns all tokens ever listed, in listing order.
func (l *Ledger) SellList() ([]nft.TokenID, error) {
	var ids []nft.TokenID
	err := l.query("sell_list", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		ids, err = l.market.SellList(db)
		return err
	})
	return ids, err
}

// Buy pays the listed price of the token to the expected seller. The token
// is not transferred.
func (l *Ledger) Buy(caller bazaar.Address, id nft.TokenID, expectedSeller bazaar.Address) error {
	return l.exec("buy", caller, func(db bazaar.KVStore) error {
		return l.market.Buy(db, caller, id, expectedSeller)
	}, "token", id, "seller", expectedSeller)
}

// BuyAtomic pays the listed price of the token to the expected seller and
// transfers the token to the caller in a single operation.
func (l *Ledger) BuyAtomic(caller bazaar.Address, id nft.TokenID, expectedSeller bazaar.Address) error {
	return l.exec("buy_atomic", caller, func(db bazaar.KVStore) error {
		return l.market.BuyAtomic(db, caller, id, expectedSeller)
	}, "token", id, "seller", expectedSeller)
}

// TransferToken moves a token to a new owner. The caller must own the token
// or hold a transfer approval. The payload is only logged. A payload longer
// than market.MaxPayloadLength fails with errors.ErrInput.
func (l *Ledger) TransferToken(caller, to bazaar.Address, id nft.TokenID, payload []byte) error {
	return l.exec("transfer_token", caller, func(db bazaar.KVStore) error {
		return l.market.Transfer(db, caller, to, id, payload)
	}, "to", to, "token", id, "payload", hex.EncodeToString(payload))
}

// Approve grants or revokes the operator the right to transfer a token of
// the caller.
func (l *Ledger) Approve(caller, operator bazaar.Address, id nft.TokenID, approved bool) error {
	return l.exec("approve", caller, func(db bazaar.KVStore) error {
		return l.tokens.Approve(db, caller, operator, id, approved)
	}, "operator", operator, "token", id, "approved", approved)
}

// OwnerOf returns the owner of the token or nil if it does not exist.
func (l *Ledger) OwnerOf(id nft.TokenID) (bazaar.Address, error) {
	var owner bazaar.Address
	err := l.query("owner_of", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		owner, err = l.tokens.OwnerOf(db, id)
		return err
	})
	return owner, err
}

// TokensOf returns the tokens held by the account, ordered by id.
func (l *Ledger) TokensOf(account bazaar.Address) ([]nft.TokenID, error) {
	var ids []nft.TokenID
	err := l.query("tokens_of", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		ids, err = l.tokens.TokensOf(db, account)
		return err
	})
	return ids, err
}

// TotalSupply returns the number of existing tokens.
func (l *Ledger) TotalSupply() (uint64, error) {
	var n uint64
	err := l.query("total_supply", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		n, err = l.tokens.TotalSupply(db)
		return err
	})
	return n, err
}

// Principal returns the distinguished principal.
func (l *Ledger) Principal() (bazaar.Address, error) {
	var p bazaar.Address
	err := l.query("principal", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		p, err = ownable.Principal(db)
		return err
	})
	return p, err
}

// Attribute returns a collection attribute, for example nft.AttrName.
func (l *Ledger) Attribute(key string) (string, error) {
	var v string
	err := l.query("attribute", func(db bazaar.ReadOnlyKVStore) error {
		var err error
		v, err = l.tokens.Attribute(db, key)
		return err
	})
	return v, err
}
