/*
Package bazaar defines the interfaces shared by all ledger modules, such as
storage, persistence, addresses and genesis initialization. It also contains
helpers to work with loggers carried in a context.

The ledger itself is assembled in the app package from the extensions found
in the x directory:

  x/cash     fungible balances per account
  x/nft      token registry, token ownership and approvals
  x/ownable  the distinguished principal of the ledger
  x/market   listings, the sell sequence and purchases

Every operation receives the identity of its caller as an explicit Address.
There is no ambient "current caller" state anywhere in the code.
*/
package bazaar
