/*
Package market implements a marketplace of registry tokens paid with cash
balances.

The owner of a token lists it with a price. Listing grants the distinguished
principal the right to transfer the token and appends the token to the sell
sequence, an append only record of all listings in their order.

Buy pays the listed price to the seller but does not move the token. The
ownership is moved by a separate transfer, usually executed by the principal
using the authority granted on listing. BuyAtomic is an extension that does
both at once and removes the price record.
*/
package market
