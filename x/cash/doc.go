/*
Package cash defines a simple balance ledger of a single fungible unit.

There is no logic in the balances, except that no balance may go
below zero or overflow. Thus, this implementation is referred to as
cash. Simple and safe.
*/
package cash
