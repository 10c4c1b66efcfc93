/*
Package ownable keeps track of the distinguished principal: the single
account with elevated rights over the ledger. The principal is set once and
cannot be changed afterwards.
*/
package ownable
