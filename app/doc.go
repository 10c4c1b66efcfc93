/*
Package app exposes the ledger as a single serialized entry point.

Every public operation of Ledger takes an exclusive lock for its whole
duration. Mutations run in a cache wrap of the underlying store that is
written only when the operation succeeds. A failed operation, including one
that panicked, leaves no trace in the store.

A Ledger can be kept in memory or opened from a directory. A persistent
ledger commits a new version of its state after every successful mutation.
*/
package app
