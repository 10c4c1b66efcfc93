/*
Package nft implements a registry of non fungible tokens.

Every token is identified by a TokenID and is owned by exactly one account
for as long as it exists. The owner may transfer the token, burn it or
approve another account to transfer it on their behalf. Approvals are
granted per token and per action and do not survive a change of ownership.

The registry also keeps collection wide attributes, such as the collection
name and symbol.
*/
package nft
