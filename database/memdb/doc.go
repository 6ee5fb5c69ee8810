/*
Package memdb registers a storage driver that keeps the digest ledger in
memory.

This is primarily used for testing purposes, as a ledger is only useful
when it outlives the process.
*/
package memdb
