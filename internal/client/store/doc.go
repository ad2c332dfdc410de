// Package store owns the four HR collections (accounts, departments,
// employees, requests), validates every write against their invariants and
// persists the whole state as one JSON blob in a kv.Repository.
//
// A Store is not safe for concurrent use; the host drives it from a single
// goroutine. Every mutation validates, writes the new state, and only then
// replaces the in-memory copy and notifies subscribers, so a failed write
// leaves the previous state intact.
package store
