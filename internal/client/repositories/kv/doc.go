// Package kv is the persistent key-value collaborator. The store keeps its
// whole state under one key; the session keeps its token and the pending
// verification address under two more.
package kv
