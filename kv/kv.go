/*
Package kv defines the durable key-value substrate the ledger engine
persists into.

PURPOSE:
  The demo banking client keeps all ledger state in the browser's
  localStorage: a synchronous, string-keyed, per-profile persistent map
  with no transactions and no schema. This package lifts that contract
  into a Go interface, so the engine can be wired to an in-memory
  map in tests and a SQLite file in the server.

CONTRACT:
  Get(key):  returns (value, true, nil) when the key is present,
             ("", false, nil) when absent, and ("", false, err) only
             when the store itself is unavailable.
  Set(key):  overwrites unconditionally. No Delete exists - the ledger
             never removes keys, it only rewrites them.

  The store offers NO transactions, NO locking across callers, and NO
  ownership tracking. Multi-step consistency is the caller's problem
  (see ledger.Engine, which serializes its own read-modify-write
  sequences but cannot protect against a second process sharing the
  same store - the same limitation two browser tabs have).

IMPLEMENTATIONS:
  - kv.Memory:        In-memory map (tests, dev)
  - store/sqlite:     SQLite-backed file store (production substrate)

SEE ALSO:
  - ledger/engine.go: The only writer of ledger keys
*/
package kv

// =============================================================================
// STORE - Synchronous string-keyed persistence
// =============================================================================

// Store is a synchronous, durable, string-keyed map.
//
// An error from either method means the store itself is unavailable; it is
// NOT returned for missing keys (Get reports those via the bool) and never
// for unparsable values (parsing is a caller concern).
type Store interface {
	// Get returns the value for key, and whether the key was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	// This is the only write operation.
	Set(key, value string) error
}
