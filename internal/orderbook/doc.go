// Package orderbook holds the in-memory registry of work orders for a single
// session. Orders get sequential ids starting at 1, can be marked finished
// exactly once (repeat marks are no-ops), and are never edited or removed.
// The registry answers listing queries by completion state and aggregates
// per-worker totals. It performs no I/O; lookups that miss return a
// *NotFoundError wrapping ErrNotFound and callers decide how to report it.
package orderbook
