// Package state caches fetched resource data per view slot.
//
// # Overview
//
// The cache is the single place where completed loads land and where the UI
// reads the data it renders. Results are stored per slot rather than per
// service, where a slot is identified by the pair (service, view type).
//
// # Slot Keying
//
// Keying by (service, view type) instead of service alone is what makes
// asynchronous reloads safe. A load command captures its slot key when it is
// issued; when the result arrives it is written to that slot, whatever view
// the user has navigated to in the meantime:
//
//	key := state.KeyFor(view)   // captured at issue time
//	...                         // fetch runs in the background
//	cache.Replace(key, data)    // lands in the original slot
//
// A list reload that resolves after the user drilled into a detail view
// therefore updates the list slot and leaves the detail slot untouched. The
// stale result can never masquerade as the active view's data.
//
// # Replacement Semantics
//
// Replace is wholesale: each completed load overwrites the slot's entire
// item set. There are no incremental merges and no versioning, so a slot is
// always the result of exactly one fetch.
//
// # Concurrency
//
// The cache uses a readers-writer lock. Item slices are cloned on both write
// and read, so callers can hold a returned Data across later reloads without
// observing mutation.
//
// # Usage
//
//	cache := state.NewCache()
//	cache.Replace(state.KeyFor(view), data)
//	data, ok := cache.Get(state.KeyFor(view))
package state
