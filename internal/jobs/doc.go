// Package jobs owns the encrypted local job store.
//
// A Repository seals every job record with a key from a cryptox.KeySource,
// persists it into a store.Store under the job's decimal id, and serves all
// reads from an in-memory cache filled when the store is loaded.
//
// # Lifecycle
//
//	Uninitialized -> Seeding -> Loaded -> Ready
//
// Initialize drives the whole sequence. Seeding happens once per backing store
// (guarded by the persisted "areJobsAdded" flag); loading happens once per
// process (guarded by the cache being non-empty). The two guards are kept
// apart on purpose: a fresh process on an already seeded store must still load.
//
// # Failures
//
// Operations report success as a bool. The reason for a failure is logged and
// never returned, so callers can only show a generic alert and retry.
//
// # Concurrency
//
// A Repository is not safe for concurrent use. It expects one caller driving
// Initialize and ToggleOpenState at a time.
package jobs
