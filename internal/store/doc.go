// Package store provides the string-keyed key-value backing store that job
// records are persisted into.
//
// # Overview
//
// Store is the only contract the job repository depends on: Get and Set by
// string key. Two implementations are provided:
//
//   - SQLiteStore: durable storage in a single "kv" table, backed by a
//     dbx.DBTX (either *sql.DB or *sql.Tx). The schema is created by the
//     embedded goose migrations in store/migrations (see Open).
//   - MemoryStore: a map-backed store for tests and throwaway sessions. It
//     can be told to fail reads or writes for chosen keys.
//
// # Errors
//
// Get reports an absent key with ErrNotFound. Any driver or I/O failure is
// wrapped with ErrPersistence. Callers should match both with errors.Is.
//
// Typical Usage
//
//	db, _ := store.Open(ctx, "jobs.db")
//	kv := store.NewSQLiteStore(db)
//	_ = kv.Set(ctx, "1", token)
//	token, err := kv.Get(ctx, "1")
package store
