// Package store provides SQLite-backed history for compiled diagrams.
//
// Each successful compilation may be recorded as one row in the
// compilations table: a uuid-v7 row id, a domain-separated content
// hash of the source expression plus its signature table (so recording
// the same compilation twice is a silent no-op), structural summary
// columns and the rendered DOT text.
//
// Database configuration mirrors the usual SQLite service setup:
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
package store
