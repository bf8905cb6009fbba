// Package store caches generated floor plans in SQLite, keyed by a
// fingerprint of the constraints document and the run seed. Because
// generation is deterministic, a cache hit is exactly the plan a fresh
// run would produce.
package store
