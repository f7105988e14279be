// Package kv provides the key-value persistence collaborator behind
// the durable log: a SQLite-backed store for real use and an in-memory
// store for tests and storage-less configurations.
package kv
