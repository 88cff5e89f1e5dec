// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains the persistence layer for Passkeep.
//
// Everything Passkeep stores lives in named slots: a slot is a key holding one
// opaque serialized document that is read in full and overwritten in full.
// The Store interface hides where slots live.
//
// Backends
//   - "file": one <key>.json file per slot inside a directory, written
//     atomically (temp file + rename). This is the default.
//   - "sqlite", "postgres", "mysql": a kv_slots table accessed through Bun.
//     The schema is applied from embedded migrations on open.
//   - "memory": a process-local map. Nothing survives a restart.
//
// Testing notes
//   - Prefer New("memory", "") for unit tests that do not care about SQL.
//   - For SQL semantics use an in-memory SQLite DSN such as
//     "file:name?mode=memory&cache=shared".
package db
