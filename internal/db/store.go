// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "context"

// Supported store types.
const (
	TypeFile     = "file"
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeMySQL    = "mysql"
	TypeMemory   = "memory"
)

// Types lists every value accepted by New, in the order shown to users.
var Types = []string{TypeFile, TypeSQLite, TypePostgres, TypeMySQL, TypeMemory}

// Store defines the slot operations every backend implements.
// Implementations assume a single writer.
type Store interface {
	// Get returns the document stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the document stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases any resources held by the store.
	Close() error
}
