// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// kvSlot is the Bun model for the kv_slots table.
type kvSlot struct {
	bun.BaseModel `bun:"table:kv_slots"`

	Slot      string    `bun:"slot,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// BunStore keeps slots in a SQL table through Bun. It serves the sqlite,
// postgres and mysql store types.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// Get returns the document stored under key.
func (s *BunStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var row kvSlot
	err := s.bun.NewSelect().Model(&row).Where("slot = ?", key).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read slot %q: %w", key, err)
	}
	return []byte(row.Value), nil
}

// Set inserts or replaces the document stored under key.
func (s *BunStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	row := &kvSlot{Slot: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	q := s.bun.NewInsert().Model(row)
	if s.dbType == TypeMySQL {
		q = q.On("DUPLICATE KEY UPDATE").
			Set("value = VALUES(value)").
			Set("updated_at = VALUES(updated_at)")
	} else {
		q = q.On("CONFLICT (slot) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at")
	}
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	dbLogf("db: wrote slot %s (%d bytes)", key, len(value))
	return nil
}

// Close closes the underlying database.
func (s *BunStore) Close() error {
	return s.bun.Close()
}

// Type returns the store type the BunStore was opened with.
func (s *BunStore) Type() string {
	return s.dbType
}
