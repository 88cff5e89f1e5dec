// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package vault implements the saved-entry store: an append-only, ordered
// collection of labelled values held in memory and mirrored in full to a
// single db slot after every change.
package vault // import "github.com/toeirei/passkeep/internal/vault"

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/toeirei/passkeep/internal/db"
	"github.com/toeirei/passkeep/internal/logging"
	"github.com/toeirei/passkeep/internal/model"
)

// SlotKey is the db slot the collection is stored under.
const SlotKey = "savedPasswords"

var (
	// ErrEmptyLabel rejects an append without a label. The collection is unchanged.
	ErrEmptyLabel = errors.New("label must not be empty")
	// ErrEmptyValue rejects an append without a value. The collection is unchanged.
	ErrEmptyValue = errors.New("value must not be empty")
	// ErrPersist wraps a failed write of the collection. The in-memory
	// collection already contains the change.
	ErrPersist = errors.New("could not persist saved entries")
	// ErrNoSuchEntry is returned by lookups that miss.
	ErrNoSuchEntry = errors.New("no such entry")
	// ErrIDsExhausted is returned once the id counter reached math.MaxInt64.
	ErrIDsExhausted = errors.New("no ids left")
)

// Vault owns the in-memory collection and the id counter.
// It assumes a single writer.
type Vault struct {
	slot    db.Store
	entries model.Collection
	lastID  int64
}

// Load hydrates a Vault from slot. A missing slot, a read error and a
// malformed document all yield an empty collection; Load never fails.
// A document that decodes but fails Check counts as malformed.
func Load(ctx context.Context, slot db.Store) *Vault {
	v := &Vault{slot: slot, entries: model.Collection{}}
	if slot == nil {
		return v
	}

	data, err := slot.Get(ctx, SlotKey)
	switch {
	case errors.Is(err, db.ErrNotFound):
		logging.Debugf("vault: no saved entries yet")
		return v
	case err != nil:
		logging.Warnf("vault: could not read saved entries, starting empty: %v", err)
		return v
	}

	entries, err := Decode(data)
	if err == nil {
		err = Check(entries)
	}
	if err != nil {
		logging.Warnf("vault: stored entries are malformed, starting empty: %v", err)
		return v
	}
	v.entries = entries
	v.lastID = entries.MaxID()
	logging.Debugf("vault: loaded %d saved entries", len(entries))
	return v
}

// Append adds a new entry with a fresh id and persists the whole collection.
// Empty label or value is rejected with ErrEmptyLabel / ErrEmptyValue and
// leaves the collection untouched. If persisting fails the entry is kept in
// memory and the returned error wraps ErrPersist.
func (v *Vault) Append(ctx context.Context, label, value string) (model.Entry, error) {
	if label == "" {
		return model.Entry{}, ErrEmptyLabel
	}
	if value == "" {
		return model.Entry{}, ErrEmptyValue
	}

	id, err := v.nextID()
	if err != nil {
		return model.Entry{}, err
	}
	e := model.Entry{ID: id, Label: label, Value: value}
	v.entries = append(v.entries, e)

	if err := v.Persist(ctx); err != nil {
		return e, err
	}
	return e, nil
}

// Import appends every valid entry of foreign, in order, each with a fresh
// id, and persists once. Invalid entries are skipped. It returns the number
// of entries added.
func (v *Vault) Import(ctx context.Context, foreign model.Collection) (int, error) {
	added := 0
	for _, f := range foreign {
		if !f.Valid() {
			logging.Debugf("vault: skipping invalid imported entry %d", f.ID)
			continue
		}
		id, err := v.nextID()
		if err != nil {
			if added == 0 {
				return 0, err
			}
			if perr := v.Persist(ctx); perr != nil {
				return added, perr
			}
			return added, err
		}
		v.entries = append(v.entries, model.Entry{ID: id, Label: f.Label, Value: f.Value})
		added++
	}
	if added == 0 {
		return 0, nil
	}
	return added, v.Persist(ctx)
}

// Persist serializes the full collection and overwrites the slot.
func (v *Vault) Persist(ctx context.Context) error {
	if v.slot == nil {
		return fmt.Errorf("%w: no store configured", ErrPersist)
	}
	data, err := Encode(v.entries)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := v.slot.Set(ctx, SlotKey, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// nextID returns an id strictly greater than every id seen so far.
func (v *Vault) nextID() (int64, error) {
	if v.lastID == math.MaxInt64 {
		return 0, ErrIDsExhausted
	}
	v.lastID++
	return v.lastID, nil
}

// Entries returns a copy of the collection in insertion order.
func (v *Vault) Entries() model.Collection {
	return v.entries.Clone()
}

// Len returns the number of saved entries.
func (v *Vault) Len() int {
	return len(v.entries)
}

// Get returns the entry at the zero-based position index.
func (v *Vault) Get(index int) (model.Entry, error) {
	if index < 0 || index >= len(v.entries) {
		return model.Entry{}, fmt.Errorf("%w: index %d (have %d)", ErrNoSuchEntry, index, len(v.entries))
	}
	return v.entries[index], nil
}

// FindByID returns the entry with the given id.
func (v *Vault) FindByID(id int64) (model.Entry, error) {
	for _, e := range v.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Entry{}, fmt.Errorf("%w: id %d", ErrNoSuchEntry, id)
}
