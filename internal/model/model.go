// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared by the vault, the storage
// layer and the user interfaces.
package model // import "github.com/toeirei/passkeep/internal/model"

import (
	"fmt"
	"strings"
)

// Entry is a single saved {id, label, value} record.
// The JSON names match the format the collection has always been stored in.
type Entry struct {
	ID    int64  `json:"id"`
	Label string `json:"name"`
	Value string `json:"password"`
}

// Valid reports whether both label and value are non-empty.
func (e Entry) Valid() bool {
	return e.Label != "" && e.Value != ""
}

// Masked returns the value with every character replaced by '*'.
func (e Entry) Masked() string {
	return strings.Repeat("*", len([]rune(e.Value)))
}

// String returns "label (#id)". The value is never included.
func (e Entry) String() string {
	return fmt.Sprintf("%s (#%d)", e.Label, e.ID)
}

// Collection is an ordered sequence of entries in insertion order.
// Only ID is guaranteed unique.
type Collection []Entry

// MaxID returns the largest id in the collection, or 0 when empty.
func (c Collection) MaxID() int64 {
	var max int64
	for _, e := range c {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

// Clone returns an independent copy of c. A nil collection clones to an
// empty, non-nil one so it serializes as [].
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
