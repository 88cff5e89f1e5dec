// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/toeirei/passkeep/internal/model"
)

// Encode returns the JSON array representation of c. A nil collection
// encodes as [].
func Encode(c model.Collection) ([]byte, error) {
	if c == nil {
		c = model.Collection{}
	}
	return json.Marshal(c)
}

// Decode parses a JSON array of entries. Anything that is not an array of
// objects is an error; a JSON null decodes to an empty collection.
func Decode(data []byte) (model.Collection, error) {
	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode saved entries: %w", err)
	}
	if c == nil {
		c = model.Collection{}
	}
	return c, nil
}

// ErrMalformed marks a decoded collection that breaks the entry rules.
var ErrMalformed = errors.New("malformed saved entries")

// Check reports whether every entry has a label and a value and every id
// is unique.
func Check(c model.Collection) error {
	seen := make(map[int64]struct{}, len(c))
	for i, e := range c {
		if !e.Valid() {
			return fmt.Errorf("%w: entry %d has an empty label or value", ErrMalformed, i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrMalformed, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
