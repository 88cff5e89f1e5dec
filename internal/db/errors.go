// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Store.Get when nothing has been stored under a key.
var ErrNotFound = errors.New("slot not found")

// ErrUnsupportedType is returned by New for an unknown store type.
var ErrUnsupportedType = errors.New("unsupported store type")

// ErrInvalidKey is returned for slot keys that cannot be stored safely.
var ErrInvalidKey = errors.New("invalid slot key")

func unsupported(storeType string) error {
	return fmt.Errorf("%w: '%s' (supported: %s)", ErrUnsupportedType, storeType, strings.Join(Types, ", "))
}

// validateKey rejects empty keys and keys that would escape a directory.
func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
