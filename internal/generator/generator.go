// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package generator builds random strings from a small, fixed set of
// character classes. Lowercase letters are always part of the alphabet;
// digits and symbols are opt-in.
//
// The random source is math/rand/v2. No cryptographic strength is claimed.
package generator // import "github.com/toeirei/passkeep/internal/generator"

import (
	"math/rand/v2"
	"strings"
)

// Character classes that make up an alphabet.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+"
)

// Alphabet returns the characters eligible for selection given the enabled
// character classes, in the order lowercase, digits, symbols.
func Alphabet(includeNumbers, includeSymbols bool) string {
	alphabet := Lowercase
	if includeNumbers {
		alphabet += Digits
	}
	if includeSymbols {
		alphabet += Symbols
	}
	return alphabet
}

// Generator draws characters from an alphabet using its own random source.
// A Generator is not safe for concurrent use unless its source is.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator reading from src. A nil src uses the global
// math/rand/v2 source.
func New(src rand.Source) *Generator {
	if src == nil {
		return &Generator{}
	}
	return &Generator{rnd: rand.New(src)}
}

// Generate returns a string of exactly length characters, each drawn
// uniformly with replacement from Alphabet(includeNumbers, includeSymbols).
// Bounds on length are the caller's concern; length <= 0 yields "".
func (g *Generator) Generate(length int, includeNumbers, includeSymbols bool) string {
	if length <= 0 {
		return ""
	}
	alphabet := Alphabet(includeNumbers, includeSymbols)

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteByte(alphabet[g.intN(len(alphabet))])
	}
	return sb.String()
}

func (g *Generator) intN(n int) int {
	if g == nil || g.rnd == nil {
		//nolint:gosec // not used for anything security sensitive
		return rand.IntN(n)
	}
	return g.rnd.IntN(n)
}

var defaultGenerator = New(nil)

// Generate draws from the global random source. See (*Generator).Generate.
func Generate(length int, includeNumbers, includeSymbols bool) string {
	return defaultGenerator.Generate(length, includeNumbers, includeSymbols)
}
