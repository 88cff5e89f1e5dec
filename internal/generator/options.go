// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package generator

import "fmt"

// Default length settings used when nothing is configured.
const (
	DefaultLength    = 8
	DefaultMinLength = 4
	DefaultMaxLength = 50
)

// Options is the set of user-selected generation constraints.
type Options struct {
	Length  int  `json:"length" yaml:"length" mapstructure:"length"`
	Numbers bool `json:"numbers" yaml:"numbers" mapstructure:"numbers"`
	Symbols bool `json:"symbols" yaml:"symbols" mapstructure:"symbols"`
}

// DefaultOptions returns lowercase-only options at DefaultLength.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// Generate runs g with the receiver's constraints. A nil g uses the global source.
func (o Options) Generate(g *Generator) string {
	if g == nil {
		g = defaultGenerator
	}
	return g.Generate(o.Length, o.Numbers, o.Symbols)
}

// Alphabet returns the alphabet implied by the receiver's flags.
func (o Options) Alphabet() string {
	return Alphabet(o.Numbers, o.Symbols)
}

// Bounds is the inclusive length range the user interface offers.
// The generator itself never enforces it.
type Bounds struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DefaultBounds returns the 4..50 range.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinLength, Max: DefaultMaxLength}
}

// Contains reports whether n lies within the bounds.
func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// Clamp returns n limited to the bounds.
func (b Bounds) Clamp(n int) int {
	if n < b.Min {
		return b.Min
	}
	if n > b.Max {
		return b.Max
	}
	return n
}

// Check returns an error describing why n is out of range, or nil.
func (b Bounds) Check(n int) error {
	if b.Contains(n) {
		return nil
	}
	return fmt.Errorf("length %d out of range [%d, %d]", n, b.Min, b.Max)
}
