// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard is the write-only sink generated and saved values are
// copied to. Copying is best effort: a missing clipboard never fails a
// user action.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/toeirei/passkeep/internal/logging"
)

// Sink accepts text to place on a clipboard.
type Sink interface {
	WriteAll(text string) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(text string) error

// WriteAll calls f(text).
func (f SinkFunc) WriteAll(text string) error { return f(text) }

type systemSink struct{}

func (systemSink) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System returns the operating system clipboard.
func System() Sink { return systemSink{} }

// Discard silently drops everything written to it.
var Discard Sink = SinkFunc(func(string) error { return nil })

// Available reports whether the system clipboard can be used on this machine.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy writes text to sink and reports whether it succeeded. Failures are
// logged at debug level only.
func Copy(sink Sink, text string) bool {
	if sink == nil {
		return false
	}
	if err := sink.WriteAll(text); err != nil {
		logging.Debugf("clipboard: copy failed: %v", err)
		return false
	}
	return true
}

// Recorder is a Sink that remembers what was written.
type Recorder struct {
	Last   string
	Writes int
	Err    error
}

// WriteAll records text, or returns r.Err if set.
func (r *Recorder) WriteAll(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Last = text
	r.Writes++
	return nil
}
