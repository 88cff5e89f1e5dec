// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state holds the application state shared by the interactive
// front ends as a plain value. Every user action is a method returning the
// next State; side effects (regeneration, clipboard, persistence) only happen
// where the caller explicitly asks for them.
package state

import (
	"context"
	"errors"

	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/generator"
	"github.com/toeirei/passkeep/internal/model"
	"github.com/toeirei/passkeep/internal/vault"
)

// NoticeKind classifies a Notice for display.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeError
)

// Notice is a short status message. ID is an i18n message id.
type Notice struct {
	Kind NoticeKind
	ID   string
}

// State is the complete interactive state minus the saved collection, which
// the vault owns.
type State struct {
	Options  generator.Options
	Bounds   generator.Bounds
	Password string
	Label    string
	Value    string
	// CopyFillsValue makes CopyPassword also place the password in Value.
	CopyFillsValue bool
	Notice         Notice
}

// New returns a State with opts clamped to bounds and no password yet.
// Call Regenerate to produce the first one.
func New(opts generator.Options, bounds generator.Bounds, copyFillsValue bool) State {
	opts.Length = bounds.Clamp(opts.Length)
	return State{Options: opts, Bounds: bounds, CopyFillsValue: copyFillsValue}
}

// SetLength sets the length, clamped to the bounds. The boolean reports
// whether the options changed and a regeneration is due.
func (s State) SetLength(n int) (State, bool) {
	n = s.Bounds.Clamp(n)
	if n == s.Options.Length {
		return s, false
	}
	s.Options.Length = n
	return s, true
}

// IncLength grows the length by one within the bounds.
func (s State) IncLength() (State, bool) { return s.SetLength(s.Options.Length + 1) }

// DecLength shrinks the length by one within the bounds.
func (s State) DecLength() (State, bool) { return s.SetLength(s.Options.Length - 1) }

// ToggleNumbers flips digit inclusion. A regeneration is always due.
func (s State) ToggleNumbers() (State, bool) {
	s.Options.Numbers = !s.Options.Numbers
	return s, true
}

// ToggleSymbols flips symbol inclusion. A regeneration is always due.
func (s State) ToggleSymbols() (State, bool) {
	s.Options.Symbols = !s.Options.Symbols
	return s, true
}

// SetLabel edits the pending label. Never triggers regeneration.
func (s State) SetLabel(label string) State {
	s.Label = label
	return s
}

// SetValue edits the pending value. Never triggers regeneration.
func (s State) SetValue(value string) State {
	s.Value = value
	return s
}

// Regenerate draws a new password with the current options.
func (s State) Regenerate(g *generator.Generator) State {
	s.Password = s.Options.Generate(g)
	return s
}

// RegenerateIf regenerates only when changed is true, which is what the
// option setters report.
func (s State) RegenerateIf(g *generator.Generator, changed bool) State {
	if !changed {
		return s
	}
	return s.Regenerate(g)
}

// CopyPassword writes the password to sink and, if configured, fills Value.
func (s State) CopyPassword(sink clipboard.Sink) State {
	if s.Password == "" {
		return s
	}
	if clipboard.Copy(sink, s.Password) {
		s.Notice = Notice{Kind: NoticeInfo, ID: "notice.copied_password"}
	} else {
		s.Notice = Notice{Kind: NoticeError, ID: "notice.copy_failed"}
	}
	if s.CopyFillsValue {
		s.Value = s.Password
	}
	return s
}

// SaveEntry appends (Label, Value) to v. On success both fields are cleared.
// A rejected append keeps the fields so the user can complete them. The
// vault is mutated in place; it is the only writer.
func (s State) SaveEntry(ctx context.Context, v *vault.Vault) (State, model.Entry, error) {
	e, err := v.Append(ctx, s.Label, s.Value)
	switch {
	case errors.Is(err, vault.ErrEmptyLabel), errors.Is(err, vault.ErrEmptyValue):
		s.Notice = Notice{Kind: NoticeError, ID: "notice.save_rejected"}
		return s, model.Entry{}, err
	case errors.Is(err, vault.ErrPersist):
		s.Notice = Notice{Kind: NoticeError, ID: "notice.save_not_persisted"}
	case err != nil:
		s.Notice = Notice{Kind: NoticeError, ID: "notice.save_failed"}
		return s, model.Entry{}, err
	default:
		s.Notice = Notice{Kind: NoticeInfo, ID: "notice.saved"}
	}
	s.Label, s.Value = "", ""
	return s, e, err
}

// CopyEntry writes the label or value of e to sink.
func (s State) CopyEntry(sink clipboard.Sink, e model.Entry, label bool) State {
	text, id := e.Value, "notice.copied_value"
	if label {
		text, id = e.Label, "notice.copied_label"
	}
	if clipboard.Copy(sink, text) {
		s.Notice = Notice{Kind: NoticeInfo, ID: id}
	} else {
		s.Notice = Notice{Kind: NoticeError, ID: "notice.copy_failed"}
	}
	return s
}

// ClearNotice drops the current notice.
func (s State) ClearNotice() State {
	s.Notice = Notice{}
	return s
}
