// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package state

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/db"
	"github.com/toeirei/passkeep/internal/generator"
	"github.com/toeirei/passkeep/internal/vault"
)

func newState() State {
	return New(generator.Options{Length: 8}, generator.DefaultBounds(), true)
}

func seeded() *generator.Generator {
	return generator.New(rand.NewPCG(9, 9))
}

func TestNew_ClampsLength(t *testing.T) {
	s := New(generator.Options{Length: 500}, generator.DefaultBounds(), false)
	assert.Equal(t, 50, s.Options.Length)
	s = New(generator.Options{Length: 1}, generator.DefaultBounds(), false)
	assert.Equal(t, 4, s.Options.Length)
	assert.Empty(t, s.Password, "no implicit generation")
}

func TestSetLength_ReportsChange(t *testing.T) {
	s := newState()

	next, changed := s.SetLength(8)
	assert.False(t, changed)
	assert.Equal(t, s, next)

	next, changed = s.SetLength(12)
	assert.True(t, changed)
	assert.Equal(t, 12, next.Options.Length)
	assert.Equal(t, 8, s.Options.Length, "receiver must not be modified")

	next, changed = next.SetLength(1000)
	assert.True(t, changed)
	assert.Equal(t, 50, next.Options.Length)

	_, changed = next.IncLength()
	assert.False(t, changed, "already at max")
}

func TestIncDecLength(t *testing.T) {
	s := newState()
	s, _ = s.IncLength()
	assert.Equal(t, 9, s.Options.Length)
	s, _ = s.DecLength()
	s, _ = s.DecLength()
	assert.Equal(t, 7, s.Options.Length)

	s, _ = s.SetLength(4)
	_, changed := s.DecLength()
	assert.False(t, changed)
}

func TestToggles_RequestRegeneration(t *testing.T) {
	g := seeded()
	s := newState().Regenerate(g)
	before := s.Password

	s, changed := s.ToggleNumbers()
	require.True(t, changed)
	s = s.RegenerateIf(g, changed)
	assert.True(t, s.Options.Numbers)
	assert.NotEqual(t, before, s.Password)

	s, changed = s.ToggleSymbols()
	require.True(t, changed)
	assert.True(t, s.Options.Symbols)
}

func TestFieldEdits_DoNotRegenerate(t *testing.T) {
	s := newState().Regenerate(seeded())
	pw := s.Password

	s = s.SetLabel("Gmail").SetValue("typed")
	assert.Equal(t, pw, s.Password)

	s = s.RegenerateIf(seeded(), false)
	assert.Equal(t, pw, s.Password)
}

func TestRegenerate_UsesOptions(t *testing.T) {
	s := newState()
	s, _ = s.SetLength(20)
	s, _ = s.ToggleSymbols()
	s = s.Regenerate(seeded())

	require.Len(t, s.Password, 20)
	alphabet := generator.Alphabet(false, true)
	for _, r := range s.Password {
		assert.True(t, strings.ContainsRune(alphabet, r))
	}
}

func TestCopyPassword_FillsValue(t *testing.T) {
	rec := &clipboard.Recorder{}
	s := newState().Regenerate(seeded())

	s = s.CopyPassword(rec)
	assert.Equal(t, s.Password, rec.Last)
	assert.Equal(t, s.Password, s.Value)
	assert.Equal(t, Notice{Kind: NoticeInfo, ID: "notice.copied_password"}, s.Notice)
}

func TestCopyPassword_WithoutFill(t *testing.T) {
	rec := &clipboard.Recorder{}
	s := New(generator.DefaultOptions(), generator.DefaultBounds(), false).Regenerate(seeded())
	s = s.CopyPassword(rec)
	assert.Empty(t, s.Value)
	assert.Equal(t, 1, rec.Writes)
}

func TestCopyPassword_FailureStillFills(t *testing.T) {
	rec := &clipboard.Recorder{Err: errors.New("no clipboard")}
	s := newState().Regenerate(seeded()).CopyPassword(rec)
	assert.Equal(t, NoticeError, s.Notice.Kind)
	assert.Equal(t, s.Password, s.Value)
}

func TestCopyPassword_EmptyPasswordIsNoop(t *testing.T) {
	rec := &clipboard.Recorder{}
	s := newState().CopyPassword(rec)
	assert.Zero(t, rec.Writes)
	assert.Equal(t, NoticeNone, s.Notice.Kind)
}

func TestSaveEntry(t *testing.T) {
	ctx := context.Background()
	v := vault.Load(ctx, db.NewMemoryStore())
	s := newState().SetLabel("Gmail").SetValue("abc123")

	s, e, err := s.SaveEntry(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, "Gmail", e.Label)
	assert.Empty(t, s.Label)
	assert.Empty(t, s.Value)
	assert.Equal(t, "notice.saved", s.Notice.ID)
	assert.Equal(t, 1, v.Len())
}

func TestSaveEntry_RejectedKeepsFields(t *testing.T) {
	ctx := context.Background()
	v := vault.Load(ctx, db.NewMemoryStore())
	s := newState().SetLabel("Gmail")

	s, _, err := s.SaveEntry(ctx, v)
	assert.ErrorIs(t, err, vault.ErrEmptyValue)
	assert.Equal(t, "Gmail", s.Label)
	assert.Equal(t, "notice.save_rejected", s.Notice.ID)
	assert.Zero(t, v.Len())
}

func TestSaveEntry_NotPersisted(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	v := vault.Load(ctx, store)
	store.FailWrites = errors.New("locked")

	s, e, err := newState().SetLabel("A").SetValue("1").SaveEntry(ctx, v)
	assert.ErrorIs(t, err, vault.ErrPersist)
	assert.Equal(t, "A", e.Label)
	assert.Equal(t, "notice.save_not_persisted", s.Notice.ID)
	assert.Empty(t, s.Label)
	assert.Equal(t, 1, v.Len())
}

func TestCopyEntry(t *testing.T) {
	ctx := context.Background()
	v := vault.Load(ctx, db.NewMemoryStore())
	e, _ := v.Append(ctx, "GitHub", "s3cret")
	rec := &clipboard.Recorder{}

	s := newState().CopyEntry(rec, e, false)
	assert.Equal(t, "s3cret", rec.Last)
	assert.Equal(t, "notice.copied_value", s.Notice.ID)

	s = s.CopyEntry(rec, e, true)
	assert.Equal(t, "GitHub", rec.Last)
	assert.Equal(t, "notice.copied_label", s.Notice.ID)

	assert.Equal(t, Notice{}, s.ClearNotice().Notice)
}
