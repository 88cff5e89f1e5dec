// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package vault

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/passkeep/internal/db"
	"github.com/toeirei/passkeep/internal/model"
	"github.com/toeirei/passkeep/internal/testutil"
)

func TestLoad_EmptyStore(t *testing.T) {
	v := Load(context.Background(), db.NewMemoryStore())
	assert.Equal(t, 0, v.Len())
	assert.NotNil(t, v.Entries())
}

func TestLoad_CorruptedStore(t *testing.T) {
	ctx := context.Background()
	for _, doc := range []string{
		`not json`, `{"id":1}`, `"text"`, `[{"id":"x"}]`, ``,
		`[{"id":3,"name":"a","password":"b"},{"id":3,"name":"","password":""},{}]`,
		`[{"id":1,"name":"a","password":"b"},{"id":1,"name":"c","password":"d"}]`,
		`[{"id":1,"name":"a","password":""}]`,
	} {
		s := db.NewMemoryStore()
		require.NoError(t, s.Set(ctx, SlotKey, []byte(doc)))

		v := Load(ctx, s)
		assert.Equal(t, 0, v.Len(), "document %q", doc)
	}
}

func TestLoad_NullDocument(t *testing.T) {
	ctx := context.Background()
	s := db.NewMemoryStore()
	require.NoError(t, s.Set(ctx, SlotKey, []byte(`null`)))
	assert.Equal(t, 0, Load(ctx, s).Len())
}

func TestLoad_NilStore(t *testing.T) {
	v := Load(context.Background(), nil)
	assert.Equal(t, 0, v.Len())

	_, err := v.Append(context.Background(), "a", "b")
	assert.ErrorIs(t, err, ErrPersist)
	assert.Equal(t, 1, v.Len())
}

type failingReader struct{ db.MemoryStore }

func (f *failingReader) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("backend unavailable")
}

func TestLoad_ReadErrorFailsSoft(t *testing.T) {
	v := Load(context.Background(), &failingReader{})
	assert.Equal(t, 0, v.Len())
}

func TestAppend_Single(t *testing.T) {
	v := Load(context.Background(), db.NewMemoryStore())

	e, err := v.Append(context.Background(), "Gmail", "abc123")
	require.NoError(t, err)

	got := v.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, "Gmail", got[0].Label)
	assert.Equal(t, "abc123", got[0].Value)
	assert.Equal(t, e, got[0])
	assert.Positive(t, got[0].ID)
}

func TestAppend_RejectsEmpty(t *testing.T) {
	ctx := context.Background()
	s := db.NewMemoryStore()
	v := Load(ctx, s)

	_, err := v.Append(ctx, "", "x")
	assert.ErrorIs(t, err, ErrEmptyLabel)
	_, err = v.Append(ctx, "x", "")
	assert.ErrorIs(t, err, ErrEmptyValue)

	assert.Equal(t, 0, v.Len())
	_, err = s.Get(ctx, SlotKey)
	assert.ErrorIs(t, err, db.ErrNotFound, "rejected appends must not write")
}

func TestAppend_OrderAndDistinctIDs(t *testing.T) {
	ctx := context.Background()
	v := Load(ctx, db.NewMemoryStore())

	a, err := v.Append(ctx, "A", "1")
	require.NoError(t, err)
	b, err := v.Append(ctx, "B", "2")
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
	got := v.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, model.Entry{ID: a.ID, Label: "A", Value: "1"}, got[0])
	assert.Equal(t, model.Entry{ID: b.ID, Label: "B", Value: "2"}, got[1])
}

func TestAppend_DuplicateLabelsAllowed(t *testing.T) {
	ctx := context.Background()
	v := Load(ctx, db.NewMemoryStore())
	a, _ := v.Append(ctx, "same", "same")
	b, _ := v.Append(ctx, "same", "same")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, v.Len())
}

func TestAppend_IDsContinueAfterLegacyTimestamps(t *testing.T) {
	ctx := context.Background()
	s := db.NewMemoryStore()
	legacy := `[{"id":1718000000000,"name":"old","password":"p"},{"id":1718000000500,"name":"older","password":"q"}]`
	require.NoError(t, s.Set(ctx, SlotKey, []byte(legacy)))

	v := Load(ctx, s)
	require.Equal(t, 2, v.Len())

	e, err := v.Append(ctx, "new", "r")
	require.NoError(t, err)
	assert.Equal(t, int64(1718000000501), e.ID)
}

func TestAppend_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	s := db.NewMemoryStore()
	v := Load(ctx, s)

	_, err := v.Append(ctx, "A", "1")
	require.NoError(t, err)
	reloaded := Load(ctx, s)
	assert.Equal(t, v.Entries(), reloaded.Entries())

	_, err = v.Append(ctx, "B", "2")
	require.NoError(t, err)
	reloaded = Load(ctx, s)
	assert.Equal(t, v.Entries(), reloaded.Entries())
}

func TestAppend_PersistFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	s := db.NewMemoryStore()
	v := Load(ctx, s)
	s.FailWrites = errors.New("read-only filesystem")

	e, err := v.Append(ctx, "A", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)
	assert.Contains(t, err.Error(), "read-only filesystem")
	assert.Equal(t, "A", e.Label)
	assert.Equal(t, 1, v.Len())

	s.FailWrites = nil
	require.NoError(t, v.Persist(ctx))
	assert.Equal(t, 1, Load(ctx, s).Len())
}

func TestRoundTrip_SQLite(t *testing.T) {
	ctx := context.Background()
	s, err := db.New(db.TypeSQLite, testutil.SQLiteMemDSN(t))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	v := Load(ctx, s)
	for _, kv := range [][2]string{{"Gmail", "abc123"}, {"GitHub", "x!y@z"}, {"Bank", "ünïcödé"}} {
		_, err := v.Append(ctx, kv[0], kv[1])
		require.NoError(t, err)
	}

	reloaded := Load(ctx, s)
	assert.Equal(t, v.Entries(), reloaded.Entries())
}

func TestRoundTrip_File(t *testing.T) {
	ctx := context.Background()
	s, err := db.New(db.TypeFile, t.TempDir())
	require.NoError(t, err)

	v := Load(ctx, s)
	_, _ = v.Append(ctx, "A", "1")
	_, _ = v.Append(ctx, "B", "2")

	assert.Equal(t, v.Entries(), Load(ctx, s).Entries())
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	v := Load(ctx, db.NewMemoryStore())
	_, _ = v.Append(ctx, "mine", "1")

	n, err := v.Import(ctx, model.Collection{
		{ID: 1, Label: "theirs", Value: "2"},
		{ID: 2, Label: "", Value: "dropped"},
		{ID: 3, Label: "also", Value: "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got := v.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"mine", "theirs", "also"}, []string{got[0].Label, got[1].Label, got[2].Label})
	assert.Equal(t, []int64{1, 2, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})

	n, err = v.Import(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetAndFindByID(t *testing.T) {
	ctx := context.Background()
	v := Load(ctx, db.NewMemoryStore())
	a, _ := v.Append(ctx, "A", "1")

	got, err := v.Get(0)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	_, err = v.Get(1)
	assert.ErrorIs(t, err, ErrNoSuchEntry)
	_, err = v.Get(-1)
	assert.ErrorIs(t, err, ErrNoSuchEntry)

	got, err = v.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	_, err = v.FindByID(999)
	assert.ErrorIs(t, err, ErrNoSuchEntry)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	v := Load(ctx, db.NewMemoryStore())
	_, _ = v.Append(ctx, "A", "1")

	c := v.Entries()
	c[0].Label = "mutated"
	assert.Equal(t, "A", v.Entries()[0].Label)
}

func TestEncodeDecode(t *testing.T) {
	b, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	c, err := Decode([]byte(`[{"id":7,"name":"Gmail","password":"abc123"}]`))
	require.NoError(t, err)
	assert.Equal(t, model.Collection{{ID: 7, Label: "Gmail", Value: "abc123"}}, c)

	_, err = Decode([]byte(`{}`))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(nil))
	require.NoError(t, Check(model.Collection{{ID: 1, Label: "a", Value: "b"}, {ID: 2, Label: "a", Value: "b"}}))
	assert.ErrorIs(t, Check(model.Collection{{ID: 1, Label: "a", Value: "b"}, {ID: 1, Label: "c", Value: "d"}}), ErrMalformed)
	assert.ErrorIs(t, Check(model.Collection{{ID: 1, Label: "", Value: "b"}}), ErrMalformed)
}

func TestAppend_IDsExhausted(t *testing.T) {
	ctx := context.Background()
	s := db.NewMemoryStore()
	doc := fmt.Sprintf(`[{"id":%d,"name":"last","password":"p"}]`, int64(math.MaxInt64))
	require.NoError(t, s.Set(ctx, SlotKey, []byte(doc)))

	v := Load(ctx, s)
	require.Equal(t, 1, v.Len())

	_, err := v.Append(ctx, "next", "q")
	assert.ErrorIs(t, err, ErrIDsExhausted)
	assert.Equal(t, 1, v.Len())

	n, err := v.Import(ctx, model.Collection{{ID: 1, Label: "x", Value: "y"}})
	assert.ErrorIs(t, err, ErrIDsExhausted)
	assert.Zero(t, n)
	assert.Equal(t, 1, v.Len())
}
