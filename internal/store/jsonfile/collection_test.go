package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (n note) RecordID() string { return n.ID }

func newCollection(t *testing.T) *Collection[note] {
	t.Helper()
	return New[note](filepath.Join(t.TempDir(), "notes.json"))
}

func TestCollection_MissingFileIsEmpty(t *testing.T) {
	c := newCollection(t)

	records, err := c.ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCollection_EmptyFileIsEmpty(t *testing.T) {
	c := newCollection(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte("  \n"), 0o644))

	records, err := c.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollection_UnreadableFileIsError(t *testing.T) {
	dir := t.TempDir()
	c := New[note](dir) // a directory cannot be read as a file

	_, err := c.ListAll(context.Background())

	require.Error(t, err)
}

func TestCollection_CorruptFileIsError(t *testing.T) {
	c := newCollection(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte(`{"not":"an array"`), 0o644))

	_, err := c.ListAll(context.Background())
	require.Error(t, err)

	err = c.Append(context.Background(), note{ID: "1"})
	require.Error(t, err)
}

func TestCollection_AppendAndFind(t *testing.T) {
	ctx := context.Background()
	c := newCollection(t)

	require.NoError(t, c.Append(ctx, note{ID: "a", Text: "first"}))
	require.NoError(t, c.Append(ctx, note{ID: "b", Text: "second"}))

	records, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []note{{ID: "a", Text: "first"}, {ID: "b", Text: "second"}}, records)

	got, err := c.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)

	_, err = c.FindByID(ctx, "zzz")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCollection_WritesIndentedArray(t *testing.T) {
	c := newCollection(t)
	require.NoError(t, c.Append(context.Background(), note{ID: "a", Text: "x"}))

	raw, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"id\": \"a\",\n    \"text\": \"x\"\n  }\n]", string(raw))

	entries, err := os.ReadDir(filepath.Dir(c.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestCollection_ConcurrentAppendsKeepEveryRecord(t *testing.T) {
	ctx := context.Background()
	c := newCollection(t)

	const writers = 40
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, c.Append(ctx, note{ID: fmt.Sprintf("n-%d", i)}))
		}(i)
	}
	wg.Wait()

	records, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, writers)
}
