package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/adapters/cas"
	"go.trai.ch/sameunit/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(filepath.Join(t.TempDir(), "results"))

	record := domain.ScriptRecord{
		Script:      "scripts/a_test.yaml",
		ContentHash: "abc",
		Passed:      true,
		Tests:       3,
		Timestamp:   time.Now().Truncate(time.Second).UTC(),
	}

	require.NoError(t, store.Put(record))

	got, err := store.Get("scripts/a_test.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)

	// A differently spelled path resolves to the same record.
	got, err = store.Get("./scripts/../scripts/a_test.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.ContentHash)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(t.TempDir())

	got, err := store.Get("nothing_test.yaml")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Overwrite(t *testing.T) {
	t.Parallel()

	store := cas.NewStore(t.TempDir())
	require.NoError(t, store.Put(domain.ScriptRecord{Script: "a_test.yaml", Passed: true}))
	require.NoError(t, store.Put(domain.ScriptRecord{Script: "a_test.yaml", Failures: 2}))

	got, err := store.Get("a_test.yaml")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Passed)
	assert.Equal(t, 2, got.Failures)
}

func TestStore_CorruptRecord(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := cas.NewStore(dir)
	require.NoError(t, store.Put(domain.ScriptRecord{Script: "a_test.yaml"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), 0o600))

	_, err = store.Get("a_test.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_CreateFailure(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := cas.NewStore(filepath.Join(file, "results")).Put(domain.ScriptRecord{Script: "a_test.yaml"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreCreateFailed.Error())
}
