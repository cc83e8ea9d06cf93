package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoragePutGet(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	meta := &Metadata{
		ContentType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		OriginalName: "acme.xlsx",
		Company:      "Acme",
		ImportID:     "imp_test",
		Fingerprint:  "v1:abc",
		ArchivedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	key := BuildScheduleKey("acme", "v1:abc")
	require.NoError(t, s.Put(ctx, key, []byte("payload"), meta))

	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	info, err := s.GetInfo(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Size)
	assert.Equal(t, ComputeChecksum([]byte("payload")), info.Checksum)
	require.NotNil(t, info.Metadata)
	assert.Equal(t, "imp_test", info.Metadata.ImportID)
	assert.True(t, meta.ArchivedAt.Equal(info.Metadata.ArchivedAt))
	assert.Equal(t, meta.ContentType, info.ContentType)

	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalStorageNotFound(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(ctx, "schedules/none.xlsx")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetInfo(ctx, "schedules/none.xlsx")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := s.Exists(ctx, "schedules/none.xlsx")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Delete(ctx, "schedules/none.xlsx"))
}

func TestLocalStorageListAndDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"schedules/acme/b.xlsx", "schedules/acme/a.xlsx", "schedules/other/c.xlsx"} {
		require.NoError(t, s.Put(ctx, key, []byte(key), &Metadata{}))
	}

	keys, err := s.List(ctx, "schedules/acme/")
	require.NoError(t, err)
	assert.Equal(t, []string{"schedules/acme/a.xlsx", "schedules/acme/b.xlsx"}, keys, "sidecars are not listed")

	require.NoError(t, s.Delete(ctx, "schedules/acme/a.xlsx"))
	keys, err = s.List(ctx, "schedules/")
	require.NoError(t, err)
	assert.Equal(t, []string{"schedules/acme/b.xlsx", "schedules/other/c.xlsx"}, keys)

	_, err = os.Stat(filepath.Join(s.BasePath(), "schedules", "acme", "a.xlsx.meta"))
	assert.True(t, os.IsNotExist(err), "sidecar removed with its object")
}

func TestLocalStorageKeysStayInsideBase(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(base, "store"))
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "../../escape.xlsx", []byte("x"), nil))

	_, err = os.Stat(filepath.Join(base, "escape.xlsx"))
	assert.True(t, os.IsNotExist(err))
	ok, err := s.Exists(ctx, "escape.xlsx")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuildScheduleKey(t *testing.T) {
	assert.Equal(t, "schedules/acme-energia/v1-deadbeef.xlsx", BuildScheduleKey("acme-energia", "v1:deadbeef"))
}
