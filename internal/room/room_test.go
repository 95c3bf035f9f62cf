package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pebblestore "github.com/alkapone312/shared-checklist/internal/storage/pebble"
)

func openTestDB(t *testing.T) *pebblestore.DB {
	t.Helper()
	db, err := pebblestore.Open(pebblestore.Options{DataDir: t.TempDir(), Fsync: pebblestore.FsyncModeAlways})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	m, err := Create(db, 1700000000)
	require.NoError(t, err)
	assert.Len(t, m.ID, 32)
	assert.Len(t, m.Token, 32)
	assert.NotEqual(t, m.ID, m.Token)
	assert.Equal(t, int64(1700000000), m.CreatedAt)

	got, err := Get(db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestGetMissingRoom(t *testing.T) {
	db := openTestDB(t)
	_, err := Get(db, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateToken(t *testing.T) {
	db := openTestDB(t)
	m, err := Create(db, 1700000000)
	require.NoError(t, err)

	got, err := ValidateToken(db, m.ID, m.Token)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = ValidateToken(db, m.ID, "wrong")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = ValidateToken(db, "missing", m.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrefixBoundsCoverRoomKeys(t *testing.T) {
	db := openTestDB(t)
	m, err := Create(db, 1)
	require.NoError(t, err)

	low, high := PrefixBounds()
	key := MetaKey(m.ID)
	assert.True(t, string(key) >= string(low) && string(key) < string(high))
}
