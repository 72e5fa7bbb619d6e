package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness-hub/wellness/internal/storage"
	"github.com/wellness-hub/wellness/internal/storage/storagetest"
)

func TestBadger(t *testing.T) {
	storagetest.Run(t, func(t *testing.T, s storage.Snapshot) storage.Storage {
		db, err := Open()
		require.NoError(t, err)
		t.Cleanup(func() {
			require.NoError(t, db.Close())
		})

		st, err := New(db, s)
		require.NoError(t, err)

		return st
	})
}

func TestPing_Closed(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	s, err := New(db, storagetest.Snapshot())
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, s.Ping(context.Background()))
}
