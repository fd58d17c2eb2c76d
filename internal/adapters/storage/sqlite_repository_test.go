package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/swatch/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepositoryForPath(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "userColors")
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)
}

func TestSQLiteRepository_SetAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "isDarkMode", "true"))
	value, err := repo.Get(ctx, "isDarkMode")
	require.NoError(t, err)
	assert.Equal(t, "true", value)

	require.NoError(t, repo.Set(ctx, "isDarkMode", "false"))
	value, err = repo.Get(ctx, "isDarkMode")
	require.NoError(t, err)
	assert.Equal(t, "false", value)

	var count int64
	require.NoError(t, repo.db.Model(&PreferenceModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "userColors", `{"primary":"#FF2D55"}`))
	require.NoError(t, repo.Delete(ctx, "userColors"))

	_, err := repo.Get(ctx, "userColors")
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	// Deleting again is fine
	assert.NoError(t, repo.Delete(ctx, "userColors"))
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewSQLiteRepository(filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "userColors", `{"primary":"#5856D6"}`))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepositoryForPath(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "userColors")
	require.NoError(t, err)
	assert.Equal(t, `{"primary":"#5856D6"}`, value)
}

func TestSQLiteRepository_ConcurrentWriters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Set(ctx, "isDarkMode", "true")
		}()
	}
	wg.Wait()

	value, err := repo.Get(ctx, "isDarkMode")
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			if attempts < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)
		assert.Error(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		attempts := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			attempts++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
	})
}
