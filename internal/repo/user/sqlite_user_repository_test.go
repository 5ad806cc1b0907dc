package user_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkrupp/catcafe-web/internal/domain"
	"github.com/mkrupp/catcafe-web/internal/repo/user"
)

func setupRepo(t *testing.T) *user.SQLiteUserRepository {
	t.Helper()

	repo, err := user.NewSQLiteUserRepository(user.SQLiteUserRepositoryConfig{
		DatabasePath: filepath.Join(t.TempDir(), "users.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestSQLiteUserRepository_Insert(t *testing.T) {
	t.Parallel()

	repo := setupRepo(t)
	ctx := context.Background()

	aliceID, err := repo.Insert(ctx, "alice", "alice@x.com", []byte("hash-a"))
	require.NoError(t, err)

	carolID, err := repo.Insert(ctx, "carol", "carol@x.com", []byte("hash-c"))
	require.NoError(t, err)
	require.NotEqual(t, aliceID, carolID)

	// Same username, different email.
	_, err = repo.Insert(ctx, "alice", "bob@x.com", []byte("hash-b"))
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	require.NotErrorIs(t, err, domain.ErrEmailTaken)

	// Same email, different username.
	_, err = repo.Insert(ctx, "dave", "alice@x.com", []byte("hash-d"))
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	// The losing inserts must not have left partial records behind.
	_, ok, err := repo.FindByUsername(ctx, "dave")
	require.False(t, ok)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSQLiteUserRepository_Find(t *testing.T) {
	t.Parallel()

	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "alice", "alice@x.com", []byte("hash-a"))
	require.NoError(t, err)

	byName, ok, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, id, byName.ID)
	require.Equal(t, "alice@x.com", byName.Email)
	require.Equal(t, []byte("hash-a"), byName.PasswordHash)

	byEmail, ok, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, id, byEmail.ID)

	byID, ok, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice", byID.Username)

	for _, lookup := range []func() (*domain.User, bool, error){
		func() (*domain.User, bool, error) { return repo.FindByUsername(ctx, "nobody") },
		func() (*domain.User, bool, error) { return repo.FindByEmail(ctx, "nobody@x.com") },
		func() (*domain.User, bool, error) { return repo.FindByID(ctx, id+1000) },
	} {
		u, ok, err := lookup()
		require.Nil(t, u)
		require.False(t, ok)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	}
}

func TestSQLiteUserRepository_ConcurrentInsertSameUsername(t *testing.T) {
	t.Parallel()

	repo := setupRepo(t)
	ctx := context.Background()

	const workers = 8

	errs := make(chan error, workers)

	for range workers {
		go func() {
			_, err := repo.Insert(ctx, "alice", "alice@x.com", []byte("hash"))
			errs <- err
		}()
	}

	var succeeded, rejected int

	for range workers {
		err := <-errs
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrEmailTaken):
			rejected++
		default:
			t.Fatalf("unexpected insert error: %v", err)
		}
	}

	require.Equal(t, 1, succeeded)
	require.Equal(t, workers-1, rejected)
}
