package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

func runUserRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put and GetByEmail round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		user := &model.User{
			Email:                types.Email("alice@batch.edu"),
			Name:                 "Alice",
			PreferencesCompleted: true,
		}
		gt.NoError(t, repo.User().Put(ctx, user)).Required()

		got, err := repo.User().GetByEmail(ctx, user.Email)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Email).Equal(user.Email)
		gt.Value(t, got.Name).Equal("Alice")
		gt.Bool(t, got.PreferencesCompleted).True()
		gt.Bool(t, got.CreatedAt.IsZero()).False()
	})

	t.Run("GetByEmail wraps ErrNotFound for absent user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.User().GetByEmail(ctx, types.Email("nobody@batch.edu"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("Put overwrites existing user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		email := types.Email("bob@batch.edu")
		gt.NoError(t, repo.User().Put(ctx, &model.User{Email: email, Name: "Bob"})).Required()
		gt.NoError(t, repo.User().Put(ctx, &model.User{
			Email:                email,
			Name:                 "Robert",
			PreferencesCompleted: true,
		})).Required()

		got, err := repo.User().GetByEmail(ctx, email)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Robert")
		gt.Bool(t, got.PreferencesCompleted).True()
	})

	t.Run("ListCompleted returns only eligible users", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.User().Put(ctx, &model.User{
			Email:                types.Email("done@batch.edu"),
			Name:                 "Done",
			PreferencesCompleted: true,
		})).Required()
		gt.NoError(t, repo.User().Put(ctx, &model.User{
			Email: types.Email("pending@batch.edu"),
			Name:  "Pending",
		})).Required()

		users, err := repo.User().ListCompleted(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, users).Length(1)
		gt.Value(t, users[0].Email).Equal(types.Email("done@batch.edu"))
	})
}

func TestMemoryUserRepository(t *testing.T) {
	runUserRepositoryTest(t, newMemoryRepo)
}

func TestFirestoreUserRepository(t *testing.T) {
	runUserRepositoryTest(t, newFirestoreRepo)
}
