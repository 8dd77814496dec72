package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/shareit-backend/internal/user"
)

func strPtr(s string) *string { return &s }

func newService() user.Service {
	return user.NewService(user.NewMemoryRepository())
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user and normalizes email", func(t *testing.T) {
		svc := newService()
		u, err := svc.Create(ctx, user.CreateRequest{Name: "  Olga ", Email: " Olga@Example.COM "})
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "Olga", u.Name)
		assert.Equal(t, "olga@example.com", u.Email)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
		require.NoError(t, err)

		// Same address in different casing collides after normalization.
		_, err = svc.Create(ctx, user.CreateRequest{Name: "Other", Email: "OLGA@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "  "})
		assert.ErrorIs(t, err, user.ErrEmailRequired)

		_, err = svc.Create(ctx, user.CreateRequest{Name: "", Email: "olga@example.com"})
		assert.ErrorIs(t, err, user.ErrNameRequired)
	})
}

func TestUserUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc := newService()
		u, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
		require.NoError(t, err)

		got, err := svc.Update(ctx, u.ID, user.UpdateRequest{Name: strPtr("Olga B")})
		require.NoError(t, err)
		assert.Equal(t, "Olga B", got.Name)
		assert.Equal(t, "olga@example.com", got.Email)
	})

	t.Run("cannot take another user's email", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
		require.NoError(t, err)
		b, err := svc.Create(ctx, user.CreateRequest{Name: "Boris", Email: "boris@example.com"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, b.ID, user.UpdateRequest{Email: strPtr("olga@example.com")})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("updating own email to itself is fine", func(t *testing.T) {
		svc := newService()
		u, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, u.ID, user.UpdateRequest{Email: strPtr("olga@example.com")})
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newService()
		_, err := svc.Update(ctx, uuid.New().String(), user.UpdateRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	u, err := svc.Create(ctx, user.CreateRequest{Name: "Olga", Email: "olga@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, u.ID), user.ErrNotFound)
}
