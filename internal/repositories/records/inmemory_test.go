package records_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/arm5e-effects/internal/errors"
	"github.com/KirkDiggler/arm5e-effects/internal/repositories/records"
	"github.com/KirkDiggler/arm5e-effects/internal/testutils"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := records.NewInMemoryRepository()
		rec := testutils.CreateTestRecord("ae-1", "Might of the Bear")

		require.NoError(t, repo.Create(ctx, "magus-1", rec))

		got, err := repo.Get(ctx, "ae-1")
		require.NoError(t, err)
		assert.Equal(t, rec.Entries(), got.Entries())

		// stored copies are isolated from callers
		got.Name = "Changed"
		rec.Toggle()
		again, err := repo.Get(ctx, "ae-1")
		require.NoError(t, err)
		assert.Equal(t, "Might of the Bear", again.Name)
		assert.False(t, again.Disabled)
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		repo := records.NewInMemoryRepository()
		rec := testutils.CreateTestRecord("ae-1", "Might of the Bear")

		require.NoError(t, repo.Create(ctx, "magus-1", rec))
		assert.True(t, errors.IsAlreadyExists(repo.Create(ctx, "magus-1", rec)))
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		repo := records.NewInMemoryRepository()
		for _, rec := range testutils.CreateTestSheet("Actor.magus-1") {
			require.NoError(t, repo.Create(ctx, "magus-1", rec))
		}
		require.NoError(t, repo.Create(ctx, "other", testutils.CreateTestRecord("ae-x", "Other")))

		list, err := repo.ListByOwner(ctx, "magus-1")
		require.NoError(t, err)

		ids := make([]string, len(list))
		for i, rec := range list {
			ids[i] = rec.ID
		}
		assert.Equal(t, []string{"ae-temp", "ae-passive", "ae-inactive", "ae-hidden"}, ids)
	})

	t.Run("update and delete", func(t *testing.T) {
		repo := records.NewInMemoryRepository()
		rec := testutils.CreateTestRecord("ae-1", "Might of the Bear")
		require.NoError(t, repo.Create(ctx, "magus-1", rec))

		rec.Toggle()
		require.NoError(t, repo.Update(ctx, rec))

		got, err := repo.Get(ctx, "ae-1")
		require.NoError(t, err)
		assert.True(t, got.Disabled)

		require.NoError(t, repo.Delete(ctx, "ae-1"))
		_, err = repo.Get(ctx, "ae-1")
		assert.True(t, errors.IsNotFound(err))

		list, err := repo.ListByOwner(ctx, "magus-1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("missing records", func(t *testing.T) {
		repo := records.NewInMemoryRepository()
		rec := testutils.CreateTestRecord("ae-1", "Might of the Bear")

		assert.True(t, errors.IsNotFound(repo.Update(ctx, rec)))
		assert.True(t, errors.IsNotFound(repo.Delete(ctx, "ae-1")))
		assert.True(t, errors.IsInvalidArgument(repo.Create(ctx, "", rec)))

		_, err := repo.ListByOwner(ctx, "")
		assert.True(t, errors.IsInvalidArgument(err))
	})
}
