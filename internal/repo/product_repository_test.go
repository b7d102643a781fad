package repo_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repositories(t *testing.T) map[string]repo.ProductRepository {
	t.Helper()

	sqlite, err := db.Connect(db.DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	repos := map[string]repo.ProductRepository{
		"memory": repo.NewInMemoryProductRepository(),
		"sqlite": repo.NewSQLProductRepository(sqlite),
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pg, err := db.Connect(db.DriverPostgres, dbURL)
		require.NoError(t, err)
		_, err = pg.Exec(`TRUNCATE product RESTART IDENTITY`)
		require.NoError(t, err)
		t.Cleanup(func() { pg.Close() })
		repos["postgres"] = repo.NewSQLProductRepository(pg)
	}

	return repos
}

func TestProductRepository_CreateAssignsFreshIDs(t *testing.T) {
	ctx := context.Background()
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			first, err := r.Create(ctx, models.Product{Name: "Kettle", Price: 1200, Quantity: 3})
			require.NoError(t, err)
			second, err := r.Create(ctx, models.Product{Name: "Toaster", Price: 2500, Quantity: 1})
			require.NoError(t, err)

			assert.NotZero(t, first.ID)
			assert.Greater(t, second.ID, first.ID)

			all, err := r.GetAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, first, all[0])
			assert.Equal(t, second, all[1])
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := r.Create(ctx, models.Product{Name: "Lamp", Price: 700, Quantity: 9})
			require.NoError(t, err)

			got, err := r.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created, got)

			_, err = r.GetByID(ctx, created.ID+100)
			assert.ErrorIs(t, err, repo.ErrProductNotFound)
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	ctx := context.Background()
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := r.Create(ctx, models.Product{Name: "Old", Price: 10, Quantity: 1})
			require.NoError(t, err)

			changed := models.Product{ID: created.ID, Name: "New", Price: 20, Quantity: 2}
			updated, err := r.Update(ctx, changed)
			require.NoError(t, err)
			assert.Equal(t, changed, updated)

			got, err := r.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, changed, got)

			_, err = r.Update(ctx, models.Product{ID: created.ID + 100, Name: "Ghost", Price: 1, Quantity: 1})
			assert.ErrorIs(t, err, repo.ErrProductNotFound)
		})
	}
}

func TestProductRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := r.Create(ctx, models.Product{Name: "Chair", Price: 4000, Quantity: 4})
			require.NoError(t, err)

			require.NoError(t, r.Delete(ctx, created.ID))

			all, err := r.GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)

			assert.ErrorIs(t, r.Delete(ctx, created.ID), repo.ErrProductNotFound)
		})
	}
}

func TestProductRepository_NameTooLong(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("x", models.MaxProductNameLength+1)
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := r.Create(ctx, models.Product{Name: long, Price: 1, Quantity: 1})
			assert.ErrorIs(t, err, repo.ErrNameTooLong)

			created, err := r.Create(ctx, models.Product{Name: strings.Repeat("y", models.MaxProductNameLength), Price: 1, Quantity: 1})
			require.NoError(t, err)

			_, err = r.Update(ctx, models.Product{ID: created.ID, Name: long, Price: 1, Quantity: 1})
			assert.ErrorIs(t, err, repo.ErrNameTooLong)
		})
	}
}

func TestProductRepository_NegativeValuesAreStored(t *testing.T) {
	ctx := context.Background()
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			created, err := r.Create(ctx, models.Product{Name: "Refund", Price: -50, Quantity: -2})
			require.NoError(t, err)

			got, err := r.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, -50, got.Price)
			assert.Equal(t, -2, got.Quantity)
		})
	}
}
