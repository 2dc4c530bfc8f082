//go:build integration
// +build integration

package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/db"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupTestDB starts Postgres, migrates it and loads the sample data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("catalog"),
		postgres.WithUsername("catalog"),
		postgres.WithPassword("catalog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb, err := db.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, db.Migrate(ctx, gdb))
	require.NoError(t, db.Seed(ctx, gdb))
	return gdb
}

func TestGormProductRepository(t *testing.T) {
	gdb := setupTestDB(t)
	products := repo.NewGormProductRepository(gdb, 0)
	ctx := context.Background()

	t.Run("GetAll joins category and supplier", func(t *testing.T) {
		all, err := products.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)

		assert.Equal(t, "Chai", all[0].ProductName)
		require.NotNil(t, all[0].Category)
		require.NotNil(t, all[0].Supplier)
		assert.Equal(t, "Beverages", all[0].Category.CategoryName)
		assert.Equal(t, "Exotic Liquids", all[0].Supplier.CompanyName)
		assert.True(t, all[0].UnitPrice.Equal(decimal.RequireFromString("18")))
	})

	t.Run("GetByID reports missing rows", func(t *testing.T) {
		_, err := products.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, repo.ErrProductNotFound)
	})

	t.Run("Create ignores the submitted id", func(t *testing.T) {
		created, err := products.Create(ctx, models.Product{
			ProductID:   1,
			ProductName: "Ikura",
			CategoryID:  2,
			SupplierID:  2,
			UnitPrice:   decimal.RequireFromString("31.00"),
		})
		require.NoError(t, err)
		assert.Greater(t, created.ProductID, 4)
		assert.Equal(t, 1, created.Version)

		stored, err := products.GetByID(ctx, created.ProductID)
		require.NoError(t, err)
		assert.Equal(t, "Condiments", stored.Category.CategoryName)
		assert.Equal(t, "New Orleans Cajun Delights", stored.Supplier.CompanyName)
	})

	t.Run("Update bumps the version and rejects stale writes", func(t *testing.T) {
		chang, err := products.Find(ctx, 2)
		require.NoError(t, err)

		edit := chang
		edit.UnitsInStock = 5
		updated, err := products.Update(ctx, edit)
		require.NoError(t, err)
		assert.Equal(t, chang.Version+1, updated.Version)

		stale := chang
		stale.ProductName = "Chang Beer"
		_, err = products.Update(ctx, stale)
		assert.True(t, errors.Is(err, repo.ErrConcurrencyConflict))

		stored, err := products.Find(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Chang", stored.ProductName)
		assert.Equal(t, int16(5), stored.UnitsInStock)
		assert.Equal(t, updated.Version, stored.Version)
	})

	t.Run("SearchByName is case-sensitive and literal", func(t *testing.T) {
		found, err := products.SearchByName(ctx, "Ch")
		require.NoError(t, err)
		assert.Equal(t, []string{"Chai", "Chang", "Chef Anton's Cajun Seasoning"}, names(found))

		found, err = products.SearchByName(ctx, "ch")
		require.NoError(t, err)
		assert.Empty(t, found)

		found, err = products.SearchByName(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, found)

		found, err = products.SearchByName(ctx, "_")
		require.NoError(t, err)
		assert.Empty(t, found)

		found, err = products.SearchByName(ctx, "")
		require.NoError(t, err)
		assert.Len(t, found, 5)
	})

	t.Run("Delete removes the row once", func(t *testing.T) {
		require.NoError(t, products.Delete(ctx, 3))
		assert.ErrorIs(t, products.Delete(ctx, 3), repo.ErrProductNotFound)

		_, err := products.Find(ctx, 3)
		assert.ErrorIs(t, err, repo.ErrProductNotFound)
	})
}

func TestCachedReferenceRepository(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "start redis container")
	t.Cleanup(func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	addr, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	cache, err := redissvc.Connect(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	refs := repo.NewCachedReferenceRepository(repo.NewGormReferenceRepository(gdb, 0), cache, time.Minute, nil)

	categories, err := refs.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// the cached list survives a change in the database until invalidated
	require.NoError(t, gdb.Create(&models.Category{CategoryName: "Seafood"}).Error)

	cached, err := refs.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	var raw []models.Category
	require.NoError(t, cache.GetJSON(ctx, repo.CategoriesCacheKey, &raw))
	assert.Len(t, raw, 2)

	require.NoError(t, refs.Invalidate(ctx))
	fresh, err := refs.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 3)

	suppliers, err := refs.Suppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ProductName
	}
	return out
}
