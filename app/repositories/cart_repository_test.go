package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/app/repositories"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, or each pool conn gets its own :memory: database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}))
	return db
}

func TestUpsertLine_CreatesThenUpdates(t *testing.T) {
	repo := repositories.NewCartRepository(testDB(t))
	ctx := context.Background()

	created, err := repo.UpsertLine(ctx, 7, 1, 2)
	require.NoError(t, err)
	require.NotZero(t, created.CartID)
	assert.Equal(t, int64(2), created.Quantity)

	// The update path must report the existing line's id, not a fresh one.
	updated, err := repo.UpsertLine(ctx, 7, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, created.CartID, updated.CartID)
	assert.Equal(t, int64(5), updated.Quantity)

	lines, err := repo.ListCart(ctx, 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5), lines[0].Quantity)
}

func TestUpsertLine_SurfacesStoreErrors(t *testing.T) {
	db := testDB(t)
	repo := repositories.NewCartRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.UpsertLine(context.Background(), 7, 1, 2)
	require.Error(t, err)
}
