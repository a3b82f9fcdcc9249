package categories

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ekaraca/wordbank/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_categories_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Category{},
		&entities.Word{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func TestRepository_CreateCategory(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	category, err := repo.CreateCategory("Essen")

	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Essen", category.Name)
}

func TestRepository_CreateCategory_DuplicateNameRejectedByIndex(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateCategory("Essen")
	require.NoError(t, err)

	// the repository performs no pre-check; the unique index is the backstop
	_, err = repo.CreateCategory("Essen")
	assert.Error(t, err)
}

func TestRepository_GetCategoryByID(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateCategory("Beruf")
	require.NoError(t, err)

	category, err := repo.GetCategoryByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beruf", category.Name)

	_, err = repo.GetCategoryByID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetCategoryByName(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateCategory("Familie")
	require.NoError(t, err)

	category, err := repo.GetCategoryByName("Familie")
	require.NoError(t, err)
	assert.Equal(t, "Familie", category.Name)

	_, err = repo.GetCategoryByName("Verben")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListCategories_Pagination(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, name := range []string{"Essen", "Beruf", "Familie", "Verben", "Alltag"} {
		_, err := repo.CreateCategory(name)
		require.NoError(t, err)
	}

	categories, err := repo.ListCategories(0, 2)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	categories, err = repo.ListCategories(4, 10)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	categories, err = repo.ListCategories(100, 10)
	require.NoError(t, err)
	assert.Empty(t, categories)
}
