package recipe

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"plateful-backend/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func recipeRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "ingredients", "instructions", "difficulty", "cooking_time", "category"})
	for _, id := range ids {
		rows.AddRow(id.String(), uuid.New().String(), "Recipe "+id.String()[:8], "{flour,water}", "{mix,bake}", "easy", 30, "Breakfast")
	}
	return rows
}

func TestRecipeRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRecipeRepository(gdb)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
			WithArgs(id.String(), 1).
			WillReturnRows(recipeRows(id))

		recipe, err := repo.GetByID(context.Background(), id.String())
		require.NoError(t, err)
		assert.Equal(t, id, recipe.ID)
		assert.Equal(t, []string{"flour", "water"}, []string(recipe.Ingredients))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRecipeRepository(gdb)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE id = \$1`).
			WithArgs(id.String(), 1).
			WillReturnRows(recipeRows())

		_, err := repo.GetByID(context.Background(), id.String())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestRecipeRepository_GetByCategory(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRecipeRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE category = \$1 ORDER BY created_at desc`).
		WithArgs("Breakfast").
		WillReturnRows(recipeRows(uuid.New(), uuid.New()))

	recipes, err := repo.GetByCategory(context.Background(), "Breakfast")
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_GetFiltered(t *testing.T) {
	t.Run("all query predicates are applied", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRecipeRepository(gdb)

		mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE category = \$1 AND difficulty = \$2 AND cooking_time <= \$3 AND \(title ILIKE \$4 OR description ILIKE \$5\) ORDER BY created_at desc`).
			WithArgs("Breakfast", "easy", 30, "%toast%", "%toast%").
			WillReturnRows(recipeRows(uuid.New()))

		recipes, err := repo.GetFiltered(context.Background(), domain.RecipeFilter{
			Category:       "Breakfast",
			Difficulty:     "easy",
			MaxCookingTime: 30,
			Search:         "toast",
		})
		require.NoError(t, err)
		assert.Len(t, recipes, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero-valued predicates are omitted", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRecipeRepository(gdb)

		mock.ExpectQuery(`SELECT \* FROM "recipes" WHERE difficulty = \$1 ORDER BY created_at desc`).
			WithArgs("hard").
			WillReturnRows(recipeRows())

		recipes, err := repo.GetFiltered(context.Background(), domain.RecipeFilter{Difficulty: "hard"})
		require.NoError(t, err)
		assert.Empty(t, recipes)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_GetLatest(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRecipeRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "recipes" ORDER BY created_at desc LIMIT \$1`).
		WithArgs(6).
		WillReturnRows(recipeRows(uuid.New(), uuid.New(), uuid.New()))

	recipes, err := repo.GetLatest(context.Background(), 6)
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}
