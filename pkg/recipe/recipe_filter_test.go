package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plateful-backend/entities"
)

func TestNormalizeDifficulty(t *testing.T) {
	assert.Equal(t, "easy", NormalizeDifficulty("easy"))
	assert.Equal(t, "hard", NormalizeDifficulty("HARD"))
	assert.Equal(t, "medium", NormalizeDifficulty("  Medium "))
	assert.Equal(t, "", NormalizeDifficulty("extreme"))
	assert.Equal(t, "", NormalizeDifficulty(""))
}

func TestFilterByIngredient(t *testing.T) {
	recipes := []*entities.Recipe{
		{Title: "Omelette", Ingredients: []string{"Eggs", "Butter", "Salt"}},
		{Title: "Pancakes", Ingredients: []string{"Flour", "Milk", "Egg yolk"}},
		{Title: "Salad", Ingredients: []string{"Lettuce", "Tomato"}},
	}

	t.Run("matches case-insensitive substring", func(t *testing.T) {
		got := FilterByIngredient(recipes, "egg")
		assert.Len(t, got, 2)
		assert.Equal(t, "Omelette", got[0].Title)
		assert.Equal(t, "Pancakes", got[1].Title)
	})

	t.Run("empty needle returns everything", func(t *testing.T) {
		got := FilterByIngredient(recipes, "")
		assert.Len(t, got, 3)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got := FilterByIngredient(recipes, "saffron")
		assert.Empty(t, got)
	})
}

func TestCleanList(t *testing.T) {
	got := cleanList([]string{" flour ", "", "  ", "milk", "egg"})
	assert.Equal(t, []string{"flour", "milk", "egg"}, got)

	assert.Empty(t, cleanList([]string{"", "   "}))
	assert.Empty(t, cleanList(nil))
}
