package recipe

import (
	"strings"

	"plateful-backend/entities"
)

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// NormalizeDifficulty lowercases the submitted difficulty and drops
// anything outside easy|medium|hard. Invalid values become "" rather
// than an error.
func NormalizeDifficulty(raw string) string {
	difficulty := strings.ToLower(strings.TrimSpace(raw))
	if validDifficulties[difficulty] {
		return difficulty
	}
	return ""
}

// FilterByIngredient is the in-memory phase of the filtered search: it
// keeps recipes whose ingredient list contains a case-insensitive
// substring match. The store cannot predicate over array columns, so
// this runs after the query phase and composes with it as a logical AND.
func FilterByIngredient(recipes []*entities.Recipe, ingredient string) []*entities.Recipe {
	needle := strings.ToLower(strings.TrimSpace(ingredient))
	if needle == "" {
		return recipes
	}

	filtered := make([]*entities.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			if strings.Contains(strings.ToLower(ing), needle) {
				filtered = append(filtered, recipe)
				break
			}
		}
	}
	return filtered
}

// cleanList trims every entry and drops the blank ones, preserving
// order.
func cleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
