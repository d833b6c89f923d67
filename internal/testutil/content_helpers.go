package testutil

import "github.com/Shuvikm/sonyliv-clone/internal/models"

// IDs returns the ids of items in order.
func IDs(items []models.Content) []string {
	ids := make([]string, 0, len(items))
	for _, c := range items {
		ids = append(ids, c.Common().ID)
	}
	return ids
}

// Titles returns the titles of items in order.
func Titles(items []models.Content) []string {
	titles := make([]string, 0, len(items))
	for _, c := range items {
		titles = append(titles, c.Common().Title)
	}
	return titles
}
