package domain

import "time"

// Category partitions the hobby catalog. The set is closed; no other
// values are ever stored.
type Category string

const (
	CategorySports       Category = "sports"
	CategoryIntelligence Category = "intelligence"
	CategoryArt          Category = "art"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategorySports, CategoryIntelligence, CategoryArt}
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategorySports, CategoryIntelligence, CategoryArt:
		return true
	}
	return false
}

// Hobby is a static catalog entry. Entries are defined at build time and
// never created or mutated at runtime.
type Hobby struct {
	ID          string
	Title       string
	Description string
	ImageKey    string
	Category    Category
}

// BookmarkedHobby is a catalog entry joined with the time the user
// bookmarked it.
type BookmarkedHobby struct {
	Hobby
	BookmarkedAt time.Time
}
