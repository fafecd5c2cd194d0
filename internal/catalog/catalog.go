// Package catalog holds the compiled-in hobby table. There is no write
// path; the slice below is the whole data set.
package catalog

import "hobbyhub/internal/domain"

var hobbies = []domain.Hobby{
	// sports
	{
		ID:          "running",
		Title:       "Jogging & Running",
		Description: "The most accessible aerobic exercise, great for building stamina and relieving stress.",
		ImageKey:    "thumbnails/running.jpg",
		Category:    domain.CategorySports,
	},
	{
		ID:          "yoga",
		Title:       "Yoga",
		Description: "Improves flexibility and balance while helping you find a calmer state of mind.",
		ImageKey:    "thumbnails/yoga.jpg",
		Category:    domain.CategorySports,
	},
	{
		ID:          "swimming",
		Title:       "Swimming",
		Description: "A full-body workout that builds strength and cardiovascular endurance at the same time.",
		ImageKey:    "thumbnails/swimming.jpg",
		Category:    domain.CategorySports,
	},
	{
		ID:          "cycling",
		Title:       "Cycling",
		Description: "An outdoor aerobic activity that combines sightseeing with exercise.",
		ImageKey:    "thumbnails/cycling.jpg",
		Category:    domain.CategorySports,
	},
	{
		ID:          "climbing",
		Title:       "Climbing",
		Description: "Uses every muscle group and sharpens problem solving and concentration.",
		ImageKey:    "thumbnails/climbing.jpg",
		Category:    domain.CategorySports,
	},
	{
		ID:          "dance",
		Title:       "Dance",
		Description: "Move to the music for fun while developing rhythm and expressiveness.",
		ImageKey:    "thumbnails/dance.jpg",
		Category:    domain.CategorySports,
	},

	// intelligence
	{
		ID:          "reading",
		Title:       "Reading",
		Description: "Broadens knowledge and experience while strengthening imagination and reasoning.",
		ImageKey:    "thumbnails/reading.jpg",
		Category:    domain.CategoryIntelligence,
	},
	{
		ID:          "puzzle",
		Title:       "Puzzles",
		Description: "Improves logical thinking and problem solving, and trains sustained focus.",
		ImageKey:    "thumbnails/puzzle.jpg",
		Category:    domain.CategoryIntelligence,
	},
	{
		ID:          "chess",
		Title:       "Chess",
		Description: "The classic mind game for strategic thinking and anticipating your opponent.",
		ImageKey:    "thumbnails/chess.jpg",
		Category:    domain.CategoryIntelligence,
	},
	{
		ID:          "programming",
		Title:       "Programming",
		Description: "A technical hobby that builds logical thinking and creative problem solving.",
		ImageKey:    "thumbnails/programming.jpg",
		Category:    domain.CategoryIntelligence,
	},
	{
		ID:          "language",
		Title:       "Language Learning",
		Description: "Learn a new language to widen cultural horizons and keep the brain sharp.",
		ImageKey:    "thumbnails/foreign_language_learning.jpg",
		Category:    domain.CategoryIntelligence,
	},
	{
		ID:          "photography",
		Title:       "Photography",
		Description: "Combines artistic sense with technical skill to capture memorable moments.",
		ImageKey:    "thumbnails/photography.jpg",
		Category:    domain.CategoryIntelligence,
	},

	// art
	{
		ID:          "painting",
		Title:       "Painting & Drawing",
		Description: "Creative expression and an outlet for emotion that develops artistic sense.",
		ImageKey:    "thumbnails/drawing.jpg",
		Category:    domain.CategoryArt,
	},
	{
		ID:          "music",
		Title:       "Playing an Instrument",
		Description: "Develops musicality along with concentration and hand coordination.",
		ImageKey:    "thumbnails/instrument_playing.jpg",
		Category:    domain.CategoryArt,
	},
	{
		ID:          "cooking",
		Title:       "Cooking",
		Description: "An artistic craft of creative combinations and precise technique, with a rewarding result.",
		ImageKey:    "thumbnails/cooking.jpg",
		Category:    domain.CategoryArt,
	},
	{
		ID:          "calligraphy",
		Title:       "Calligraphy",
		Description: "Express the beauty of written letters while building concentration and patience.",
		ImageKey:    "thumbnails/calligraphy.jpg",
		Category:    domain.CategoryArt,
	},
	{
		ID:          "pottery",
		Title:       "Pottery",
		Description: "Work with clay to enjoy the pleasure of making and refine a delicate touch.",
		ImageKey:    "thumbnails/pottery.jpg",
		Category:    domain.CategoryArt,
	},
	{
		ID:          "gardening",
		Title:       "Gardening",
		Description: "Spend time with living things and shape a beautiful space of your own.",
		ImageKey:    "thumbnails/gardening.jpg",
		Category:    domain.CategoryArt,
	},
}

// All returns every catalog entry in definition order. Callers receive a
// copy and cannot mutate the catalog.
func All() []domain.Hobby {
	out := make([]domain.Hobby, len(hobbies))
	copy(out, hobbies)
	return out
}

// ByCategory returns the entries in the given category. An empty
// category returns the whole catalog, matching the filter semantics of
// the catalog browse page.
func ByCategory(category domain.Category) []domain.Hobby {
	if category == "" {
		return All()
	}
	var out []domain.Hobby
	for _, h := range hobbies {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}

// ByID looks up a single entry.
func ByID(id string) (domain.Hobby, bool) {
	for _, h := range hobbies {
		if h.ID == id {
			return h, true
		}
	}
	return domain.Hobby{}, false
}
