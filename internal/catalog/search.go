package catalog

import "github.com/mmr-tortoise/courseplanner/internal/model"

// FindByID returns the first course whose ID equals key exactly.
// The comparison is case-sensitive; the bool is false when nothing matches.
func FindByID(courses []model.Course, key string) (model.Course, bool) {
	for _, c := range courses {
		if c.ID == key {
			return c, true
		}
	}
	return model.Course{}, false
}
