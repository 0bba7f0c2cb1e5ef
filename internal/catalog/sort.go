package catalog

import "github.com/mmr-tortoise/courseplanner/internal/model"

// SortByIDAscending sorts courses in place by ID using insertion sort.
//
// Each element is held as the key while every earlier element with a
// strictly greater ID moves one slot right; the key then drops into the
// gap. Equal IDs never move past each other, so the sort is stable.
func SortByIDAscending(courses []model.Course) {
	for i := 1; i < len(courses); i++ {
		key := courses[i]
		j := i
		for j > 0 && courses[j-1].ID > key.ID {
			courses[j] = courses[j-1]
			j--
		}
		courses[j] = key
	}
}
