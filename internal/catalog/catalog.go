// Package catalog derives the visible page of courses from the full course list and the current
// query state. Everything here is a pure function of its inputs; results are recomputed on every
// request rather than updated incrementally.
package catalog

import (
	"strings"

	"coursecatalog/internal/models"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "All"

// DefaultPageSize is the number of courses shown per page when none is configured.
const DefaultPageSize = 3

// Categories returns "All" followed by every distinct category in courses, in order of first
// occurrence. Since repositories make no ordering promise, neither does this beyond "All" being
// first.
func Categories(courses []*models.Course) []string {
	categories := []string{AllCategories}
	seen := make(map[string]bool)

	for _, course := range courses {
		if seen[course.Category] {
			continue
		}
		seen[course.Category] = true
		categories = append(categories, course.Category)
	}

	return categories
}

// Filter returns the courses in category (or all, for AllCategories) whose title, instructor or
// description contains searchTerm, ignoring case. Input order is preserved.
func Filter(courses []*models.Course, searchTerm string, category string) []*models.Course {
	term := strings.ToLower(searchTerm)
	filtered := make([]*models.Course, 0, len(courses))

	for _, course := range courses {
		if category != AllCategories && course.Category != category {
			continue
		}
		if !matchesSearch(course, term) {
			continue
		}
		filtered = append(filtered, course)
	}

	return filtered
}

func matchesSearch(course *models.Course, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(course.Title), term) ||
		strings.Contains(strings.ToLower(course.Instructor), term) ||
		strings.Contains(strings.ToLower(course.Description), term)
}

// TotalPages returns ceil(count / pageSize), which is 0 for an empty list.
func TotalPages(count int, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the courses on page (1-based) and the total number of pages. A page outside the
// available range yields an empty slice.
func Paginate(filtered []*models.Course, page int, pageSize int) ([]*models.Course, int) {
	totalPages := TotalPages(len(filtered), pageSize)
	if page < 1 || pageSize <= 0 {
		return []*models.Course{}, totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []*models.Course{}, totalPages
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], totalPages
}
