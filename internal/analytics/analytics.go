package analytics

import (
	"sort"

	"coursecatalog/internal/catalog"
	"coursecatalog/internal/models"
)

const (
	CATALOG_ANALYTICS_VERSION = 1
)

// GenerateCatalogAnalytics summarizes courses overall and per category. Does not need/use any
// repository connection. Categories appear in the same order as on the catalog page.
func GenerateCatalogAnalytics(courses []*models.Course) *models.CatalogAnalytics {
	analytics := &models.CatalogAnalytics{
		Version: CATALOG_ANALYTICS_VERSION,

		Levels:     make(map[models.CourseLevel]int),
		Categories: make([]*models.CategoryAnalytics, 0),
	}

	byCategory := make(map[string][]*models.Course)
	for _, course := range courses {
		byCategory[course.Category] = append(byCategory[course.Category], course)
		analytics.Levels[course.Level]++
	}

	analytics.NumCourses, analytics.TotalStudents, analytics.MeanRating, analytics.Price = summarize(courses)

	for _, category := range catalog.Categories(courses)[1:] {
		categoryAnalytics := &models.CategoryAnalytics{Category: category}
		categoryAnalytics.NumCourses, categoryAnalytics.TotalStudents, categoryAnalytics.MeanRating, categoryAnalytics.Price = summarize(byCategory[category])
		analytics.Categories = append(analytics.Categories, categoryAnalytics)
	}

	return analytics
}

func summarize(courses []*models.Course) (numCourses int, totalStudents int, meanRating float64, price models.Percentiles) {
	if len(courses) == 0 {
		return
	}

	var ratingSum float64
	prices := make([]float64, 0, len(courses))
	for _, course := range courses {
		totalStudents += course.Students
		ratingSum += course.Rating
		prices = append(prices, course.Price)
	}

	return len(courses), totalStudents, ratingSum / float64(len(courses)), CalculatePercentiles(prices)
}

func CalculatePercentiles(data []float64) models.Percentiles {
	if len(data) == 0 {
		return models.Percentiles{}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	calculatePercentile := func(percentile float64) float64 {
		rank := percentile / 100 * float64(len(sorted)-1)
		rankInt := int(rank)

		// If the rank is an integer, return the value at that index
		if rank == float64(rankInt) {
			return sorted[rankInt]
		}

		// Otherwise, linearly interpolate
		baseline := sorted[rankInt]
		interpolation := (rank - float64(rankInt)) * (sorted[rankInt+1] - sorted[rankInt])

		return baseline + interpolation
	}

	return models.Percentiles{
		P50: calculatePercentile(50),
		P90: calculatePercentile(90),
		P99: calculatePercentile(99),
	}
}
