package models

// Percentiles is a generic struct for storing percentiles for any distribution of data.
type Percentiles struct {
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// CategoryAnalytics summarizes the courses of one category.
type CategoryAnalytics struct {
	Category      string      `json:"category"`
	NumCourses    int         `json:"numCourses"`
	TotalStudents int         `json:"totalStudents"`
	MeanRating    float64     `json:"meanRating"`
	Price         Percentiles `json:"price"`
}

// CatalogAnalytics are computed on demand from the full course list and are never stored.
type CatalogAnalytics struct {
	Version int `json:"version"`

	NumCourses    int                  `json:"numCourses"`
	TotalStudents int                  `json:"totalStudents"`
	MeanRating    float64              `json:"meanRating"`
	Price         Percentiles          `json:"price"`
	Levels        map[CourseLevel]int  `json:"levels"`
	Categories    []*CategoryAnalytics `json:"categories"`
}
