package models

var (
	FirestoreCoursesCollection = "courses"
)

// CourseLevel is the difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Levels lists every CourseLevel in display order.
var Levels = []CourseLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is one of the known levels.
func (l CourseLevel) Valid() bool {
	for _, level := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

type Course struct {
	ID          string      `json:"id" mapstructure:"id"`
	Title       string      `json:"title" mapstructure:"title"`
	Instructor  string      `json:"instructor" mapstructure:"instructor"`
	Description string      `json:"description" mapstructure:"description"`
	Image       string      `json:"image" mapstructure:"image"`
	Duration    string      `json:"duration" mapstructure:"duration"`
	Students    int         `json:"students" mapstructure:"students"`
	Rating      float64     `json:"rating" mapstructure:"rating"`
	Price       float64     `json:"price" mapstructure:"price"`
	Level       CourseLevel `json:"level" mapstructure:"level"`
	Category    string      `json:"category" mapstructure:"category"`
}

// CreateCourseRequest is the parameter struct for the CreateCourse function. ID may be pre-assigned
// by the caller; an empty ID is filled in with NewCourseID.
type CreateCourseRequest struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Instructor  string      `json:"instructor"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Duration    string      `json:"duration"`
	Students    int         `json:"students"`
	Rating      float64     `json:"rating"`
	Price       float64     `json:"price"`
	Level       CourseLevel `json:"level"`
	Category    string      `json:"category"`
}

// DeleteCourseRequest is the parameter struct for the DeleteCourse function.
type DeleteCourseRequest struct {
	CourseID string `json:"courseID"`
}

// Course builds the Course described by the request. Missing IDs, levels and images are filled in
// with their defaults.
func (c *CreateCourseRequest) Course(defaultImage string) *Course {
	course := &Course{
		ID:          c.ID,
		Title:       c.Title,
		Instructor:  c.Instructor,
		Description: c.Description,
		Image:       c.Image,
		Duration:    c.Duration,
		Students:    c.Students,
		Rating:      c.Rating,
		Price:       c.Price,
		Level:       c.Level,
		Category:    c.Category,
	}

	if course.ID == "" {
		course.ID = NewCourseID()
	}
	if course.Level == "" {
		course.Level = LevelBeginner
	}
	if course.Image == "" {
		course.Image = defaultImage
	}

	return course
}
