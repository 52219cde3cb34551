package cli

import (
	"fmt"

	"coursecatalog/internal/config"
	"coursecatalog/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sampleCourses = []models.CreateCourseRequest{
	{
		Title:       "Complete Web Development Bootcamp",
		Instructor:  "Angela Yu",
		Description: "HTML, CSS, JavaScript, Node and React from the ground up.",
		Image:       "https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg",
		Duration:    "62 hours",
		Students:    12850,
		Rating:      4.7,
		Price:       89.99,
		Level:       models.LevelBeginner,
		Category:    "Development",
	},
	{
		Title:       "Go Concurrency in Practice",
		Instructor:  "Katherine Cox-Buday",
		Description: "Goroutines, channels and the patterns that make them safe.",
		Image:       "https://images.pexels.com/photos/1181671/pexels-photo-1181671.jpeg",
		Duration:    "14 hours",
		Students:    3120,
		Rating:      4.8,
		Price:       59.99,
		Level:       models.LevelAdvanced,
		Category:    "Development",
	},
	{
		Title:       "UI Design Fundamentals",
		Instructor:  "Gary Simon",
		Description: "Layout, color and typography for product interfaces.",
		Image:       "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg",
		Duration:    "9 hours",
		Students:    5400,
		Rating:      4.5,
		Price:       49.99,
		Level:       models.LevelBeginner,
		Category:    "Design",
	},
	{
		Title:       "Python for Data Analysis",
		Instructor:  "Wes McKinney",
		Description: "Wrangling, cleaning and exploring data with pandas.",
		Image:       "https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg",
		Duration:    "21 hours",
		Students:    8740,
		Rating:      4.6,
		Price:       74.99,
		Level:       models.LevelIntermediate,
		Category:    "Data Science",
	},
	{
		Title:       "Machine Learning A-Z",
		Instructor:  "Kirill Eremenko",
		Description: "Regression, classification and clustering with hands-on projects.",
		Image:       "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg",
		Duration:    "44 hours",
		Students:    10230,
		Rating:      4.5,
		Price:       94.99,
		Level:       models.LevelIntermediate,
		Category:    "Data Science",
	},
	{
		Title:       "Brand Identity Design",
		Instructor:  "Aaron Draplin",
		Description: "From logo sketches to a complete identity system.",
		Image:       "https://images.pexels.com/photos/6476589/pexels-photo-6476589.jpeg",
		Duration:    "6 hours",
		Students:    2150,
		Rating:      4.9,
		Price:       39.99,
		Level:       models.LevelAdvanced,
		Category:    "Design",
	},
	{
		Title:       "Digital Marketing Essentials",
		Instructor:  "Neil Patel",
		Description: "SEO, content and paid acquisition for small teams.",
		Duration:    "11 hours",
		Students:    6900,
		Rating:      4.3,
		Price:       0,
		Level:       models.LevelBeginner,
		Category:    "Marketing",
	},
}

// SeedCmd returns the seed command, which loads sample courses into the configured backend.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample courses, skipping titles that already exist",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	existing, err := repo.ListCourses(cmd.Context())
	if err != nil {
		return err
	}

	titles := make(map[string]bool)
	for _, course := range existing {
		titles[course.Title] = true
	}

	created := 0
	for i := range sampleCourses {
		req := sampleCourses[i]
		if titles[req.Title] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.New(color.FgBlue).Sprint("EXISTS "), req.Title)
			continue
		}

		if err := req.Validate(); err != nil {
			return fmt.Errorf("sample course %q: %w", req.Title, err)
		}

		course, err := repo.CreateCourse(cmd.Context(), req.Course(config.Config.DefaultCourseImage))
		if err != nil {
			return err
		}

		created++
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", color.New(color.FgGreen).Sprint("CREATE "), course.Title, course.ID)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d created, %d already present\n", created, len(sampleCourses)-created)
	return nil
}
