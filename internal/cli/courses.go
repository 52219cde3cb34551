package cli

import (
	"fmt"
	"io"
	"net/url"

	"coursecatalog/internal/catalog"
	"coursecatalog/internal/config"
	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"
	"coursecatalog/internal/slug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CoursesCmd returns the courses command group.
func CoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Inspect and manage stored courses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List courses, filtered and paginated like the catalog page",
		Long: `List courses through the same search, category and pagination rules as
the catalog page.

Usage:
  coursecatalog courses list
  coursecatalog courses list --search go --category Development
  coursecatalog courses list --page 2`,
		Args: cobra.NoArgs,
		RunE: runCoursesList,
	}
	list.Flags().String("search", "", "Search term matched against title, instructor and description")
	list.Flags().String("category", catalog.AllCategories, "Category to show")
	list.Flags().Int("page", 1, "Page to show")
	list.Flags().Bool("all", false, "Show every matching course instead of one page")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a course by ID",
		Args:  cobra.ExactArgs(1),
		RunE:  runCoursesDelete,
	})

	return cmd
}

func runCoursesList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	category, _ := cmd.Flags().GetString("category")
	page, _ := cmd.Flags().GetInt("page")
	all, _ := cmd.Flags().GetBool("all")

	repo, err := openRepository(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	courses, err := repo.ListCourses(cmd.Context())
	if err != nil {
		return err
	}

	values := url.Values{}
	values.Set(catalog.SearchParam, search)
	values.Set(catalog.CategoryParam, category)
	values.Set(catalog.PageParam, fmt.Sprint(page))

	view := catalog.NewEngine(config.Config.PageSize).QueryValues(courses, values)
	items := view.Items
	if all {
		items = view.Filtered
	}

	printCourses(cmd.OutOrStdout(), items)
	if !all && view.TotalPages > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d · %d matching of %d courses\n",
			view.State.Page, view.TotalPages, len(view.Filtered), len(courses))
	}
	return nil
}

func runCoursesDelete(cmd *cobra.Command, args []string) error {
	repo, err := openRepository(cmd.Context())
	if err != nil {
		return err
	}
	defer repo.Close()

	err = repo.DeleteCourse(cmd.Context(), args[0])
	if qerrors.IsNotFound(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.New(color.FgYellow).Sprint("MISSING"), args[0])
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.New(color.FgRed).Sprint("DELETED"), args[0])
	return nil
}

func printCourses(w io.Writer, courses []*models.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, color.New(color.FgYellow).Sprint("No courses found."))
		return
	}

	for _, course := range courses {
		fmt.Fprintf(w, "%s  %s\n", color.New(color.FgBlue).Sprint(course.ID), color.New(color.Bold).Sprint(course.Title))
		fmt.Fprintf(w, "    %s · %s · %s · %.1f★ · $%.2f\n", course.Instructor, course.Category, course.Level, course.Rating, course.Price)
		fmt.Fprintf(w, "    /course/%s\n", slug.Encode(course.Title, course.ID))
	}
}
