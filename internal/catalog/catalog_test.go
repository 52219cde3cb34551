package catalog

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"testing"

	"coursecatalog/internal/models"

	"github.com/google/go-cmp/cmp"
)

func createCourse(id int, title, instructor, description, category string) *models.Course {
	return &models.Course{
		ID:          fmt.Sprintf("170000000000%d-abcdefghi", id),
		Title:       title,
		Instructor:  instructor,
		Description: description,
		Category:    category,
		Level:       models.LevelBeginner,
	}
}

// createCourses returns 7 courses across 3 categories.
func createCourses() []*models.Course {
	return []*models.Course{
		createCourse(1, "Intro to Java", "Ada Lovelace", "Objects and classes", "Development"),
		createCourse(2, "Python Basics", "Guido", "Scripting for beginners", "Development"),
		createCourse(3, "Color Theory", "Josef Albers", "Interaction of color", "Design"),
		createCourse(4, "Typography", "Jan Tschichold", "Setting type", "Design"),
		createCourse(5, "Pandas in Depth", "Wes", "Dataframes with Python", "Data Science"),
		createCourse(6, "Statistics 101", "Florence", "Means, medians, JAVA examples", "Data Science"),
		createCourse(7, "Go Concurrency", "Rob", "Channels and goroutines", "Development"),
	}
}

func ids(courses []*models.Course) []string {
	result := make([]string, 0, len(courses))
	for _, c := range courses {
		result = append(result, c.ID)
	}
	return result
}

func TestCategories(t *testing.T) {
	categories := Categories(createCourses())

	expected := []string{"All", "Development", "Design", "Data Science"}
	if diff := cmp.Diff(expected, categories); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoriesEmpty(t *testing.T) {
	categories := Categories(nil)
	if len(categories) != 1 || categories[0] != AllCategories {
		t.Errorf("Expected only %q, got %v", AllCategories, categories)
	}
}

func TestFilterSearchTerm(t *testing.T) {
	courses := []*models.Course{
		createCourse(1, "Intro to Java", "Ada", "", "Development"),
		createCourse(2, "Python Basics", "Guido", "Scripting", "Development"),
	}

	filtered := Filter(courses, "java", AllCategories)
	if diff := cmp.Diff([]string{courses[0].ID}, ids(filtered)); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterMatchesInstructorAndDescription(t *testing.T) {
	courses := createCourses()

	filtered := Filter(courses, "JAVA", AllCategories)
	expected := []string{courses[0].ID, courses[5].ID}
	if diff := cmp.Diff(expected, ids(filtered)); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	filtered = Filter(courses, "guido", AllCategories)
	if diff := cmp.Diff([]string{courses[1].ID}, ids(filtered)); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterCategory(t *testing.T) {
	courses := createCourses()

	filtered := Filter(courses, "", "Design")
	expected := []string{courses[2].ID, courses[3].ID}
	if diff := cmp.Diff(expected, ids(filtered)); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	filtered = Filter(courses, "python", "Data Science")
	if diff := cmp.Diff([]string{courses[4].ID}, ids(filtered)); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	if filtered := Filter(courses, "", "Marketing"); len(filtered) != 0 {
		t.Errorf("Expected no courses for an unknown category, got %v", ids(filtered))
	}
}

func TestFilterDoesNotTrim(t *testing.T) {
	courses := createCourses()
	if filtered := Filter(courses, " java ", AllCategories); len(filtered) != 0 {
		t.Errorf("Expected the untrimmed term to match nothing, got %v", ids(filtered))
	}
}

var words = []string{"java", "Python", "go", "DATA", "design", "intro", "basics", "", "Rust"}

func randomCourses(r *rand.Rand, n int) []*models.Course {
	categories := []string{"Development", "Design", "Data Science"}
	courses := make([]*models.Course, n)
	for i := range courses {
		courses[i] = createCourse(i,
			words[r.Intn(len(words))]+" "+words[r.Intn(len(words))],
			words[r.Intn(len(words))],
			words[r.Intn(len(words))],
			categories[r.Intn(len(categories))])
	}
	return courses
}

func TestFilterProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		courses := randomCourses(r, r.Intn(20))
		term := words[r.Intn(len(words))]

		filtered := Filter(courses, term, AllCategories)
		for _, c := range filtered {
			haystack := strings.ToLower(c.Title + "\x00" + c.Instructor + "\x00" + c.Description)
			if !strings.Contains(haystack, strings.ToLower(term)) {
				t.Fatalf("Course %+v does not contain %q", c, term)
			}
		}

		// "All" never excludes by category.
		if got, want := len(Filter(courses, "", AllCategories)), len(courses); got != want {
			t.Fatalf("Expected %d courses with no filters, got %d", want, got)
		}
	}
}

func TestPaginate(t *testing.T) {
	courses := createCourses()

	items, totalPages := Paginate(courses, 1, 3)
	if totalPages != 3 {
		t.Errorf("Expected 3 pages, got %d", totalPages)
	}
	if diff := cmp.Diff(ids(courses[0:3]), ids(items)); diff != "" {
		t.Errorf("Page 1 mismatch (-want +got):\n%s", diff)
	}

	items, _ = Paginate(courses, 3, 3)
	if diff := cmp.Diff(ids(courses[6:7]), ids(items)); diff != "" {
		t.Errorf("Page 3 mismatch (-want +got):\n%s", diff)
	}

	items, _ = Paginate(courses, 4, 3)
	if items == nil || len(items) != 0 {
		t.Errorf("Expected an empty, non-nil page past the end, got %v", items)
	}

	items, _ = Paginate(courses, 0, 3)
	if len(items) != 0 {
		t.Errorf("Expected an empty page for page 0, got %v", ids(items))
	}
}

func TestPaginateTotals(t *testing.T) {
	for length := 0; length <= 20; length++ {
		courses := make([]*models.Course, length)
		for i := range courses {
			courses[i] = createCourse(i, "t", "i", "d", "c")
		}

		_, totalPages := Paginate(courses, 1, 3)
		expected := (length + 2) / 3
		if totalPages != expected {
			t.Errorf("Length %d: expected %d pages, got %d", length, expected, totalPages)
		}
		if (totalPages == 0) != (length == 0) {
			t.Errorf("Length %d: totalPages == 0 must hold exactly for empty lists", length)
		}
	}
}

func TestStateTransitions(t *testing.T) {
	state := InitialState()
	if state != (State{SearchTerm: "", Category: "All", Page: 1}) {
		t.Fatalf("Unexpected initial state %+v", state)
	}

	state = state.SetPage(3, 5)
	if state.Page != 3 {
		t.Errorf("Expected page 3, got %d", state.Page)
	}

	if got := state.SetSearchTerm("java"); got.Page != 1 || got.SearchTerm != "java" {
		t.Errorf("SetSearchTerm must reset to page 1, got %+v", got)
	}

	if got := state.SetCategory("Design"); got.Page != 1 || got.Category != "Design" {
		t.Errorf("SetCategory must reset to page 1, got %+v", got)
	}

	if got := state.CoursesChanged(); got.Page != 1 {
		t.Errorf("CoursesChanged must reset to page 1, got %+v", got)
	}

	for _, page := range []int{0, -1, 6} {
		if got := state.SetPage(page, 5); got != state {
			t.Errorf("SetPage(%d, 5) must be ignored, got %+v", page, got)
		}
	}
}

func TestStateFromQuery(t *testing.T) {
	engine := NewEngine(3)
	courses := createCourses()
	totalPages := func(s State) int {
		return TotalPages(len(Filter(courses, s.SearchTerm, s.Category)), engine.PageSize)
	}

	state := StateFromQuery(url.Values{"page": {"2"}}, totalPages)
	if state.Page != 2 {
		t.Errorf("Expected page 2, got %d", state.Page)
	}

	// Design only has one page, so page 2 is rejected.
	state = StateFromQuery(url.Values{"category": {"Design"}, "page": {"2"}}, totalPages)
	if state.Page != 1 || state.Category != "Design" {
		t.Errorf("Expected Design page 1, got %+v", state)
	}

	state = StateFromQuery(url.Values{"page": {"abc"}}, totalPages)
	if state != InitialState() {
		t.Errorf("Expected the initial state, got %+v", state)
	}
}

func TestStateValues(t *testing.T) {
	if encoded := InitialState().Encode(); encoded != "" {
		t.Errorf("Expected defaults to be omitted, got %q", encoded)
	}

	state := State{SearchTerm: "go lang", Category: "Data Science", Page: 2}
	expected := "category=Data+Science&page=2&q=go+lang"
	if encoded := state.Encode(); encoded != expected {
		t.Errorf("Expected %q, got %q", expected, encoded)
	}
}

func TestEngineQuery(t *testing.T) {
	engine := NewEngine(3)
	view := engine.Query(createCourses(), InitialState())

	if view.TotalPages != 3 {
		t.Errorf("Expected 3 pages, got %d", view.TotalPages)
	}
	if len(view.Items) != 3 || view.Items[0].Title != "Intro to Java" {
		t.Errorf("Expected items 1-3 on the first page, got %v", ids(view.Items))
	}
	if diff := cmp.Diff([]int{1, 2, 3}, view.Pages); diff != "" {
		t.Errorf("Pages mismatch (-want +got):\n%s", diff)
	}
	if len(view.Filtered) != 7 {
		t.Errorf("Expected 7 filtered courses, got %d", len(view.Filtered))
	}
	if view.HasPrev() || !view.HasNext() {
		t.Errorf("Expected only a next page from page 1")
	}
	if got := view.PageURL(2); got != "page=2" {
		t.Errorf("Expected page link %q, got %q", "page=2", got)
	}
	if got := view.CategoryURL("Design"); got != "category=Design" {
		t.Errorf("Expected category link %q, got %q", "category=Design", got)
	}
}

func TestEngineQueryEmpty(t *testing.T) {
	view := NewEngine(3).Query(nil, InitialState().SetSearchTerm("nothing"))
	if view.TotalPages != 0 || len(view.Pages) != 0 || len(view.Items) != 0 {
		t.Errorf("Expected an empty view, got %+v", view)
	}
}

func TestNewEngineDefaultPageSize(t *testing.T) {
	if engine := NewEngine(0); engine.PageSize != DefaultPageSize {
		t.Errorf("Expected page size %d, got %d", DefaultPageSize, engine.PageSize)
	}
}
