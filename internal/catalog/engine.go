package catalog

import (
	"net/url"

	"coursecatalog/internal/models"
)

// Engine runs the categories/filter/paginate pipeline with a configured page size.
type Engine struct {
	PageSize int
}

// NewEngine returns an Engine, falling back to DefaultPageSize for non-positive sizes.
func NewEngine(pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{PageSize: pageSize}
}

// View is everything the catalog page needs to render one state.
type View struct {
	State      State
	Categories []string
	// Filtered is the full filtered list, before pagination.
	Filtered   []*models.Course
	Items      []*models.Course
	TotalPages int
	// Pages is 1..TotalPages.
	Pages []int
}

// Paginate is Paginate with the engine's page size.
func (e *Engine) Paginate(filtered []*models.Course, page int) ([]*models.Course, int) {
	return Paginate(filtered, page, e.PageSize)
}

// Query computes the View for state over courses.
func (e *Engine) Query(courses []*models.Course, state State) *View {
	filtered := Filter(courses, state.SearchTerm, state.Category)
	items, totalPages := e.Paginate(filtered, state.Page)

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return &View{
		State:      state,
		Categories: Categories(courses),
		Filtered:   filtered,
		Items:      items,
		TotalPages: totalPages,
		Pages:      pages,
	}
}

// QueryValues builds the state from URL query values and computes its View.
func (e *Engine) QueryValues(courses []*models.Course, values url.Values) *View {
	state := StateFromQuery(values, func(s State) int {
		return TotalPages(len(Filter(courses, s.SearchTerm, s.Category)), e.PageSize)
	})
	return e.Query(courses, state)
}

// HasPrev reports whether a previous page exists.
func (v *View) HasPrev() bool {
	return v.State.Page > 1
}

// HasNext reports whether a next page exists.
func (v *View) HasNext() bool {
	return v.State.Page < v.TotalPages
}

// PageURL returns the query string for page p of the current filters.
func (v *View) PageURL(p int) string {
	return v.State.SetPage(p, v.TotalPages).Encode()
}

// CategoryURL returns the query string that selects category, keeping the search term.
func (v *View) CategoryURL(category string) string {
	return v.State.SetCategory(category).Encode()
}
