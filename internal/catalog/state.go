package catalog

import (
	"net/url"
	"strconv"
)

// State is the catalog query state: search term, selected category and current page. Values are
// immutable; every transition returns a new State.
type State struct {
	SearchTerm string
	Category   string
	Page       int
}

// InitialState is ("", "All", 1).
func InitialState() State {
	return State{SearchTerm: "", Category: AllCategories, Page: 1}
}

// SetSearchTerm changes the search term and goes back to the first page.
func (s State) SetSearchTerm(term string) State {
	s.SearchTerm = term
	s.Page = 1
	return s
}

// SetCategory changes the category and goes back to the first page.
func (s State) SetCategory(category string) State {
	s.Category = category
	s.Page = 1
	return s
}

// SetPage moves to page if it lies in [1, totalPages]. Otherwise the state is returned unchanged.
func (s State) SetPage(page int, totalPages int) State {
	if page < 1 || page > totalPages {
		return s
	}
	s.Page = page
	return s
}

// CoursesChanged is the transition taken when the underlying course list changes.
func (s State) CoursesChanged() State {
	s.Page = 1
	return s
}

// Query parameter names used to carry State in catalog URLs.
const (
	SearchParam   = "q"
	CategoryParam = "category"
	PageParam     = "page"
)

// StateFromQuery replays the URL query through the state machine: search term, then category,
// then page. The page is only accepted when it lies within totalPages(state), which is evaluated
// after the filters are applied.
func StateFromQuery(values url.Values, totalPages func(State) int) State {
	state := InitialState()

	if term := values.Get(SearchParam); term != "" {
		state = state.SetSearchTerm(term)
	}
	if category := values.Get(CategoryParam); category != "" {
		state = state.SetCategory(category)
	}
	if raw := values.Get(PageParam); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state = state.SetPage(page, totalPages(state))
		}
	}

	return state
}

// Values encodes the state as URL query parameters, omitting defaults.
func (s State) Values() url.Values {
	values := url.Values{}
	if s.SearchTerm != "" {
		values.Set(SearchParam, s.SearchTerm)
	}
	if s.Category != "" && s.Category != AllCategories {
		values.Set(CategoryParam, s.Category)
	}
	if s.Page > 1 {
		values.Set(PageParam, strconv.Itoa(s.Page))
	}
	return values
}

// Encode returns Values().Encode().
func (s State) Encode() string {
	return s.Values().Encode()
}
