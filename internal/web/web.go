package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"coursecatalog/internal/catalog"
	"coursecatalog/internal/models"
	"coursecatalog/internal/slug"

	"github.com/golang/glog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates holds every parsed page and partial.
var Templates = template.Must(Parse())

// Page is the data shared by every rendered page: the navbar needs the session, the login link and
// the current search so the search box keeps its value.
type Page struct {
	Title    string
	Session  *models.Session
	IsAdmin  bool
	LoginURL string
	State    catalog.State
}

// CatalogPage is the data for index.html.
type CatalogPage struct {
	Page
	View         *catalog.View
	TotalCourses int
	Manage       bool
	Levels       []models.CourseLevel
	// FormError is shown above the add-course form after a rejected submission.
	FormError string
}

// CoursePage is the data for course.html.
type CoursePage struct {
	Page
	Course *models.Course
}

// AnalyticsPage is the data for analytics.html.
type AnalyticsPage struct {
	Page
	Analytics *models.CatalogAnalytics
}

// ErrorPage is the data for error.html.
type ErrorPage struct {
	Page
	Status  int
	Message string
}

// Parse parses the embedded templates with the catalog helpers installed.
func Parse() (*template.Template, error) {
	funcMap := template.FuncMap{
		"slug": func(course *models.Course) string {
			return slug.Encode(course.Title, course.ID)
		},
		"catalogURL": CatalogURL,
		"formAction": FormAction,
		"pathEscape": url.PathEscape,
		"add": func(a, b int) int {
			return a + b
		},
		"price": func(price float64) string {
			if price == 0 {
				return "Free"
			}
			return fmt.Sprintf("$%.2f", price)
		},
		"rating": func(rating float64) string {
			return fmt.Sprintf("%.1f", rating)
		},
		"percentiles": func(p models.Percentiles) string {
			return fmt.Sprintf("$%.2f / $%.2f / $%.2f", p.P50, p.P90, p.P99)
		},
	}

	return template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
}

// CatalogURL returns the catalog link for an encoded query, keeping management mode on when set.
func CatalogURL(query string, manage bool) string {
	var b strings.Builder
	b.WriteString("/")
	if query != "" || manage {
		b.WriteString("?")
		b.WriteString(query)
	}
	if manage {
		if query != "" {
			b.WriteString("&")
		}
		b.WriteString("manage=1")
	}
	return b.String()
}

// FormAction returns path with the catalog state appended as its query, so a form handler can send
// the user back to the same view.
func FormAction(path string, state catalog.State) string {
	if query := state.Encode(); query != "" {
		return path + "?" + query
	}
	return path
}

// Render executes the named template into w with the given status. The page is buffered so a
// template error still produces a clean 500.
func Render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := Templates.ExecuteTemplate(&buf, name, data); err != nil {
		glog.Errorf("error rendering %s: %v", name, err)
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		glog.Warningf("failed to write response: %v", err)
	}
}
