package router

import (
	"net/http"
	"strconv"
	"strings"

	"coursecatalog/internal/analytics"
	"coursecatalog/internal/auth"
	"coursecatalog/internal/catalog"
	"coursecatalog/internal/config"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"
	repo "coursecatalog/internal/repository"
	"coursecatalog/internal/slug"
	"coursecatalog/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/golang/glog"
)

const manageParam = "manage"

// PageRoutes serves the server-rendered catalog.
func PageRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.AuthCtx())

	router.Get("/", catalogPageHandler)
	router.Get("/course/{slug}", coursePageHandler)
	router.Get("/analytics", analyticsPageHandler)

	// Management forms
	router.Group(func(r chi.Router) {
		r.Use(middleware.SameOrigin())
		r.Use(auth.RequireAdmin())

		r.Post("/courses", createCourseFormHandler)
		r.With(middleware.CourseCtx()).Post("/courses/{courseID}/delete", deleteCourseFormHandler)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderErrorPage(w, r, http.StatusNotFound, "Page not found")
	})

	return router
}

// GET: /
func catalogPageHandler(w http.ResponseWriter, r *http.Request) {
	renderCatalog(w, r, http.StatusOK, "")
}

func renderCatalog(w http.ResponseWriter, r *http.Request, status int, formError string) {
	courses, err := repo.Repository.ListCourses(r.Context())
	if err != nil {
		glog.Errorf("error listing courses: %v", err)
		renderErrorPage(w, r, http.StatusInternalServerError, "The catalog is unavailable right now.")
		return
	}

	view := catalog.NewEngine(config.Config.PageSize).QueryValues(courses, r.URL.Query())

	page := &web.CatalogPage{
		Page:         newPage(r, "", view.State),
		View:         view,
		TotalCourses: len(courses),
		Levels:       models.Levels,
		FormError:    formError,
	}
	page.Manage = page.IsAdmin && r.URL.Query().Get(manageParam) == "1"

	web.Render(w, status, "index.html", page)
}

// GET: /course/{slug}
func coursePageHandler(w http.ResponseWriter, r *http.Request) {
	courseID := slug.Decode(chi.URLParam(r, "slug"))

	courses, err := repo.Repository.ListCourses(r.Context())
	if err != nil {
		glog.Errorf("error listing courses: %v", err)
		renderErrorPage(w, r, http.StatusInternalServerError, "The catalog is unavailable right now.")
		return
	}

	for _, course := range courses {
		if course.ID == courseID {
			web.Render(w, http.StatusOK, "course.html", &web.CoursePage{
				Page:   newPage(r, course.Title, catalog.InitialState()),
				Course: course,
			})
			return
		}
	}

	renderErrorPage(w, r, http.StatusNotFound, "Course not found")
}

// GET: /analytics
func analyticsPageHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := repo.Repository.ListCourses(r.Context())
	if err != nil {
		glog.Errorf("error listing courses for analytics: %v", err)
		renderErrorPage(w, r, http.StatusInternalServerError, "The catalog is unavailable right now.")
		return
	}

	web.Render(w, http.StatusOK, "analytics.html", &web.AnalyticsPage{
		Page:      newPage(r, "Analytics", catalog.InitialState()),
		Analytics: analytics.GenerateCatalogAnalytics(courses),
	})
}

// POST: /courses
func createCourseFormHandler(w http.ResponseWriter, r *http.Request) {
	req, err := createCourseRequestFromForm(r)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		values := returnState(r).Values()
		values.Set(manageParam, "1")
		r.URL.RawQuery = values.Encode()
		renderCatalog(w, r, http.StatusBadRequest, err.Error())
		return
	}

	course, err := repo.Repository.CreateCourse(r.Context(), req.Course(config.Config.DefaultCourseImage))
	if err != nil {
		glog.Errorf("error creating course: %v", err)
		renderErrorPage(w, r, http.StatusInternalServerError, "The course could not be saved.")
		return
	}

	glog.Infof("created course %s (%q)", course.ID, course.Title)
	http.Redirect(w, r, web.CatalogURL(returnState(r).Encode(), true), http.StatusSeeOther)
}

// POST: /courses/{courseID}/delete
func deleteCourseFormHandler(w http.ResponseWriter, r *http.Request) {
	courseID := middleware.GetCourseID(r)

	err := repo.Repository.DeleteCourse(r.Context(), courseID)
	if err != nil && !qerrors.IsNotFound(err) {
		glog.Errorf("error deleting course %s: %v", courseID, err)
		renderErrorPage(w, r, http.StatusInternalServerError, "The course could not be deleted.")
		return
	}
	if err != nil {
		glog.Infof("course %s was already deleted", courseID)
	}

	http.Redirect(w, r, web.CatalogURL(returnState(r).Encode(), true), http.StatusSeeOther)
}

// Helpers

func newPage(r *http.Request, title string, state catalog.State) web.Page {
	session, _ := auth.GetSessionFromRequest(r)
	return web.Page{
		Title:    title,
		Session:  session,
		IsAdmin:  auth.IsAdmin(session),
		LoginURL: config.Config.LoginURL,
		State:    state,
	}
}

// returnState is the catalog state a management form was posted from. Forms carry it in their
// action URL; the course list has changed, so the page goes back to 1.
func returnState(r *http.Request) catalog.State {
	query := r.URL.Query()

	state := catalog.InitialState()
	if term := query.Get(catalog.SearchParam); term != "" {
		state = state.SetSearchTerm(term)
	}
	if category := query.Get(catalog.CategoryParam); category != "" {
		state = state.SetCategory(category)
	}
	return state.CoursesChanged()
}

func renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	web.Render(w, status, "error.html", &web.ErrorPage{
		Page:    newPage(r, http.StatusText(status), catalog.InitialState()),
		Status:  status,
		Message: message,
	})
}

func createCourseRequestFromForm(r *http.Request) (*models.CreateCourseRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, qerrors.InvalidBody
	}

	req := &models.CreateCourseRequest{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Instructor:  strings.TrimSpace(r.PostFormValue("instructor")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Image:       strings.TrimSpace(r.PostFormValue("image")),
		Duration:    strings.TrimSpace(r.PostFormValue("duration")),
		Level:       models.CourseLevel(r.PostFormValue("level")),
		Category:    strings.TrimSpace(r.PostFormValue("category")),
	}

	var err error
	if req.Students, err = formInt(r, "students"); err != nil {
		return nil, err
	}
	if req.Rating, err = formFloat(r, "rating"); err != nil {
		return nil, err
	}
	if req.Price, err = formFloat(r, "price"); err != nil {
		return nil, err
	}

	return req, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &qerrors.ValidationError{Field: field, Message: "must be a whole number"}
	}
	return v, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &qerrors.ValidationError{Field: field, Message: "must be a number"}
	}
	return v, nil
}
