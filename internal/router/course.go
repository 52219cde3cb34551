package router

import (
	"encoding/json"
	"net/http"

	"coursecatalog/internal/auth"
	"coursecatalog/internal/config"
	"coursecatalog/internal/middleware"
	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"
	repo "coursecatalog/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

func CourseRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(auth.AuthCtx())

	// List every course
	router.Get("/", getCoursesHandler)

	// Modifying courses themselves
	router.Group(func(r chi.Router) {
		r.Use(middleware.SameOrigin())
		r.Use(auth.RequireAdmin())

		r.Post("/add", createCourseHandler)
		r.With(middleware.CourseCtx()).Delete("/delete/{courseID}", deleteCourseHandler)
	})

	// A delete without an ID is a client error whoever sends it
	router.Delete("/delete", middleware.MissingCourseID)
	router.Delete("/delete/", middleware.MissingCourseID)

	return router
}

// GET: /
func getCoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := repo.Repository.ListCourses(r.Context())
	if err != nil {
		glog.Errorf("error listing courses: %v", err)
		middleware.RenderError(w, r, http.StatusInternalServerError, err)
		return
	}

	render.JSON(w, r, courses)
}

// POST: /add
func createCourseHandler(w http.ResponseWriter, r *http.Request) {
	var req *models.CreateCourseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req == nil {
		middleware.RenderError(w, r, http.StatusBadRequest, qerrors.InvalidBody)
		return
	}

	if err := req.Validate(); err != nil {
		middleware.RenderError(w, r, http.StatusBadRequest, err)
		return
	}

	course, err := repo.Repository.CreateCourse(r.Context(), req.Course(config.Config.DefaultCourseImage))
	if err != nil {
		glog.Errorf("error creating course: %v", err)
		middleware.RenderError(w, r, http.StatusInternalServerError, err)
		return
	}

	glog.Infof("created course %s (%q)", course.ID, course.Title)
	render.JSON(w, r, course)
}

// DELETE: /delete/{courseID}
func deleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID := middleware.GetCourseID(r)

	err := repo.Repository.DeleteCourse(r.Context(), courseID)
	if err != nil {
		if qerrors.IsNotFound(err) {
			glog.Warningf("error deleting course %s: %v", courseID, err)
		} else {
			glog.Errorf("error deleting course %s: %v", courseID, err)
		}
		middleware.RenderError(w, r, http.StatusInternalServerError, err)
		return
	}

	glog.Infof("deleted course %s", courseID)
	w.WriteHeader(http.StatusNoContent)
}
