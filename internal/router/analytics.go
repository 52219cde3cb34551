package router

import (
	"net/http"

	"coursecatalog/internal/analytics"
	"coursecatalog/internal/middleware"
	repo "coursecatalog/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"
)

func AnalyticsRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Catalog-wide analytics, computed on every request
	router.Get("/", getAnalyticsHandler)

	return router
}

// GET: /
func getAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := repo.Repository.ListCourses(r.Context())
	if err != nil {
		glog.Errorf("error listing courses for analytics: %v", err)
		middleware.RenderError(w, r, http.StatusInternalServerError, err)
		return
	}

	render.JSON(w, r, analytics.GenerateCatalogAnalytics(courses))
}
