package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"coursecatalog/internal/config"
	rtr "coursecatalog/internal/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang/glog"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger,    // Log API Request Calls
		middleware.Recoverer, // Turn handler panics into 500s
	)

	router.Mount("/health", rtr.HealthRoutes())

	router.Route("/api", func(r chi.Router) {
		r.Mount("/courses", rtr.CourseRoutes())
		r.Mount("/analytics", rtr.AnalyticsRoutes())
	})

	router.Mount("/auth", rtr.AuthRoutes())
	router.Mount("/", rtr.PageRoutes())

	return router
}

// Handler wraps Routes with the configured CORS policy.
func Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.Config.AllowedOrigins,
		AllowedHeaders:   []string{"Cookie", "Content-Type"},
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
	})

	return c.Handler(Routes())
}

// Start serves the catalog until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context) error {
	if config.Config == nil {
		return errors.New("❌ Missing or invalid configuration!")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", config.Config.Port),
		Handler: Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		glog.Infof("Server is listening on port %v", config.Config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		glog.Infof("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
