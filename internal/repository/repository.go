package repository

import (
	"context"
	"fmt"

	"coursecatalog/internal/config"
	"coursecatalog/internal/firebase"
	"coursecatalog/internal/models"

	"github.com/golang/glog"
)

// CourseRepository encapsulates the logic to access courses from a database.
type CourseRepository interface {
	// ListCourses returns every stored course, in a stable order.
	ListCourses(ctx context.Context) ([]*models.Course, error)
	// CreateCourse saves a new course and returns it as stored.
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	// DeleteCourse removes the course with the given ID. Deleting a course that does not exist
	// returns qerrors.CourseNotFoundError.
	DeleteCourse(ctx context.Context, id string) error
	// Close releases the underlying connection.
	Close() error
}

var Repository CourseRepository

// Initialize creates the repository selected by cfg.Backend and stores it in Repository.
func Initialize(ctx context.Context, cfg *config.ServerConfig) error {
	repo, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	Repository = repo
	return nil
}

// New creates the repository selected by cfg.Backend without touching the global.
func New(ctx context.Context, cfg *config.ServerConfig) (CourseRepository, error) {
	switch cfg.Backend {
	case config.BackendFirestore:
		if firebase.App == nil {
			if err := firebase.Initialize(ctx, cfg.FirebaseCredentials); err != nil {
				return nil, err
			}
		}

		repo, err := NewFirebaseRepository(ctx)
		if err != nil {
			return nil, fmt.Errorf("error creating Firebase repository: %v", err)
		}
		glog.Infof("✅ Successfully created Firebase repository client")
		return repo, nil
	case config.BackendSQLite:
		repo, err := NewSQLiteRepository(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite repository: %v", err)
		}
		glog.Infof("✅ Successfully opened SQLite repository at %s", cfg.SQLitePath)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown repository backend %q", cfg.Backend)
	}
}
