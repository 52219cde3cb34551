package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"

	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS courses (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    instructor TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    duration TEXT NOT NULL DEFAULT '',
    students INTEGER NOT NULL DEFAULT 0,
    rating REAL NOT NULL DEFAULT 0,
    price REAL NOT NULL DEFAULT 0,
    level TEXT NOT NULL,
    category TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_courses_category ON courses(category);
`

// SQLiteRepository stores courses in a local SQLite database file.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the database at path and applies the schema.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// ListCourses returns courses in insertion order.
func (r *SQLiteRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, instructor, description, image, duration, students, rating, price, level, category
		FROM courses
		ORDER BY rowid
	`)
	if err != nil {
		return nil, qerrors.NewRepositoryError("list courses", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var c models.Course
		var level string
		if err := rows.Scan(&c.ID, &c.Title, &c.Instructor, &c.Description, &c.Image, &c.Duration,
			&c.Students, &c.Rating, &c.Price, &level, &c.Category); err != nil {
			return nil, qerrors.NewRepositoryError("list courses", err)
		}
		c.Level = models.CourseLevel(level)
		courses = append(courses, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, qerrors.NewRepositoryError("list courses", err)
	}
	return courses, nil
}

func (r *SQLiteRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO courses (id, title, instructor, description, image, duration, students, rating, price, level, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, course.ID, course.Title, course.Instructor, course.Description, course.Image, course.Duration,
		course.Students, course.Rating, course.Price, string(course.Level), course.Category)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
		return nil, qerrors.NewRepositoryError("create course", fmt.Errorf("course %s already exists", course.ID))
	}
	if err != nil {
		return nil, qerrors.NewRepositoryError("create course", err)
	}

	return course, nil
}

func (r *SQLiteRepository) DeleteCourse(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return qerrors.NewRepositoryError("delete course", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return qerrors.NewRepositoryError("delete course", err)
	}
	if affected == 0 {
		return qerrors.NewRepositoryError("delete course", qerrors.CourseNotFoundError)
	}

	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
