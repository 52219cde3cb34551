package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"coursecatalog/internal/firebase"
	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"

	"cloud.google.com/go/firestore"
	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errListenerStopped is recorded when the courses listener exits because its context ended.
var errListenerStopped = errors.New("courses listener stopped")

type FirebaseRepository struct {
	firestoreClient *firestore.Client

	coursesLock *sync.RWMutex
	courses     map[string]*models.Course
	// listenerErr is set once the courses listener exits. The cache is stale from then on.
	listenerErr error
}

// snapshotIterator is the part of *firestore.QuerySnapshotIterator the listener uses.
type snapshotIterator interface {
	Next() (*firestore.QuerySnapshot, error)
	Stop()
}

func newFirebaseRepository() *FirebaseRepository {
	return &FirebaseRepository{
		coursesLock: &sync.RWMutex{},
		courses:     make(map[string]*models.Course),
	}
}

// NewFirebaseRepository creates a course repository backed by Firestore. It blocks until the
// courses listener has delivered its first snapshot or stopped.
func NewFirebaseRepository(ctx context.Context) (*FirebaseRepository, error) {
	fr := newFirebaseRepository()

	firestoreClient, err := firebase.App.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v", err)
	}
	fr.firestoreClient = firestoreClient

	glog.Infof("⏳ Starting %s collection listener...", models.FirestoreCoursesCollection)
	query := firestoreClient.Collection(models.FirestoreCoursesCollection).Query
	if err := fr.startCoursesListener(query.Snapshots(firebase.Context)); err != nil {
		_ = firestoreClient.Close()
		return nil, err
	}
	glog.Infof("✅ Started %s collection listener.", models.FirestoreCoursesCollection)

	return fr, nil
}

// startCoursesListener applies snapshots from it to the cache in the background. It returns once
// the first snapshot is applied, or with the listener's error if it exits before that.
func (fr *FirebaseRepository) startCoursesListener(it snapshotIterator) error {
	done := make(chan error, 1)
	go func() {
		err := fr.listen(it, done)
		if err != nil {
			glog.Errorf("%v collection listener error: %v", models.FirestoreCoursesCollection, err)
		} else {
			glog.Infof("%v collection listener stopped", models.FirestoreCoursesCollection)
			err = errListenerStopped
		}

		fr.coursesLock.Lock()
		fr.listenerErr = err
		fr.coursesLock.Unlock()

		select {
		case done <- err:
		default:
		}
	}()

	return <-done
}

// listen applies every snapshot from it to the cache. The first successfully applied snapshot is
// signalled on done.
func (fr *FirebaseRepository) listen(it snapshotIterator, done chan<- error) error {
	defer it.Stop()

	signalled := false
	for {
		snap, err := it.Next()
		// DeadlineExceeded or Canceled will be returned when the context is done.
		if code := status.Code(err); code == codes.DeadlineExceeded || code == codes.Canceled ||
			errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Snapshots.Next: %v", err)
		}

		if snap != nil {
			if err := fr.applyChanges(snap.Changes); err != nil {
				return err
			}
		}

		if !signalled {
			done <- nil
			signalled = true
		}
	}
}

func (fr *FirebaseRepository) applyChanges(changes []firestore.DocumentChange) error {
	fr.coursesLock.Lock()
	defer fr.coursesLock.Unlock()

	for _, change := range changes {
		id := change.Doc.Ref.ID
		if change.Kind == firestore.DocumentRemoved {
			delete(fr.courses, id)
			continue
		}

		var c models.Course
		if err := mapstructure.Decode(change.Doc.Data(), &c); err != nil {
			return fmt.Errorf("error destructuring course %s: %v", id, err)
		}

		c.ID = id
		fr.courses[id] = &c
	}

	return nil
}

// ListCourses returns copies of the cached courses ordered by ID, which keeps pagination stable
// between requests.
func (fr *FirebaseRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	fr.coursesLock.RLock()
	defer fr.coursesLock.RUnlock()

	if fr.listenerErr != nil {
		return nil, qerrors.NewRepositoryError("list courses", fr.listenerErr)
	}

	courses := make([]*models.Course, 0, len(fr.courses))
	for _, course := range fr.courses {
		c := *course
		courses = append(courses, &c)
	}

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})

	return courses, nil
}

func (fr *FirebaseRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(course.ID).Create(ctx, map[string]interface{}{
		"title":       course.Title,
		"instructor":  course.Instructor,
		"description": course.Description,
		"image":       course.Image,
		"duration":    course.Duration,
		"students":    course.Students,
		"rating":      course.Rating,
		"price":       course.Price,
		"level":       string(course.Level),
		"category":    course.Category,
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil, qerrors.NewRepositoryError("create course", fmt.Errorf("course %s already exists", course.ID))
	}
	if err != nil {
		return nil, qerrors.NewRepositoryError("create course", err)
	}

	// Make the course visible before the listener catches up, so a redirect straight after
	// creation shows it.
	fr.coursesLock.Lock()
	c := *course
	fr.courses[course.ID] = &c
	fr.coursesLock.Unlock()

	return course, nil
}

func (fr *FirebaseRepository) DeleteCourse(ctx context.Context, id string) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreCoursesCollection).Doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return qerrors.NewRepositoryError("delete course", qerrors.CourseNotFoundError)
	}
	if err != nil {
		return qerrors.NewRepositoryError("delete course", err)
	}

	fr.coursesLock.Lock()
	delete(fr.courses, id)
	fr.coursesLock.Unlock()

	return nil
}

func (fr *FirebaseRepository) Close() error {
	return fr.firestoreClient.Close()
}
