package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"coursecatalog/internal/models"
	"coursecatalog/internal/qerrors"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type snapshotResult struct {
	snap *firestore.QuerySnapshot
	err  error
}

// fakeSnapshots replays results and then reports a cancelled context.
type fakeSnapshots struct {
	mu      sync.Mutex
	results []snapshotResult
	stopped bool
}

func (f *fakeSnapshots) Next() (*firestore.QuerySnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.results) == 0 {
		return nil, status.Error(codes.Canceled, "context canceled")
	}
	next := f.results[0]
	f.results = f.results[1:]
	return next.snap, next.err
}

func (f *fakeSnapshots) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSnapshots) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func TestListenerCancelledBeforeFirstSnapshot(t *testing.T) {
	fr := newFirebaseRepository()
	it := &fakeSnapshots{}

	result := make(chan error, 1)
	go func() { result <- fr.startCoursesListener(it) }()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, errListenerStopped)
	case <-time.After(5 * time.Second):
		t.Fatal("startCoursesListener did not return after the context was cancelled")
	}
	assert.True(t, it.isStopped())
}

func TestListenerErrorBeforeFirstSnapshot(t *testing.T) {
	fr := newFirebaseRepository()
	it := &fakeSnapshots{results: []snapshotResult{{err: status.Error(codes.PermissionDenied, "missing rules")}}}

	err := fr.startCoursesListener(it)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing rules")
}

func TestListCoursesAfterListenerFailure(t *testing.T) {
	fr := newFirebaseRepository()
	fr.courses["1-aaaaaaaaa"] = &models.Course{ID: "1-aaaaaaaaa", Title: "Go Fundamentals"}

	it := &fakeSnapshots{results: []snapshotResult{
		{snap: &firestore.QuerySnapshot{}},
		{err: status.Error(codes.Unavailable, "connection reset")},
	}}
	require.NoError(t, fr.startCoursesListener(it))

	var courses []*models.Course
	var err error
	assert.Eventually(t, func() bool {
		courses, err = fr.ListCourses(context.Background())
		return err != nil
	}, 5*time.Second, 10*time.Millisecond)

	assert.Nil(t, courses)
	var repoErr *qerrors.RepositoryError
	require.True(t, errors.As(err, &repoErr))
	assert.Equal(t, "list courses", repoErr.Op)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestListCoursesWhileListening(t *testing.T) {
	fr := newFirebaseRepository()
	fr.courses["2-bbbbbbbbb"] = &models.Course{ID: "2-bbbbbbbbb", Title: "Color Theory"}
	fr.courses["1-aaaaaaaaa"] = &models.Course{ID: "1-aaaaaaaaa", Title: "Go Fundamentals"}

	courses, err := fr.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "1-aaaaaaaaa", courses[0].ID)
	assert.Equal(t, "2-bbbbbbbbb", courses[1].ID)
}
