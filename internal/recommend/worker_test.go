package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/stretchr/testify/require"
)

// notifyingStore wraps fakeCourseStore and signals every upsert, so tests
// can wait for the worker goroutine instead of sleeping.
type notifyingStore struct {
	*fakeCourseStore
	mu       sync.Mutex
	upserted chan models.Course
}

func newNotifyingStore() *notifyingStore {
	return &notifyingStore{
		fakeCourseStore: &fakeCourseStore{},
		upserted:        make(chan models.Course, 32),
	}
}

func (s *notifyingStore) UpsertBySourceHash(ctx context.Context, course *models.Course) error {
	s.mu.Lock()
	err := s.fakeCourseStore.UpsertBySourceHash(ctx, course)
	s.mu.Unlock()
	if err == nil {
		s.upserted <- *course
	}
	return err
}

func waitForUpserts(t *testing.T, store *notifyingStore, n int) []models.Course {
	t.Helper()
	var got []models.Course
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case c := <-store.upserted:
			got = append(got, c)
		case <-timeout:
			t.Fatalf("timed out waiting for %d upserts, got %d", n, len(got))
		}
	}
	return got
}

func TestWorkerPopulatesInterest(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{results: []models.Course{
		catalogCourse("guitar-basics", price(200), rating(4.5), "music"),
		catalogCourse("guitar-advanced", price(400), rating(4.8), "music"),
	}}
	store := newNotifyingStore()
	worker := NewWorker(store, provider, 4, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	require.True(t, worker.Enqueue("guitar"))

	saved := waitForUpserts(t, store, 2)
	for _, c := range saved {
		// Discovered courses are tagged with the searched interest.
		require.Equal(t, []string{"guitar"}, c.Categories)
		require.NotEmpty(t, c.SourceHash)
	}
}

func TestWorkerCapsResultsPerInterest(t *testing.T) {
	t.Parallel()

	var results []models.Course
	for i := 0; i < 8; i++ {
		results = append(results, catalogCourse(string(rune('a'+i)), price(100), nil, "music"))
	}
	provider := &fakeProvider{results: results}
	store := newNotifyingStore()
	worker := NewWorker(store, provider, 4, 3)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	require.True(t, worker.Enqueue("music"))

	waitForUpserts(t, store, 3)

	// No fourth upsert arrives.
	select {
	case c := <-store.upserted:
		t.Fatalf("unexpected extra upsert %q", c.Title)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWorkerEnqueueDropsWhenFull(t *testing.T) {
	t.Parallel()

	// Never started, so the queue only drains by capacity.
	worker := NewWorker(newNotifyingStore(), &fakeProvider{}, 2, 10)

	require.True(t, worker.Enqueue("first"))
	require.True(t, worker.Enqueue("second"))
	require.False(t, worker.Enqueue("third"))
}

func TestWorkerSearchFailureIsolated(t *testing.T) {
	t.Parallel()

	provider := &failThenServeProvider{
		failFor: "broken",
		results: []models.Course{catalogCourse("piano-101", price(100), nil, "music")},
	}
	store := newNotifyingStore()
	worker := NewWorker(store, provider, 4, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	require.True(t, worker.Enqueue("broken"))
	require.True(t, worker.Enqueue("piano"))

	// The failing interest never blocks the one behind it.
	saved := waitForUpserts(t, store, 1)
	require.Equal(t, "piano-101", saved[0].Title)
}

func TestWorkerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	worker := NewWorker(newNotifyingStore(), &fakeProvider{}, 4, 10)

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		worker.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

// failThenServeProvider fails one named interest and serves the rest.
type failThenServeProvider struct {
	failFor string
	results []models.Course
}

func (p *failThenServeProvider) SearchCourses(_ context.Context, _ PriceBucket) ([]models.Course, error) {
	return nil, errors.New("not used")
}

func (p *failThenServeProvider) SearchByInterest(_ context.Context, interest string) ([]models.Course, error) {
	if interest == p.failFor {
		return nil, errors.New("search backend unavailable")
	}
	return append([]models.Course(nil), p.results...), nil
}
