package recommend

import (
	"context"

	"github.com/Dhanushcr18/Edu-wealth/internal/logger"
)

// Worker populates the catalog in the background when users declare
// interests. Tasks are handed off through a buffered queue so the request
// that declared the interest never waits on the search.
type Worker struct {
	queue      chan string
	courses    CourseStore
	provider   SearchProvider
	resultsCap int
	done       chan struct{}
}

// NewWorker creates a Worker. queueSize bounds the task backlog and
// resultsCap bounds how many search results one interest may add.
func NewWorker(courses CourseStore, provider SearchProvider, queueSize, resultsCap int) *Worker {
	if queueSize <= 0 {
		queueSize = 64
	}
	if resultsCap <= 0 {
		resultsCap = 10
	}
	return &Worker{
		queue:      make(chan string, queueSize),
		courses:    courses,
		provider:   provider,
		resultsCap: resultsCap,
		done:       make(chan struct{}),
	}
}

// Enqueue hands an interest to the worker without blocking.
// Returns false when the queue is full; the task is dropped, which is
// acceptable because catalog population is best-effort.
func (w *Worker) Enqueue(interest string) bool {
	select {
	case w.queue <- interest:
		return true
	default:
		logger.Log.Warn().
			Str("interest", logger.SanitizeText(interest)).
			Msg("Interest search queue full, dropping task")
		return false
	}
}

// Start consumes the queue until ctx is canceled. Each interest is searched
// independently; one interest's failure never aborts the others.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case interest := <-w.queue:
				w.populateInterest(ctx, interest)
			}
		}
	}()
}

// Wait blocks until the worker loop has exited.
func (w *Worker) Wait() {
	<-w.done
}

// populateInterest searches one interest and upserts its results.
// Individual course save failures are ignored; duplicates are no-ops by
// source hash.
func (w *Worker) populateInterest(ctx context.Context, interest string) {
	found, err := w.provider.SearchByInterest(ctx, interest)
	if err != nil {
		logger.Log.Error().Err(err).
			Str("interest", logger.SanitizeText(interest)).
			Msg("Course search failed for interest")
		return
	}
	if len(found) > w.resultsCap {
		found = found[:w.resultsCap]
	}

	added := 0
	for i := range found {
		// The searched interest becomes the stored tag set, matching how
		// interest-driven discoveries are keyed for later browse matches.
		found[i].Categories = []string{interest}
		if err := w.courses.UpsertBySourceHash(ctx, &found[i]); err != nil {
			logger.Log.Debug().Err(err).
				Str("title", found[i].Title).
				Msg("Skipping course that failed to persist")
			continue
		}
		added++
	}

	logger.Log.Info().
		Str("interest", logger.SanitizeText(interest)).
		Int("found", len(found)).
		Int("added", added).
		Msg("Background interest search complete")
}
