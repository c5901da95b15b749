package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const MaxCompletionAttempts = 3

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type progressStore interface {
	Snapshot(ctx context.Context, userID string) (*fitness.User, error)
	ApplyCompletion(ctx context.Context, userID string, entryTimestamp time.Time, expected, next fitness.ProgressState) error
}

type Tracker struct {
	store       progressStore
	completions prometheus.Counter
}

// NewTracker creates the tracker. completions may be nil.
func NewTracker(store progressStore, completions prometheus.Counter) *Tracker {
	return &Tracker{
		store:       store,
		completions: completions,
	}
}

func (t *Tracker) Complete(ctx context.Context, userID string, entryTimestamp time.Time) (fitness.ProgressState, error) {
	return t.CompleteAt(ctx, userID, entryTimestamp, time.Now())
}

// CompleteAt marks the entry completed and advances the streak as of now.
// A lost race against a concurrent completion is retried on a fresh snapshot.
func (t *Tracker) CompleteAt(ctx context.Context, userID string, entryTimestamp, now time.Time) (_ fitness.ProgressState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.tracker.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	for attempt := 1; attempt <= MaxCompletionAttempts; attempt++ {
		user, err := t.store.Snapshot(ctx, userID)
		if err != nil {
			return fitness.ProgressState{}, fmt.Errorf("load user snapshot: %w", err)
		}

		completion, err := Advance(user, entryTimestamp, now)
		if err != nil {
			return fitness.ProgressState{}, err
		}
		if completion.AlreadyCompleted {
			return completion.Expected, nil
		}

		err = t.store.ApplyCompletion(ctx, userID, completion.EntryTimestamp, completion.Expected, completion.Next)
		if err == nil {
			if t.completions != nil {
				t.completions.Inc()
			}
			span.SetAttributes(attribute.Int("attempts", attempt))
			return completion.Next, nil
		}

		if !errors.Is(err, fitness.ErrAlreadyCompleted) && !errors.Is(err, fitness.ErrConcurrentUpdate) {
			return fitness.ProgressState{}, fmt.Errorf("apply completion: %w", err)
		}
		log.Debugf("complete workout for user [%s]: lost race on attempt %d: %s", userID, attempt, err)
	}

	return fitness.ProgressState{}, fmt.Errorf("complete workout after %d attempts: %w", MaxCompletionAttempts, fitness.ErrConcurrentUpdate)
}
