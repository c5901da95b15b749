package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
)

const (
	Window             = 7 * 24 * time.Hour
	MinRecentWorkouts  = 3
	cardioBMIThreshold = 25.0

	balanceNote = "Balance: Add back rows."
	legDayNote  = "Leg day missing — squat tomorrow!"
	cardioNote  = "Add 10 min cardio daily."
)

type bucket int

const (
	bucketChest bucket = iota
	bucketBack
	bucketLegs
	bucketCardio
)

var bucketKeywords = map[bucket][]string{
	bucketChest:  {"push", "bench"},
	bucketBack:   {"pull", "row"},
	bucketLegs:   {"squat", "lunge"},
	bucketCardio: {"run", "jog", "rope"},
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=insights_test

type snapshotLoader interface {
	Snapshot(ctx context.Context, userID string) (*fitness.User, error)
}

type Generator struct {
	store snapshotLoader
}

func NewGenerator(store snapshotLoader) *Generator {
	return &Generator{
		store: store,
	}
}

// Insights loads the user and returns feedback for the last 7 days, or nil
// when there is not enough data yet.
func (g *Generator) Insights(ctx context.Context, userID string, now time.Time) (_ *string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.generator.insights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := g.store.Snapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user snapshot: %w", err)
	}

	return Compose(user, now), nil
}

// Compose counts completed workouts in (now - 7d, now] per keyword bucket.
// One workout may land in several buckets.
func Compose(user *fitness.User, now time.Time) *string {
	windowStart := now.Add(-Window)

	var recent []string
	for _, w := range user.Workouts {
		if !w.Completed || !w.Timestamp.After(windowStart) || w.Timestamp.After(now) {
			continue
		}
		recent = append(recent, strings.ToLower(w.Text))
	}
	if len(recent) < MinRecentWorkouts {
		return nil
	}

	counts := make(map[bucket]int, len(bucketKeywords))
	for _, text := range recent {
		for b, keywords := range bucketKeywords {
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					counts[b]++
					break
				}
			}
		}
	}

	parts := []string{fmt.Sprintf("Great job on %d workouts this week!", len(recent))}
	if counts[bucketChest] > counts[bucketBack]+1 {
		parts = append(parts, balanceNote)
	}
	if counts[bucketLegs] < 2 {
		parts = append(parts, legDayNote)
	}
	if counts[bucketCardio] == 0 && user.Goal != nil && user.Goal.BMI != nil && *user.Goal.BMI > cardioBMIThreshold {
		parts = append(parts, cardioNote)
	}

	message := strings.Join(parts, " ")
	return &message
}
