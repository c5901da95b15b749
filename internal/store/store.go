package store

import (
	"context"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
)

const LeaderboardSize = 10

// Store persists the user aggregate. Implementations resolve per-user races
// with conditional updates instead of in-process locks held by callers.
type Store interface {
	CreateUser(ctx context.Context, user *fitness.User) error
	UserByEmail(ctx context.Context, email string) (*fitness.User, error)
	// Snapshot returns the user with the full workout log, oldest first.
	Snapshot(ctx context.Context, userID string) (*fitness.User, error)
	SaveGoal(ctx context.Context, userID string, goal fitness.GoalProfile) error
	AppendWorkout(ctx context.Context, userID string, entry fitness.WorkoutEntry) error
	// ApplyCompletion flips the entry to completed only if it is still
	// incomplete, and writes next only if the stored progress equals expected.
	ApplyCompletion(ctx context.Context, userID string, entryTimestamp time.Time, expected, next fitness.ProgressState) error
	Leaderboard(ctx context.Context, limit int) ([]fitness.LeaderboardEntry, error)
	Ping(ctx context.Context) error
	Close()
}
