package progress

import (
	"time"

	"github.com/2beens/forgezone/internal/fitness"
)

// RankForStreak maps a streak to its rank tier. Lower bounds are inclusive.
func RankForStreak(streak int) fitness.Rank {
	switch {
	case streak >= 100:
		return fitness.RankDiamond
	case streak >= 30:
		return fitness.RankGold
	case streak >= 7:
		return fitness.RankSilver
	default:
		return fitness.RankBronze
	}
}

// Completion is the delta computed for one completion request.
type Completion struct {
	EntryTimestamp   time.Time
	Expected         fitness.ProgressState
	Next             fitness.ProgressState
	AlreadyCompleted bool
}

// Advance computes the progress after completing the entry keyed by
// entryTimestamp. Days are UTC calendar days; today is the UTC day of now.
// The user snapshot is not modified.
func Advance(user *fitness.User, entryTimestamp, now time.Time) (Completion, error) {
	idx := user.FindWorkout(entryTimestamp)
	if idx < 0 {
		return Completion{}, fitness.ErrEntryNotFound
	}

	current := user.Progress
	completion := Completion{
		EntryTimestamp: user.Workouts[idx].Timestamp,
		Expected:       current,
		Next:           current,
	}
	if user.Workouts[idx].Completed {
		completion.AlreadyCompleted = true
		return completion, nil
	}

	today := calendarDay(now)
	yesterday := today.AddDate(0, 0, -1)

	completedYesterday, completedToday := false, false
	for i, w := range user.Workouts {
		if !w.Completed || i == idx {
			continue
		}
		switch calendarDay(w.Timestamp) {
		case yesterday:
			completedYesterday = true
		case today:
			completedToday = true
		}
	}

	streak := current.Streak
	switch {
	case completedYesterday:
		streak++
	case !completedToday:
		streak = 1
	}

	completion.Next = fitness.ProgressState{
		Streak:        streak,
		Rank:          RankForStreak(streak),
		TotalWorkouts: current.TotalWorkouts + 1,
	}

	return completion, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
