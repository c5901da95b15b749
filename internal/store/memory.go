package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
)

// Memory is an in-process store used for development and tests.
// Its mutex is the persistence boundary; callers never hold it.
type Memory struct {
	mutex   sync.RWMutex
	users   map[string]*fitness.User
	byEmail map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*fitness.User),
		byEmail: make(map[string]string),
	}
}

func (m *Memory) CreateUser(_ context.Context, user *fitness.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := m.byEmail[email]; ok {
		return fitness.ErrUserExists
	}
	m.users[user.ID] = cloneUser(user)
	m.byEmail[email] = user.ID
	return nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*fitness.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, fitness.ErrUserNotFound
	}
	return cloneUser(m.users[id]), nil
}

func (m *Memory) Snapshot(_ context.Context, userID string) (*fitness.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, fitness.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (m *Memory) SaveGoal(_ context.Context, userID string, goal fitness.GoalProfile) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return fitness.ErrUserNotFound
	}
	user.Goal = cloneGoal(&goal)
	return nil
}

func (m *Memory) AppendWorkout(_ context.Context, userID string, entry fitness.WorkoutEntry) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return fitness.ErrUserNotFound
	}
	entry.Timestamp = fitness.NormalizeTimestamp(entry.Timestamp)
	if user.FindWorkout(entry.Timestamp) >= 0 {
		return fitness.ErrDuplicateWorkout
	}
	user.Workouts = append(user.Workouts, entry)
	return nil
}

func (m *Memory) ApplyCompletion(_ context.Context, userID string, entryTimestamp time.Time, expected, next fitness.ProgressState) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return fitness.ErrUserNotFound
	}
	idx := user.FindWorkout(entryTimestamp)
	if idx < 0 {
		return fitness.ErrEntryNotFound
	}
	if user.Workouts[idx].Completed {
		return fitness.ErrAlreadyCompleted
	}
	if user.Progress != expected {
		return fitness.ErrConcurrentUpdate
	}

	user.Workouts[idx].Completed = true
	user.Progress = next
	return nil
}

func (m *Memory) Leaderboard(_ context.Context, limit int) ([]fitness.LeaderboardEntry, error) {
	type row struct {
		entry fitness.LeaderboardEntry
		total int
	}
	if limit <= 0 {
		limit = LeaderboardSize
	}

	m.mutex.RLock()
	rows := make([]row, 0, len(m.users))
	for _, u := range m.users {
		rows = append(rows, row{
			entry: fitness.LeaderboardEntry{
				Email:  u.Email,
				Streak: u.Progress.Streak,
				Rank:   u.Progress.Rank,
			},
			total: u.Progress.TotalWorkouts,
		})
	}
	m.mutex.RUnlock()

	slices.SortFunc(rows, func(a, b row) int {
		if a.entry.Streak != b.entry.Streak {
			return b.entry.Streak - a.entry.Streak
		}
		if a.total != b.total {
			return b.total - a.total
		}
		return strings.Compare(a.entry.Email, b.entry.Email)
	})

	entries := make([]fitness.LeaderboardEntry, 0, min(limit, len(rows)))
	for _, r := range rows[:min(limit, len(rows))] {
		entries = append(entries, r.entry)
	}
	return entries, nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) Close() {}

func cloneUser(u *fitness.User) *fitness.User {
	c := *u
	c.Workouts = slices.Clone(u.Workouts)
	c.Goal = cloneGoal(u.Goal)
	return &c
}

func cloneGoal(g *fitness.GoalProfile) *fitness.GoalProfile {
	if g == nil {
		return nil
	}
	c := *g
	if g.BMI != nil {
		bmi := *g.BMI
		c.BMI = &bmi
	}
	return &c
}
