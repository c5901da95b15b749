package fitness

import (
	"encoding/json"
	"time"
)

type Goal string

const (
	GoalBuildMuscle    Goal = "Build Muscle"
	GoalBuildEndurance Goal = "Build Endurance"
	GoalBuildStrength  Goal = "Build Strength"
)

var Goals = []Goal{GoalBuildMuscle, GoalBuildEndurance, GoalBuildStrength}

func (g Goal) IsValid() bool {
	switch g {
	case GoalBuildMuscle, GoalBuildEndurance, GoalBuildStrength:
		return true
	}
	return false
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type BodyPart string

const (
	BodyPartAbs       BodyPart = "abs"
	BodyPartChest     BodyPart = "chest"
	BodyPartBack      BodyPart = "back"
	BodyPartLegs      BodyPart = "legs"
	BodyPartArms      BodyPart = "arms"
	BodyPartShoulders BodyPart = "shoulders"
	BodyPartGlutes    BodyPart = "glutes"
	BodyPartCardio    BodyPart = "cardio"
)

var BodyParts = []BodyPart{
	BodyPartAbs, BodyPartChest, BodyPartBack, BodyPartLegs,
	BodyPartArms, BodyPartShoulders, BodyPartGlutes, BodyPartCardio,
}

func (b BodyPart) IsValid() bool {
	switch b {
	case BodyPartAbs, BodyPartChest, BodyPartBack, BodyPartLegs,
		BodyPartArms, BodyPartShoulders, BodyPartGlutes, BodyPartCardio:
		return true
	}
	return false
}

type Rank string

const (
	RankBronze  Rank = "Bronze"
	RankSilver  Rank = "Silver"
	RankGold    Rank = "Gold"
	RankDiamond Rank = "Diamond"
)

const (
	MinBMI = 10.0
	MaxBMI = 50.0

	// above this BMI suggestions are restricted to bodyweight exercises
	BodyweightBMIThreshold = 25.0
)

// WorkoutEntry is keyed within a user by its millisecond timestamp.
type WorkoutEntry struct {
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// GoalProfile is replaced as a whole on every update.
type GoalProfile struct {
	Goal        Goal     `json:"goal"`
	Level       Level    `json:"level"`
	BodyPart    BodyPart `json:"bodyPart"`
	BMI         *float64 `json:"bmi,omitempty"`
	NoEquipment bool     `json:"noEquipment"`
}

func (p *GoalProfile) Validate() error {
	if !p.Goal.IsValid() {
		return NewValidationError("goal", "unknown goal %q", p.Goal)
	}
	if !p.Level.IsValid() {
		return NewValidationError("level", "unknown level %q", p.Level)
	}
	if !p.BodyPart.IsValid() {
		return NewValidationError("bodyPart", "unknown body part %q", p.BodyPart)
	}
	return ValidateBMI(p.BMI)
}

func ValidateBMI(bmi *float64) error {
	if bmi == nil {
		return nil
	}
	if *bmi < MinBMI || *bmi > MaxBMI {
		return NewValidationError("bmi", "must be within [%g, %g], got %g", MinBMI, MaxBMI, *bmi)
	}
	return nil
}

type ProgressState struct {
	Streak        int  `json:"streak"`
	Rank          Rank `json:"rank"`
	TotalWorkouts int  `json:"totalWorkouts"`
}

func InitialProgress() ProgressState {
	return ProgressState{Streak: 0, Rank: RankBronze, TotalWorkouts: 0}
}

type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"-"`
	Workouts     []WorkoutEntry `json:"workouts"`
	Goal         *GoalProfile   `json:"goal,omitempty"`
	Progress     ProgressState  `json:"progress"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FindWorkout returns the index of the entry with the given timestamp, or -1.
func (u *User) FindWorkout(ts time.Time) int {
	ts = NormalizeTimestamp(ts)
	for i := range u.Workouts {
		if u.Workouts[i].Timestamp.Equal(ts) {
			return i
		}
	}
	return -1
}

// RecentWorkoutTexts returns the texts of the last n logged workouts, oldest first.
func (u *User) RecentWorkoutTexts(n int) []string {
	start := max(len(u.Workouts)-n, 0)
	texts := make([]string, 0, len(u.Workouts)-start)
	for _, w := range u.Workouts[start:] {
		texts = append(texts, w.Text)
	}
	return texts
}

type LeaderboardEntry struct {
	Email  string `json:"email"`
	Streak int    `json:"streak"`
	Rank   Rank   `json:"rank"`
}

// NormalizeTimestamp truncates to millisecond precision in UTC, the
// resolution entries are stored and compared with.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// MarshalJSON writes the timestamp with millisecond precision.
func (w WorkoutEntry) MarshalJSON() ([]byte, error) {
	type alias struct {
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
		Timestamp string `json:"timestamp"`
	}
	return json.Marshal(alias{
		Text:      w.Text,
		Completed: w.Completed,
		Timestamp: FormatTimestamp(w.Timestamp),
	})
}

const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return NormalizeTimestamp(t).Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, NewValidationError("timestamp", "invalid timestamp %q", s)
	}
	return NormalizeTimestamp(t), nil
}
