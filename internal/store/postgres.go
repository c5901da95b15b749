package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/forgezone/internal/fitness"
	"github.com/2beens/forgezone/internal/telemetry/tracing"
	"github.com/2beens/forgezone/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{
		db: db,
	}
}

func (p *Postgres) CreateUser(ctx context.Context, user *fitness.User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = p.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, streak, rank, total_workouts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		user.ID,
		strings.ToLower(user.Email),
		user.PasswordHash,
		user.Progress.Streak,
		user.Progress.Rank,
		user.Progress.TotalWorkouts,
		user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) && pkg.ViolatedConstraint(err) == usersEmailConstraint {
			return fitness.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const userColumns = `id, email, password_hash, goal, level, body_part, bmi, no_equipment, streak, rank, total_workouts, created_at`

func scanUser(row pgx.Row) (*fitness.User, error) {
	var (
		user        fitness.User
		goal        *string
		level       *string
		bodyPart    *string
		bmi         *float64
		noEquipment bool
		rank        string
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash,
		&goal, &level, &bodyPart, &bmi, &noEquipment,
		&user.Progress.Streak, &rank, &user.Progress.TotalWorkouts,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fitness.ErrUserNotFound
		}
		return nil, err
	}

	user.Progress.Rank = fitness.Rank(rank)
	user.CreatedAt = user.CreatedAt.UTC()
	if goal != nil && level != nil && bodyPart != nil {
		user.Goal = &fitness.GoalProfile{
			Goal:        fitness.Goal(*goal),
			Level:       fitness.Level(*level),
			BodyPart:    fitness.BodyPart(*bodyPart),
			BMI:         bmi,
			NoEquipment: noEquipment,
		}
	}
	return &user, nil
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (_ *fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.users.byemail")
	defer func() {
		if !errors.Is(err, fitness.ErrUserNotFound) {
			tracing.EndSpanWithErrCheck(span, err)
			return
		}
		span.End()
	}()

	user, err := scanUser(p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(email),
	))
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// Snapshot loads the user row and the workout log concurrently.
func (p *Postgres) Snapshot(ctx context.Context, userID string) (_ *fitness.User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.users.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	var (
		user     *fitness.User
		workouts []fitness.WorkoutEntry
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := scanUser(p.db.QueryRow(gCtx,
			`SELECT `+userColumns+` FROM users WHERE id = $1`,
			userID,
		))
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		w, err := p.workouts(gCtx, userID)
		if err != nil {
			return fmt.Errorf("list workouts: %w", err)
		}
		workouts = w
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	user.Workouts = workouts
	return user, nil
}

func (p *Postgres) workouts(ctx context.Context, userID string) ([]fitness.WorkoutEntry, error) {
	rows, err := p.db.Query(ctx, `
		SELECT text, completed, ts
		FROM workouts
		WHERE user_id = $1
		ORDER BY ts, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]fitness.WorkoutEntry, 0)
	for rows.Next() {
		var w fitness.WorkoutEntry
		if err := rows.Scan(&w.Text, &w.Completed, &w.Timestamp); err != nil {
			return nil, err
		}
		w.Timestamp = fitness.NormalizeTimestamp(w.Timestamp)
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func (p *Postgres) SaveGoal(ctx context.Context, userID string, goal fitness.GoalProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.users.savegoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := p.db.Exec(ctx, `
		UPDATE users
		SET goal = $2, level = $3, body_part = $4, bmi = $5, no_equipment = $6
		WHERE id = $1
	`,
		userID,
		goal.Goal, goal.Level, goal.BodyPart, goal.BMI, goal.NoEquipment,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fitness.ErrUserNotFound
	}
	return nil
}

func (p *Postgres) AppendWorkout(ctx context.Context, userID string, entry fitness.WorkoutEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.workouts.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = p.db.Exec(ctx, `
		INSERT INTO workouts (user_id, text, completed, ts)
		VALUES ($1, $2, $3, $4)
	`,
		userID,
		entry.Text,
		entry.Completed,
		fitness.NormalizeTimestamp(entry.Timestamp),
	)
	if err != nil {
		switch {
		case pkg.IsUniqueViolationError(err) && pkg.ViolatedConstraint(err) == workoutsUserTSConstraint:
			return fitness.ErrDuplicateWorkout
		case pkg.IsForeignKeyViolationError(err):
			return fitness.ErrUserNotFound
		}
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

func (p *Postgres) ApplyCompletion(
	ctx context.Context,
	userID string,
	entryTimestamp time.Time,
	expected, next fitness.ProgressState,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.workouts.applycompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	ts := fitness.NormalizeTimestamp(entryTimestamp)
	tag, err := tx.Exec(ctx, `
		UPDATE workouts
		SET completed = TRUE
		WHERE user_id = $1 AND ts = $2 AND completed = FALSE
	`, userID, ts)
	if err != nil {
		return fmt.Errorf("mark workout completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM workouts WHERE user_id = $1 AND ts = $2)`,
			userID, ts,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check workout exists: %w", err)
		}
		if exists {
			return fitness.ErrAlreadyCompleted
		}
		return fitness.ErrEntryNotFound
	}

	tag, err = tx.Exec(ctx, `
		UPDATE users
		SET streak = $2, rank = $3, total_workouts = $4
		WHERE id = $1 AND streak = $5 AND total_workouts = $6
	`,
		userID,
		next.Streak, next.Rank, next.TotalWorkouts,
		expected.Streak, expected.TotalWorkouts,
	)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fitness.ErrConcurrentUpdate
	}

	return nil
}

func (p *Postgres) Leaderboard(ctx context.Context, limit int) (_ []fitness.LeaderboardEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.store.users.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if limit <= 0 {
		limit = LeaderboardSize
	}

	rows, err := p.db.Query(ctx, `
		SELECT email, streak, rank
		FROM users
		ORDER BY streak DESC, total_workouts DESC, email
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]fitness.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var (
			entry fitness.LeaderboardEntry
			rank  string
		)
		if err := rows.Scan(&entry.Email, &entry.Streak, &rank); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entry.Rank = fitness.Rank(rank)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *Postgres) Close() {
	p.db.Close()
}
