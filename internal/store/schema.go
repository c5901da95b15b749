package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	usersEmailConstraint     = "users_email_key"
	workoutsUserTSConstraint = "workouts_user_id_ts_key"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users
(
    id             UUID PRIMARY KEY,
    email          VARCHAR     NOT NULL,
    password_hash  VARCHAR     NOT NULL,
    goal           VARCHAR,
    level          VARCHAR,
    body_part      VARCHAR,
    bmi            DOUBLE PRECISION,
    no_equipment   BOOLEAN     NOT NULL DEFAULT FALSE,
    streak         INTEGER     NOT NULL DEFAULT 0 CHECK (streak >= 0),
    rank           VARCHAR     NOT NULL DEFAULT 'Bronze',
    total_workouts INTEGER     NOT NULL DEFAULT 0 CHECK (total_workouts >= 0),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT users_email_key UNIQUE (email)
);

CREATE INDEX IF NOT EXISTS ix_users_leaderboard ON users (streak DESC, total_workouts DESC);

CREATE TABLE IF NOT EXISTS workouts
(
    id        BIGSERIAL PRIMARY KEY,
    user_id   UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
    text      VARCHAR     NOT NULL,
    completed BOOLEAN     NOT NULL DEFAULT FALSE,
    ts        TIMESTAMPTZ NOT NULL,
    CONSTRAINT workouts_user_id_ts_key UNIQUE (user_id, ts)
);
`

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
