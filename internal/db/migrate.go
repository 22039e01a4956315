package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema owns the plan -> day -> exercise hierarchy. Children reference their
// parent with ON DELETE CASCADE, so deleting a plan (or a plan's days) removes
// every descendant in the same statement.
const Schema = `
CREATE TABLE IF NOT EXISTS plans
(
    id         SERIAL PRIMARY KEY,
    week_start DATE        NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS days
(
    id        SERIAL PRIMARY KEY,
    plan_id   INTEGER NOT NULL REFERENCES plans (id) ON DELETE CASCADE,
    date      DATE    NOT NULL,
    title     VARCHAR(100),
    is_rest   BOOLEAN NOT NULL DEFAULT FALSE,
    completed BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS ix_days_plan_id ON days (plan_id);
CREATE INDEX IF NOT EXISTS ix_days_date ON days (date);

CREATE TABLE IF NOT EXISTS exercises
(
    id     SERIAL PRIMARY KEY,
    day_id INTEGER      NOT NULL REFERENCES days (id) ON DELETE CASCADE,
    name   VARCHAR(100) NOT NULL CHECK (name <> '')
);

CREATE INDEX IF NOT EXISTS ix_exercises_day_id ON exercises (day_id);
`

// Migrate ensures tables exist. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
