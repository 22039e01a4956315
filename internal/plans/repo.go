package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) FindPlanByWeek(ctx context.Context, weekStart Date) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.find_by_week")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("week_start", weekStart.String()))

	plan := &Plan{}
	var ws time.Time
	err = r.db.
		QueryRow(ctx, `
			SELECT id, week_start, created_at
			FROM plans
			WHERE week_start = $1
		`, weekStart.Time).
		Scan(&plan.ID, &ws, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("select plan: %w", err)
	}
	plan.WeekStart = DateOf(ws)

	plan.Days, err = loadPlanDays(ctx, r.db, plan.ID)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// FindDayByDate returns the first stored day at the given date. Plans do not overlap,
// so there is at most one.
func (r *Repo) FindDayByDate(ctx context.Context, date Date) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.find_day")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("date", date.String()))

	day, err := scanDay(r.db.QueryRow(ctx, `
		SELECT id, plan_id, date, COALESCE(title, ''), is_rest, completed
		FROM days
		WHERE date = $1
		ORDER BY id
		LIMIT 1
	`, date.Time))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("select day: %w", err)
	}

	day.Exercises, err = loadDayExercises(ctx, r.db, day.ID)
	if err != nil {
		return nil, err
	}

	return day, nil
}

// CreatePlan stores the plan with all its days and exercises in one transaction.
func (r *Repo) CreatePlan(ctx context.Context, input PlanInput) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("week_start", input.WeekStart.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	plan := &Plan{WeekStart: input.WeekStart}
	err = tx.QueryRow(ctx, `
		INSERT INTO plans (week_start)
		VALUES ($1)
		RETURNING id, created_at
	`, input.WeekStart.Time).Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return nil, mapWriteError("insert plan", err)
	}

	plan.Days, err = insertDays(ctx, tx, plan.ID, input.Days)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// ReplacePlanDays drops every day of the plan, exercises included, and stores the given ones
// instead. Either all of it happens or none.
func (r *Repo) ReplacePlanDays(ctx context.Context, plan *Plan, days []DayInput) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.replace_days")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("plan_id", plan.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		err = finishTx(ctx, tx, err)
	}()

	updated := &Plan{ID: plan.ID}
	var ws time.Time
	err = tx.QueryRow(ctx, `
		SELECT week_start, created_at
		FROM plans
		WHERE id = $1
		FOR UPDATE
	`, plan.ID).Scan(&ws, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("lock plan: %w", err)
	}
	updated.WeekStart = DateOf(ws)

	if _, err = tx.Exec(ctx, `DELETE FROM days WHERE plan_id = $1`, plan.ID); err != nil {
		return nil, fmt.Errorf("delete days: %w", err)
	}

	updated.Days, err = insertDays(ctx, tx, plan.ID, days)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repo) SetDayCompleted(ctx context.Context, dayID int, completed bool) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.set_day_completed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("day_id", dayID), attribute.Bool("completed", completed))

	day, err := scanDay(r.db.QueryRow(ctx, `
		UPDATE days SET completed = $1
		WHERE id = $2
		RETURNING id, plan_id, date, COALESCE(title, ''), is_rest, completed
	`, completed, dayID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, fmt.Errorf("update day: %w", err)
	}

	day.Exercises, err = loadDayExercises(ctx, r.db, day.ID)
	if err != nil {
		return nil, err
	}

	return day, nil
}

// DeletePlan removes the plan of the given week. Days and exercises go with it.
func (r *Repo) DeletePlan(ctx context.Context, weekStart Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("week_start", weekStart.String()))

	tag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE week_start = $1`, weekStart.Time)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// DeleteAllPlans wipes every plan and returns how many were removed.
func (r *Repo) DeleteAllPlans(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete_all")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM plans`)
	if err != nil {
		return 0, fmt.Errorf("delete plans: %w", err)
	}
	return tag.RowsAffected(), nil
}

func finishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapWriteError("commit", err)
	}
	return nil
}

// mapWriteError turns constraint violations into the package's errors. A foreign
// key failure means the owning plan was deleted while its days were written.
func mapWriteError(op string, err error) error {
	switch {
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrPlanExists, err)
	case pkg.IsForeignKeyViolationError(err):
		return fmt.Errorf("%s: %w: %w", op, ErrPlanNotFound, err)
	case pkg.IsIntegrityConstraintViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrIntegrityViolation, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func insertDays(ctx context.Context, tx pgx.Tx, planID int, inputs []DayInput) ([]Day, error) {
	days := make([]Day, 0, len(inputs))
	for _, in := range inputs {
		day := Day{
			PlanID:    planID,
			Date:      in.Date,
			Title:     in.Title,
			IsRest:    in.IsRest,
			Completed: in.Completed,
			Exercises: make([]Exercise, 0, len(in.Exercises)),
		}
		err := tx.QueryRow(ctx, `
			INSERT INTO days (plan_id, date, title, is_rest, completed)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5)
			RETURNING id
		`, planID, in.Date.Time, in.Title, in.IsRest, in.Completed).Scan(&day.ID)
		if err != nil {
			return nil, mapWriteError("insert day", err)
		}

		for _, ex := range in.Exercises {
			exercise := Exercise{Name: strings.TrimSpace(ex.Name)}
			err := tx.QueryRow(ctx, `
				INSERT INTO exercises (day_id, name)
				VALUES ($1, $2)
				RETURNING id
			`, day.ID, exercise.Name).Scan(&exercise.ID)
			if err != nil {
				return nil, mapWriteError("insert exercise", err)
			}
			day.Exercises = append(day.Exercises, exercise)
		}

		days = append(days, day)
	}
	return days, nil
}

func scanDay(row pgx.Row) (*Day, error) {
	day := &Day{}
	var date time.Time
	if err := row.Scan(&day.ID, &day.PlanID, &date, &day.Title, &day.IsRest, &day.Completed); err != nil {
		return nil, err
	}
	day.Date = DateOf(date)
	return day, nil
}

func loadPlanDays(ctx context.Context, q querier, planID int) ([]Day, error) {
	rows, err := q.Query(ctx, `
		SELECT d.id, d.plan_id, d.date, COALESCE(d.title, ''), d.is_rest, d.completed, e.id, e.name
		FROM days d
		LEFT JOIN exercises e ON e.day_id = d.id
		WHERE d.plan_id = $1
		ORDER BY d.date, d.id, e.id
	`, planID)
	if err != nil {
		return nil, fmt.Errorf("select days: %w", err)
	}
	defer rows.Close()

	days := make([]Day, 0, 7)
	for rows.Next() {
		var day Day
		var date time.Time
		var exerciseID *int
		var exerciseName *string
		if err := rows.Scan(
			&day.ID, &day.PlanID, &date, &day.Title, &day.IsRest, &day.Completed,
			&exerciseID, &exerciseName,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if len(days) == 0 || days[len(days)-1].ID != day.ID {
			day.Date = DateOf(date)
			day.Exercises = []Exercise{}
			days = append(days, day)
		}
		if exerciseID != nil && exerciseName != nil {
			last := &days[len(days)-1]
			last.Exercises = append(last.Exercises, Exercise{ID: *exerciseID, Name: *exerciseName})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return days, nil
}

func loadDayExercises(ctx context.Context, q querier, dayID int) ([]Exercise, error) {
	rows, err := q.Query(ctx, `
		SELECT id, name
		FROM exercises
		WHERE day_id = $1
		ORDER BY id
	`, dayID)
	if err != nil {
		return nil, fmt.Errorf("select exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return exercises, nil
}
