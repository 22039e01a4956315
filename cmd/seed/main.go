// Package main seeds the database with plans for the current and the next
// week: a different split each weekday and a rest weekend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitplan/internal/config"
	"github.com/2beens/fitplan/internal/db"
	"github.com/2beens/fitplan/internal/plans"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var weekdaySplits = []plans.Split{
	plans.SplitFullBody,
	plans.SplitPush,
	plans.SplitPull,
	plans.SplitLegs,
	plans.SplitCore,
}

// planSeeder is satisfied by *plans.Repo.
type planSeeder interface {
	DeleteAllPlans(ctx context.Context) (int64, error)
	CreatePlan(ctx context.Context, input plans.PlanInput) (*plans.Plan, error)
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	clean := flag.Bool("clean", false, "delete all existing plans before seeding")
	flag.Parse()

	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := run(ctx, *env, *configPath, *clean)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, env, configPath string, clean bool) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITPLAN_DB_PASSWORD"),
	})
	if err != nil {
		return fmt.Errorf("db pool: %w", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return seed(ctx, plans.NewRepo(dbPool), clean, time.Now())
}

// seed creates the plans of the week containing now and of the week after.
// Weeks that already have a plan are skipped.
func seed(ctx context.Context, store planSeeder, clean bool, now time.Time) error {
	if clean {
		deleted, err := store.DeleteAllPlans(ctx)
		if err != nil {
			return fmt.Errorf("delete plans: %w", err)
		}
		log.Infof("deleted %d plans", deleted)
	}

	currentWeek := plans.WeekStartOf(now)
	for _, weekStart := range []plans.Date{currentWeek, currentWeek.AddDays(plans.DaysPerWeek)} {
		input, err := plans.NormalizePlanInput(seedWeek(weekStart))
		if err != nil {
			return fmt.Errorf("seed plan for week %s: %w", weekStart, err)
		}

		plan, err := store.CreatePlan(ctx, input)
		if errors.Is(err, plans.ErrPlanExists) {
			log.Warnf("plan for week %s already exists, run with -clean to replace it", weekStart)
			continue
		}
		if err != nil {
			return fmt.Errorf("create plan for week %s: %w", weekStart, err)
		}
		log.Infof("seeded plan %d for week %s", plan.ID, plan.WeekStart)
	}
	return nil
}

func seedWeek(weekStart plans.Date) plans.PlanInput {
	input := plans.PlanInput{WeekStart: weekStart}
	for offset := 0; offset < plans.DaysPerWeek; offset++ {
		day := plans.DayInput{Date: weekStart.AddDays(offset)}
		if offset >= len(weekdaySplits) {
			day.Title = plans.RestTitle
			day.IsRest = true
			input.Days = append(input.Days, day)
			continue
		}

		split := weekdaySplits[offset]
		day.Title = string(split)
		for _, name := range plans.CatalogExercises(split, -1) {
			day.Exercises = append(day.Exercises, plans.ExerciseInput{Name: name})
		}
		input.Days = append(input.Days, day)
	}
	return input
}
