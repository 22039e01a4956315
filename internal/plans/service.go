package plans

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=plans_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const DaysPerWeek = 7

type planStore interface {
	FindPlanByWeek(ctx context.Context, weekStart Date) (*Plan, error)
	FindDayByDate(ctx context.Context, date Date) (*Day, error)
	CreatePlan(ctx context.Context, input PlanInput) (*Plan, error)
	ReplacePlanDays(ctx context.Context, plan *Plan, days []DayInput) (*Plan, error)
	SetDayCompleted(ctx context.Context, dayID int, completed bool) (*Day, error)
	DeletePlan(ctx context.Context, weekStart Date) error
}

// Service holds the plan rules on top of a store: one plan per week,
// validated content and template generation.
type Service struct {
	store planStore
}

func NewService(store planStore) *Service {
	return &Service{
		store: store,
	}
}

func (s *Service) GetPlan(ctx context.Context, weekStart Date) (*Plan, error) {
	return s.store.FindPlanByWeek(ctx, weekStart)
}

func (s *Service) CreatePlan(ctx context.Context, input PlanInput) (*Plan, error) {
	if err := s.ensureNoPlan(ctx, input.WeekStart); err != nil {
		return nil, err
	}

	normalized, err := NormalizePlanInput(input)
	if err != nil {
		return nil, err
	}

	return s.store.CreatePlan(ctx, normalized)
}

// UpdatePlan replaces all days of the plan at weekStart. The week of a plan never changes,
// so the week start carried by the input is ignored.
func (s *Service) UpdatePlan(ctx context.Context, weekStart Date, input PlanInput) (*Plan, error) {
	plan, err := s.store.FindPlanByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	input.WeekStart = weekStart
	normalized, err := NormalizePlanInput(input)
	if err != nil {
		return nil, err
	}

	return s.store.ReplacePlanDays(ctx, plan, normalized.Days)
}

func (s *Service) DeletePlan(ctx context.Context, weekStart Date) error {
	return s.store.DeletePlan(ctx, weekStart)
}

func (s *Service) GetDay(ctx context.Context, date Date) (*Day, error) {
	return s.store.FindDayByDate(ctx, date)
}

func (s *Service) SetDayCompleted(ctx context.Context, date Date, completed bool) (*Day, error) {
	day, err := s.store.FindDayByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.store.SetDayCompleted(ctx, day.ID, completed)
}

// Stats fails with ErrPlanNotFound when there is no plan at weekStart, which is
// not the same as a plan without training days.
func (s *Service) Stats(ctx context.Context, weekStart Date) (*Stats, error) {
	plan, err := s.store.FindPlanByWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	stats := CalculateStats(plan)
	return &stats, nil
}

// PreviewTemplate generates next week's plan from the results of the week at weekStart.
// A missing plan is not an error, the defaults are used instead.
func (s *Service) PreviewTemplate(ctx context.Context, weekStart Date) (*TemplatePreview, error) {
	var prev *Stats
	plan, err := s.store.FindPlanByWeek(ctx, weekStart)
	switch {
	case err == nil:
		stats := CalculateStats(plan)
		prev = &stats
	case errors.Is(err, ErrPlanNotFound):
	default:
		return nil, err
	}

	preview := GenerateTemplate(weekStart, prev)
	return &preview, nil
}

// ApplyTemplate persists a preview as the plan of its week. Concurrent applies for the same
// week are settled by the store, the loser gets ErrPlanExists.
func (s *Service) ApplyTemplate(ctx context.Context, preview TemplatePreview) (*Plan, error) {
	if err := s.ensureNoPlan(ctx, preview.NextWeekStart); err != nil {
		return nil, err
	}

	normalized, err := NormalizePlanInput(preview.PlanInput())
	if err != nil {
		return nil, err
	}

	return s.store.CreatePlan(ctx, normalized)
}

func (s *Service) ensureNoPlan(ctx context.Context, weekStart Date) error {
	_, err := s.store.FindPlanByWeek(ctx, weekStart)
	switch {
	case err == nil:
		return fmt.Errorf("week %s: %w", weekStart, ErrPlanExists)
	case errors.Is(err, ErrPlanNotFound):
		return nil
	default:
		return err
	}
}

// NormalizePlanInput checks the plan content and returns a copy with days sorted by date
// and exercise names trimmed. A valid plan has exactly one day for each date of its week,
// at least one training day, at least one exercise per training day and no blank exercise names.
func NormalizePlanInput(input PlanInput) (PlanInput, error) {
	if input.WeekStart.IsZero() {
		return PlanInput{}, newValidationError(nil, "week_start is required")
	}
	if len(input.Days) != DaysPerWeek {
		return PlanInput{}, newValidationError(nil, "a plan needs exactly %d days, got %d", DaysPerWeek, len(input.Days))
	}

	days := make([]DayInput, len(input.Days))
	copy(days, input.Days)
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date.Time)
	})

	for i := range days {
		day := &days[i]
		expected := input.WeekStart.AddDays(i)
		if !day.Date.Equal(expected) {
			return PlanInput{}, newValidationError(&day.Date, "expected one day for each date from %s to %s", input.WeekStart, input.WeekStart.AddDays(DaysPerWeek-1))
		}

		exercises := make([]ExerciseInput, 0, len(day.Exercises))
		for _, e := range day.Exercises {
			name := strings.TrimSpace(e.Name)
			if name == "" {
				return PlanInput{}, newValidationError(&day.Date, "exercise name must not be empty")
			}
			exercises = append(exercises, ExerciseInput{Name: name})
		}
		day.Exercises = exercises

		if !day.IsRest && len(day.Exercises) == 0 {
			return PlanInput{}, newValidationError(&day.Date, "a training day needs at least one exercise")
		}
	}

	normalized := PlanInput{
		WeekStart: input.WeekStart,
		Days:      days,
	}
	if normalized.trainingDaysCount() == 0 {
		return PlanInput{}, newValidationError(nil, "at least one training day per week is required")
	}

	return normalized, nil
}
