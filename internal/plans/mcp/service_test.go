package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/2beens/fitplan/internal/plans"
)

// mockPlanService implements planService for tests.
type mockPlanService struct {
	plan       *plans.Plan
	planErr    error
	stats      *plans.Stats
	statsErr   error
	preview    *plans.TemplatePreview
	previewErr error

	requestedWeek plans.Date
}

func (m *mockPlanService) GetPlan(_ context.Context, weekStart plans.Date) (*plans.Plan, error) {
	m.requestedWeek = weekStart
	return m.plan, m.planErr
}

func (m *mockPlanService) Stats(_ context.Context, weekStart plans.Date) (*plans.Stats, error) {
	m.requestedWeek = weekStart
	return m.stats, m.statsErr
}

func (m *mockPlanService) PreviewTemplate(_ context.Context, weekStart plans.Date) (*plans.TemplatePreview, error) {
	m.requestedWeek = weekStart
	return m.preview, m.previewErr
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 9, 18, 0, 0, 0, time.UTC)
}

func TestContextService_ResolveWeek(t *testing.T) {
	svc := NewContextService(&mockPlanService{}, fixedClock)

	got, err := svc.ResolveWeek("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := plans.NewDate(2024, 5, 6); !got.Equal(want) {
		t.Fatalf("empty week = %s, want %s", got, want)
	}

	got, err = svc.ResolveWeek(" 2024-04-29 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := plans.NewDate(2024, 4, 29); !got.Equal(want) {
		t.Fatalf("week = %s, want %s", got, want)
	}

	if _, err := svc.ResolveWeek("last week"); err == nil {
		t.Fatalf("expected error for invalid week")
	}
}

func TestContextService_PlanSummary(t *testing.T) {
	weekStart := plans.NewDate(2024, 5, 6)
	plan := &plans.Plan{
		ID:        1,
		WeekStart: weekStart,
		Days: []plans.Day{
			{Date: weekStart, Title: "Push", Completed: true, Exercises: []plans.Exercise{{ID: 1, Name: "Push-up"}, {ID: 2, Name: "Dumbbell Press"}}},
			{Date: weekStart.AddDays(1), IsRest: true},
			{Date: weekStart.AddDays(2), Title: "Legs", Exercises: []plans.Exercise{{ID: 3, Name: "Squat"}}},
		},
	}
	mock := &mockPlanService{plan: plan}
	svc := NewContextService(mock, fixedClock)

	summary, err := svc.PlanSummary(context.Background(), weekStart)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"## Plan for week 2024-05-06",
		"| 2024-05-06 | Monday | Push | false | true | Push-up, Dumbbell Press |",
		"| 2024-05-07 | Tuesday | Rest | true | false |  |",
		"Completed 1 of 2 training days (50%).",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
	if !mock.requestedWeek.Equal(weekStart) {
		t.Fatalf("requested week = %s", mock.requestedWeek)
	}
}

func TestContextService_PlanSummary_Error(t *testing.T) {
	svc := NewContextService(&mockPlanService{planErr: plans.ErrPlanNotFound}, fixedClock)
	_, err := svc.PlanSummary(context.Background(), plans.NewDate(2024, 5, 6))
	if !errors.Is(err, plans.ErrPlanNotFound) {
		t.Fatalf("err = %v, want ErrPlanNotFound", err)
	}
}
