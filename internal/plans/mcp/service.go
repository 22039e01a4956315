package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fitplan/internal/plans"
)

// planService is the read only part of plans.Service the tools need.
type planService interface {
	GetPlan(ctx context.Context, weekStart plans.Date) (*plans.Plan, error)
	Stats(ctx context.Context, weekStart plans.Date) (*plans.Stats, error)
	PreviewTemplate(ctx context.Context, weekStart plans.Date) (*plans.TemplatePreview, error)
}

// contextService resolves tool arguments and fetches plan data. Used by Handler for testability.
type contextService interface {
	ResolveWeek(weekStart string) (plans.Date, error)
	PlanSummary(ctx context.Context, weekStart plans.Date) (string, error)
	WeekStats(ctx context.Context, weekStart plans.Date) (*plans.Stats, error)
	PreviewNextWeek(ctx context.Context, weekStart plans.Date) (*plans.TemplatePreview, error)
}

type ContextService struct {
	plans planService
	now   func() time.Time
}

func NewContextService(plans planService, now func() time.Time) *ContextService {
	if now == nil {
		now = time.Now
	}
	return &ContextService{
		plans: plans,
		now:   now,
	}
}

// ResolveWeek parses a YYYY-MM-DD week start. Empty means the current week.
func (s *ContextService) ResolveWeek(weekStart string) (plans.Date, error) {
	if strings.TrimSpace(weekStart) == "" {
		return plans.WeekStartOf(s.now()), nil
	}
	return plans.ParseDate(strings.TrimSpace(weekStart))
}

// PlanSummary returns the plan of the week as a markdown table.
func (s *ContextService) PlanSummary(ctx context.Context, weekStart plans.Date) (string, error) {
	plan, err := s.plans.GetPlan(ctx, weekStart)
	if err != nil {
		return "", err
	}
	return formatPlan(plan), nil
}

func (s *ContextService) WeekStats(ctx context.Context, weekStart plans.Date) (*plans.Stats, error) {
	return s.plans.Stats(ctx, weekStart)
}

func (s *ContextService) PreviewNextWeek(ctx context.Context, weekStart plans.Date) (*plans.TemplatePreview, error) {
	return s.plans.PreviewTemplate(ctx, weekStart)
}

func formatPlan(plan *plans.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Plan for week %s\n\n", plan.WeekStart)
	b.WriteString("| date | weekday | title | rest | completed | exercises |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, d := range plan.Days {
		names := make([]string, 0, len(d.Exercises))
		for _, e := range d.Exercises {
			names = append(names, e.Name)
		}
		title := d.Title
		if title == "" && d.IsRest {
			title = plans.RestTitle
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %t | %t | %s |\n",
			d.Date, d.Date.Weekday(), title, d.IsRest, d.Completed, strings.Join(names, ", "))
	}

	stats := plans.CalculateStats(plan)
	fmt.Fprintf(&b, "\nCompleted %d of %d training days (%.0f%%).\n",
		stats.CompletedTrainingDays, stats.TotalTrainingDays, stats.WeeklyCompletion*100)
	return b.String()
}
