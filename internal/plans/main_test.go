package plans_test

import (
	"testing"
	"time"

	"github.com/2beens/fitplan/internal/plans"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// idle keep-alive connections of the docker client used by the integration suite
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func mustDate(t *testing.T, s string) plans.Date {
	t.Helper()
	d, err := plans.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %s", s, err)
	}
	return d
}

// weekPlan builds a stored plan starting at weekStart, one day per given template.
func weekPlan(weekStart plans.Date, days ...plans.Day) *plans.Plan {
	plan := &plans.Plan{
		ID:        1,
		WeekStart: weekStart,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	for i, d := range days {
		d.ID = i + 1
		d.PlanID = plan.ID
		d.Date = weekStart.AddDays(i)
		if d.Exercises == nil {
			d.Exercises = []plans.Exercise{}
		}
		plan.Days = append(plan.Days, d)
	}
	return plan
}

func training(title string, completed bool, exercises ...string) plans.Day {
	day := plans.Day{Title: title, Completed: completed}
	for i, e := range exercises {
		day.Exercises = append(day.Exercises, plans.Exercise{ID: i + 1, Name: e})
	}
	return day
}

func rest() plans.Day {
	return plans.Day{Title: plans.RestTitle, IsRest: true}
}

// validInput is a create request for a Mon/Wed/Fri week starting at weekStart.
func validInput(weekStart plans.Date) plans.PlanInput {
	input := plans.PlanInput{WeekStart: weekStart}
	for i := 0; i < plans.DaysPerWeek; i++ {
		day := plans.DayInput{
			Date:      weekStart.AddDays(i),
			Title:     plans.RestTitle,
			IsRest:    true,
			Exercises: []plans.ExerciseInput{},
		}
		if i%2 == 0 && i < 5 {
			day.Title = "Full Body"
			day.IsRest = false
			day.Exercises = []plans.ExerciseInput{{Name: "Squat"}, {Name: "Push-up"}}
		}
		input.Days = append(input.Days, day)
	}
	return input
}
