package plans

import "time"

// Plan is one calendar week of training. It owns its 7 days, and
// each day owns its exercises.
type Plan struct {
	ID        int       `json:"id"`
	WeekStart Date      `json:"week_start"`
	CreatedAt time.Time `json:"created_at"`
	Days      []Day     `json:"days"`
}

type Day struct {
	ID        int        `json:"id"`
	PlanID    int        `json:"plan_id"`
	Date      Date       `json:"date"`
	Title     string     `json:"title"`
	IsRest    bool       `json:"is_rest"`
	Completed bool       `json:"completed"`
	Exercises []Exercise `json:"exercises"`
}

type Exercise struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlanInput is the body of create and update requests.
type PlanInput struct {
	WeekStart Date       `json:"week_start"`
	Days      []DayInput `json:"days"`
}

type DayInput struct {
	Date      Date            `json:"date"`
	Title     string          `json:"title"`
	IsRest    bool            `json:"is_rest"`
	Completed bool            `json:"completed"`
	Exercises []ExerciseInput `json:"exercises"`
}

type ExerciseInput struct {
	Name string `json:"name"`
}

// TrainingDays returns the days that are not rest days.
func (p *Plan) TrainingDays() []Day {
	training := make([]Day, 0, len(p.Days))
	for _, d := range p.Days {
		if !d.IsRest {
			training = append(training, d)
		}
	}
	return training
}

func (p PlanInput) trainingDaysCount() int {
	count := 0
	for _, d := range p.Days {
		if !d.IsRest {
			count++
		}
	}
	return count
}
