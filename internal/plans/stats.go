package plans

// Stats summarizes how much of a week's plan was done. Completion is tracked
// per day only: a completed training day counts all its exercises as done,
// an incomplete one counts none of them.
type Stats struct {
	WeeklyCompletion      float64 `json:"weekly_completion"`
	CompletedTrainingDays int     `json:"completed_training_days"`
	TotalTrainingDays     int     `json:"total_training_days"`
	TotalExercises        int     `json:"total_exercises"`
	CompletedExercises    int     `json:"completed_exercises"`
}

// CalculateStats derives the completion statistics of a loaded plan.
// Rest days are ignored entirely, exercises on them included.
func CalculateStats(plan *Plan) Stats {
	var stats Stats
	for _, day := range plan.TrainingDays() {
		stats.TotalTrainingDays++
		stats.TotalExercises += len(day.Exercises)
		if day.Completed {
			stats.CompletedTrainingDays++
			stats.CompletedExercises += len(day.Exercises)
		}
	}

	if stats.TotalTrainingDays > 0 {
		stats.WeeklyCompletion = float64(stats.CompletedTrainingDays) / float64(stats.TotalTrainingDays)
	}

	return stats
}
