package plans

// Split is a body part rotation assigned to a training day. It is also used as the day's title.
type Split string

const (
	SplitFullBody Split = "Full Body"
	SplitPush     Split = "Push"
	SplitPull     Split = "Pull"
	SplitLegs     Split = "Legs"
	SplitCore     Split = "Core"
)

const RestTitle = "Rest"

const (
	highCompletionThreshold = 0.8
	midCompletionThreshold  = 0.5

	baselineTrainingDays = 3
	maxTrainingDays      = 5

	exercisesPerDayHigh     = 4
	exercisesPerDayBaseline = 3
)

// exerciseCatalog holds the ordered exercises of each split; a template takes a prefix of it.
var exerciseCatalog = map[Split][]string{
	SplitPush:     {"Push-up", "Dumbbell Press", "Triceps Dip", "Shoulder Press"},
	SplitPull:     {"Pull-up", "Dumbbell Row", "Biceps Curl", "Face Pull"},
	SplitLegs:     {"Squat", "Lunge", "Calf Raise", "Glute Bridge"},
	SplitCore:     {"Plank", "Crunch", "Dead Bug", "Leg Raise"},
	SplitFullBody: {"Squat", "Push-up", "Row", "Plank"},
}

type splitDay struct {
	// days after the week start, 0 is Monday
	offset int
	split  Split
}

// weeklySplits maps a training days count to the weekdays trained and their splits.
var weeklySplits = map[int][]splitDay{
	3: {
		{offset: 0, split: SplitFullBody},
		{offset: 2, split: SplitFullBody},
		{offset: 4, split: SplitFullBody},
	},
	4: {
		{offset: 0, split: SplitPush},
		{offset: 1, split: SplitPull},
		{offset: 2, split: SplitLegs},
		{offset: 3, split: SplitCore},
	},
	5: {
		{offset: 0, split: SplitPush},
		{offset: 1, split: SplitPull},
		{offset: 2, split: SplitLegs},
		{offset: 3, split: SplitPush},
		{offset: 4, split: SplitCore},
	},
}

// TemplatePreview is a generated, not yet persisted, plan for the week
// following the one it was computed from.
type TemplatePreview struct {
	// WeeklyCompletion and TrainingDaysCount describe the previous week.
	WeeklyCompletion  float64 `json:"weekly_completion"`
	TrainingDaysCount int     `json:"training_days_count"`
	NextWeekStart     Date    `json:"next_week_start"`
	Days              []Day   `json:"days"`
}

// CatalogExercises returns up to n leading exercises of a split, in catalog order.
// A negative n returns the whole catalog of the split.
func CatalogExercises(split Split, n int) []string {
	catalog := exerciseCatalog[split]
	if n < 0 || n > len(catalog) {
		n = len(catalog)
	}
	exercises := make([]string, n)
	copy(exercises, catalog[:n])
	return exercises
}

// NextWeekShape decides how many days to train next week and how many
// exercises each of them gets, given the previous week's results.
func NextWeekShape(completion float64, prevTrainingDays int) (trainingDays, exercisesPerDay int) {
	switch {
	case completion >= highCompletionThreshold:
		return min(prevTrainingDays+1, maxTrainingDays), exercisesPerDayHigh
	case completion >= midCompletionThreshold:
		return prevTrainingDays, exercisesPerDayBaseline
	default:
		return baselineTrainingDays, exercisesPerDayBaseline
	}
}

func splitSchedule(trainingDays int) []splitDay {
	if schedule, ok := weeklySplits[trainingDays]; ok {
		return schedule
	}
	return weeklySplits[baselineTrainingDays]
}

// GenerateTemplate builds the preview of the week after weekStart. prev holds
// the statistics of the week starting at weekStart, nil if it has no plan.
// It does no I/O and yields identical previews for identical inputs.
func GenerateTemplate(weekStart Date, prev *Stats) TemplatePreview {
	completion := 0.0
	prevTrainingDays := baselineTrainingDays
	if prev != nil {
		completion = prev.WeeklyCompletion
		prevTrainingDays = prev.TotalTrainingDays
	}

	trainingDays, exercisesPerDay := NextWeekShape(completion, prevTrainingDays)

	splitByOffset := make(map[int]Split, trainingDays)
	for _, sd := range splitSchedule(trainingDays) {
		splitByOffset[sd.offset] = sd.split
	}

	nextWeekStart := weekStart.AddDays(7)
	days := make([]Day, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := Day{
			Date:      nextWeekStart.AddDays(offset),
			Exercises: []Exercise{},
		}

		split, training := splitByOffset[offset]
		if !training {
			day.Title = RestTitle
			day.IsRest = true
			days = append(days, day)
			continue
		}

		day.Title = string(split)
		for i, name := range CatalogExercises(split, exercisesPerDay) {
			day.Exercises = append(day.Exercises, Exercise{ID: i + 1, Name: name})
		}
		days = append(days, day)
	}

	return TemplatePreview{
		WeeklyCompletion:  completion,
		TrainingDaysCount: prevTrainingDays,
		NextWeekStart:     nextWeekStart,
		Days:              days,
	}
}

// PlanInput converts the preview into a create request for its week.
// Rest days never carry exercises.
func (p TemplatePreview) PlanInput() PlanInput {
	input := PlanInput{
		WeekStart: p.NextWeekStart,
		Days:      make([]DayInput, 0, len(p.Days)),
	}
	for _, d := range p.Days {
		day := DayInput{
			Date:      d.Date,
			Title:     d.Title,
			IsRest:    d.IsRest,
			Completed: d.Completed,
			Exercises: []ExerciseInput{},
		}
		if !d.IsRest {
			for _, e := range d.Exercises {
				day.Exercises = append(day.Exercises, ExerciseInput{Name: e.Name})
			}
		}
		input.Days = append(input.Days, day)
	}
	return input
}
