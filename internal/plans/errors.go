package plans

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrDayNotFound        = errors.New("no day scheduled at this date")
	ErrPlanExists         = errors.New("plan already exists")
	ErrIntegrityViolation = errors.New("data integrity violation")
)

// ValidationError is a user correctable problem with a plan's content,
// detected before anything is written.
type ValidationError struct {
	// Date of the offending day, if the problem is tied to one.
	Date   *Date
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Date != nil {
		return fmt.Sprintf("day %s: %s", e.Date, e.Detail)
	}
	return e.Detail
}

func newValidationError(date *Date, format string, args ...any) *ValidationError {
	var d *Date
	if date != nil {
		dateCopy := *date
		d = &dateCopy
	}
	return &ValidationError{
		Date:   d,
		Detail: fmt.Sprintf(format, args...),
	}
}
