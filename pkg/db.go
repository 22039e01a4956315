package pkg

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	var pqErr *pgconn.PgError
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	var pqErr *pgconn.PgError
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

// IsIntegrityConstraintViolation reports any error of class 23
// (not null, foreign key, unique, check, exclusion).
func IsIntegrityConstraintViolation(err error) bool {
	var pqErr *pgconn.PgError
	if errors.As(err, &pqErr) {
		return strings.HasPrefix(pqErr.Code, "23")
	}
	return false
}
