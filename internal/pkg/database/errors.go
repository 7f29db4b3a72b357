package database

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeSerializationFailed = "40001"
	codeDeadlockDetected    = "40P01"
)

// IsUniqueViolation reports whether err is a unique constraint violation,
// optionally restricted to one constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	if code != codeUniqueViolation {
		return false
	}
	return constraint == "" || constraint == name
}

// IsRetryable reports whether a transaction failed on a lock conflict
func IsRetryable(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeSerializationFailed || code == codeDeadlockDetected
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}
