// file: internals/helpers/pg_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Postgres error codes worth branching on.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Falls back to message sniffing for drivers that do not surface
// *pq.Error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// IsCheckViolation reports whether err tripped a CHECK constraint.
func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgCheckViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
