package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether the error is a PostgreSQL unique
// violation, regardless of which constraint was hit.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsDuplicateConstraintError reports whether the error is a unique violation
// on the named constraint. Repositories use this to map constraint races to
// their already-exists sentinels.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode &&
		pgErr.ConstraintName == constraintName
}
