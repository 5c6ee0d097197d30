package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"cmsapi/internal/repository"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError translates PostgreSQL constraint violations into repository sentinels.
// Other errors, sql.ErrNoRows included, are returned untouched.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", repository.ErrReference, pgErr.ConstraintName)
	}
	return err
}
