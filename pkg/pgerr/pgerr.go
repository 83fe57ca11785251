// Package pgerr classifies PostgreSQL errors from both drivers used by the service.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// SQLSTATE codes.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

// Code returns the SQLSTATE of err, or "" when err is not a Postgres error.
func Code(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('C')
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique_violation.
func IsUniqueViolation(err error) bool {
	return err != nil && Code(err) == UniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	return err != nil && Code(err) == ForeignKeyViolation
}

// IsCheckViolation reports whether err is a check_violation.
func IsCheckViolation(err error) bool {
	return err != nil && Code(err) == CheckViolation
}
