package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the class of a persistence failure the API reports to clients.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindDuplicate
	KindForeignKey
	KindNotNull
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Classify inspects driver errors from Postgres and SQLite.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return KindDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return KindForeignKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindDuplicate
		case pgForeignKeyViolation:
			return KindForeignKey
		case pgNotNullViolation:
			return KindNotNull
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key value"),
		strings.Contains(errMsg, "unique constraint failed"):
		return KindDuplicate
	case strings.Contains(errMsg, "violates foreign key constraint"),
		strings.Contains(errMsg, "foreign key constraint failed"):
		return KindForeignKey
	case strings.Contains(errMsg, "not null constraint failed"),
		strings.Contains(errMsg, "violates not-null constraint"):
		return KindNotNull
	}

	return KindUnknown
}

// Constraint returns the Postgres constraint name behind err, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func IsNotFound(err error) bool {
	return Classify(err) == KindNotFound
}

func IsDuplicate(err error) bool {
	return Classify(err) == KindDuplicate
}
