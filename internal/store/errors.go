package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const erDupEntry = 1062

// ErrStreamNotFound is returned when a stream name has no matching row.
type ErrStreamNotFound struct {
	Name string
}

func (e *ErrStreamNotFound) Error() string {
	return fmt.Sprintf("stream %q not found", e.Name)
}

// IsErrStreamNotFound reports whether err is an ErrStreamNotFound.
func IsErrStreamNotFound(err error) bool {
	var e *ErrStreamNotFound
	return errors.As(err, &e)
}

// ErrStreamExists is returned when creating a stream whose name is taken.
type ErrStreamExists struct {
	Name string
}

func (e *ErrStreamExists) Error() string {
	return fmt.Sprintf("stream %q already exists", e.Name)
}

// IsErrStreamExists reports whether err is an ErrStreamExists.
func IsErrStreamExists(err error) bool {
	var e *ErrStreamExists
	return errors.As(err, &e)
}

// ErrTagExists is returned when creating a tag whose name is taken.
type ErrTagExists struct {
	Name string
}

func (e *ErrTagExists) Error() string {
	return fmt.Sprintf("tag %q already exists", e.Name)
}

// IsErrTagExists reports whether err is an ErrTagExists.
func IsErrTagExists(err error) bool {
	var e *ErrTagExists
	return errors.As(err, &e)
}

func isErrorCode(err error, code uint16) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == code
	}

	return false
}

func isDupEntry(err error) bool {
	return isErrorCode(err, erDupEntry)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
