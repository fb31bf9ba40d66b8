package repository

import (
	"database/sql/driver"
	"errors"
	"io"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	CheckError        ErrorType = "check"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgAdminShutdown        = "57P01"
)

// MySQL server error numbers
const (
	myDuplicateEntry     = 1062
	myNoReferencedRow    = 1452
	myCheckViolation     = 3819
	myLockWaitTimeout    = 1205
	myDeadlock           = 1213
	myTooManyConnections = 1040
)

// ErrorClassifier provides methods to classify database errors for postgres and mysql
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsForeignKeyError(err):
		return ForeignKeyError
	case c.IsCheckError(err):
		return CheckError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	if num, ok := mysqlNumber(err); ok {
		return num == myDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "Duplicate entry")
}

// IsForeignKeyError checks if the error references a missing parent row
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgForeignKeyViolation
	}
	if num, ok := mysqlNumber(err); ok {
		return num == myNoReferencedRow
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsCheckError checks if the error is a CHECK constraint violation
func (c *ErrorClassifier) IsCheckError(err error) bool {
	if code, ok := pgCode(err); ok {
		return code == pgCheckViolation
	}
	if num, ok := mysqlNumber(err); ok {
		return num == myCheckViolation
	}
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// IsLockError checks if the error is due to locking or serialization conflicts
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return code == pgSerializationFailure || code == pgDeadlockDetected || code == pgLockNotAvailable
	}
	if num, ok := mysqlNumber(err); ok {
		return num == myDeadlock || num == myLockWaitTimeout
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return strings.HasPrefix(code, "08") || code == pgAdminShutdown
	}
	if num, ok := mysqlNumber(err); ok {
		return num == myTooManyConnections
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "unexpected eof")
}

// IsTransientError reports whether the failed operation may succeed if run again in a
// fresh transaction. Constraint violations are never transient.
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil || c.IsDuplicateKeyError(err) || c.IsForeignKeyError(err) || c.IsCheckError(err) {
		return false
	}
	return c.IsLockError(err) || c.IsConnectionError(err)
}

// ConstraintName returns the violated constraint when the driver reports it
func (c *ErrorClassifier) ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		// Duplicate entry 'x' for key 'users.idx_users_dedicated_account'
		if i := strings.LastIndex(myErr.Message, "for key '"); i >= 0 {
			name := strings.TrimSuffix(myErr.Message[i+len("for key '"):], "'")
			if j := strings.LastIndex(name, "."); j >= 0 {
				name = name[j+1:]
			}
			return name
		}
	}
	return ""
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

func mysqlNumber(err error) (uint16, bool) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number, true
	}
	return 0, false
}
