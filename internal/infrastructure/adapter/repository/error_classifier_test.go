package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name      string
		err       error
		expected  ErrorType
		transient bool
	}{
		{"pg unique", &pgconn.PgError{Code: "23505"}, DuplicateKeyError, false},
		{"pg fk", &pgconn.PgError{Code: "23503"}, ForeignKeyError, false},
		{"pg check", &pgconn.PgError{Code: "23514"}, CheckError, false},
		{"pg serialization", &pgconn.PgError{Code: "40001"}, LockError, true},
		{"pg deadlock", &pgconn.PgError{Code: "40P01"}, LockError, true},
		{"pg connection", &pgconn.PgError{Code: "08006"}, ConnectionError, true},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, DuplicateKeyError, false},
		{"mysql deadlock", &mysql.MySQLError{Number: 1213}, LockError, true},
		{"mysql fk", &mysql.MySQLError{Number: 1452}, ForeignKeyError, false},
		{"bad conn", driver.ErrBadConn, ConnectionError, true},
		{"wrapped pg deadlock", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40P01"}), LockError, true},
		{"duplicate key text", errors.New(`ERROR: duplicate key value violates unique constraint "idx"`), DuplicateKeyError, false},
		{"plain", errors.New("syntax error"), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.err))
			assert.Equal(t, tc.transient, c.IsTransientError(tc.err))
		})
	}
}

func TestConstraintName(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, "idx_users_dedicated_account",
		c.ConstraintName(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_dedicated_account"}))
	assert.Equal(t, "idx_users_dedicated_account",
		c.ConstraintName(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'A1' for key 'users.idx_users_dedicated_account'"}))
	assert.Empty(t, c.ConstraintName(errors.New("boom")))
}
