package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func newTestDatabaseLogger(t *testing.T, level string, elapsed time.Duration) (logger.Interface, *mockcore.MockLogger) {
	base := mockcore.NewMockLogger(t)
	scoped := mockcore.NewMockLogger(t)
	base.EXPECT().With(map[string]any{"source": "database"}).Return(scoped)

	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Since(mock.Anything).Return(elapsed).Maybe()

	return NewDatabaseLogger(base, clock, level, 200*time.Millisecond), scoped
}

func TestDatabaseLoggerTrace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM users", 1 }

	t.Run("regular query at debug", func(t *testing.T) {
		l, scoped := newTestDatabaseLogger(t, "info", time.Millisecond)
		scoped.EXPECT().Debug("SQL Query", mock.MatchedBy(func(f map[string]any) bool {
			return f["type"] == "SELECT" && f["rows"] == int64(1)
		})).Return().Once()

		l.Trace(context.Background(), time.Now(), query, nil)
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, scoped := newTestDatabaseLogger(t, "warn", time.Second)
		scoped.EXPECT().Warn("Slow SQL Query", mock.Anything).Return().Once()

		l.Trace(context.Background(), time.Now(), query, nil)
	})

	t.Run("error is logged", func(t *testing.T) {
		l, scoped := newTestDatabaseLogger(t, "error", time.Millisecond)
		scoped.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "boom"
		})).Return().Once()

		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	})

	t.Run("record not found is quiet at error level", func(t *testing.T) {
		l, _ := newTestDatabaseLogger(t, "error", time.Millisecond)
		l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, _ := newTestDatabaseLogger(t, "silent", time.Millisecond)
		l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	})
}
