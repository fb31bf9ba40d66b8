package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("records metrics", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		monitor := NewConnectionPoolMonitor(func() sql.DBStats {
			return sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 2, Idle: 2}
		}, log)

		monitor.collectMetrics()

		assert.Equal(t, ConnectionPoolMetrics{OpenConnections: 4, IdleConnections: 2, MaxOpenConnections: 10, InUse: 2},
			monitor.GetMetrics())
	})

	t.Run("warns when nearly exhausted", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		log.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Return().Once()
		monitor := NewConnectionPoolMonitor(func() sql.DBStats {
			return sql.DBStats{MaxOpenConnections: 10, InUse: 9}
		}, log)

		monitor.collectMetrics()
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(func() sql.DBStats { return sql.DBStats{} }, mockcore.NewMockLogger(t))
		monitor.Start(time.Hour)
		monitor.Stop()
		monitor.Stop()
	})
}
