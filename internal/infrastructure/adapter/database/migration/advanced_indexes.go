package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes that gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates PostgreSQL expression indexes and applies table tweaks.
// Other dialects rely on the tag-declared indexes only.
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Info("Skipping PostgreSQL-specific indexes", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	db := m.db.WithContext(ctx)

	// Card payments are matched on LOWER(email)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_users_email_lower
		ON users (LOWER(email))
	`).Error; err != nil {
		m.logger.Error("Failed to create index on lower(email)", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
		ON transactions USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Not critical: the balance row is updated in place on every credit
	if err := db.Exec(`ALTER TABLE users SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL indexes created successfully", nil)
	return nil
}
