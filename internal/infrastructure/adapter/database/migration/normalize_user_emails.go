package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// NormalizeUserEmails lowercases stored emails so card payments match regardless of the
// casing the provider reports
type NormalizeUserEmails struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeUserEmails creates a new migration instance
func NewNormalizeUserEmails(db *gorm.DB, logger coreport.Logger) *NormalizeUserEmails {
	return &NormalizeUserEmails{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *NormalizeUserEmails) Run(ctx context.Context) error {
	m.logger.Info("Normalizing user emails", nil)

	result := m.db.WithContext(ctx).Exec(`UPDATE users SET email = LOWER(TRIM(email)) WHERE email <> LOWER(TRIM(email))`)
	if result.Error != nil {
		m.logger.Error("Failed to normalize user emails", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Normalized user emails", map[string]any{
		"rows": result.RowsAffected,
	})
	return nil
}
