package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:          transaction.ID.String(),
		UserID:      transaction.UserID,
		Reference:   transaction.Reference,
		Type:        string(transaction.Type),
		Amount:      entity.FormatAmount(transaction.Amount),
		AmountMinor: entity.AmountToMinorUnits(transaction.Amount),
		Title:       transaction.Title,
		Description: transaction.Description,
		Status:      string(transaction.Status),
		EventType:   transaction.EventType,
		Metadata:    string(transaction.Metadata),
		CreatedAt:   transaction.Timestamp,
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		r.logger.Warn("Stored transaction has a malformed ID", map[string]any{
			"transaction_id": m.ID,
			"error":          err.Error(),
		})
	}

	var metadata json.RawMessage
	if m.Metadata != "" {
		metadata = json.RawMessage(m.Metadata)
	}

	return &entity.Transaction{
		ID:          id,
		UserID:      m.UserID,
		Type:        entity.TransactionType(m.Type),
		Amount:      entity.MinorUnitsToAmount(m.AmountMinor),
		Title:       m.Title,
		Description: m.Description,
		Reference:   m.Reference,
		Status:      entity.TransactionStatus(m.Status),
		EventType:   m.EventType,
		Timestamp:   m.CreatedAt,
		Metadata:    metadata,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	fields["error"] = err.Error()
	fields["error_type"] = string(r.errorClassifier.Classify(err))
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

// CreateIfAbsent inserts the transaction unless (user_id, reference) already exists.
// The unique index is the arbiter, so concurrent deliveries of one event insert exactly one row.
func (r *TransactionRepository) CreateIfAbsent(ctx context.Context, transaction *entity.Transaction) (bool, error) {
	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "reference"}},
			DoNothing: true,
		}).
		Create(&transactionModel)

	if result.Error != nil {
		switch {
		case r.errorClassifier.IsForeignKeyError(result.Error):
			return false, errs.ErrUserNotFound
		case r.errorClassifier.IsDuplicateKeyError(result.Error):
			return false, nil
		}
		return false, r.handleDatabaseError("creating transaction", result.Error, map[string]any{
			"user_id":   transaction.UserID,
			"reference": transaction.Reference,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Info("Transaction reference already recorded", map[string]any{
			"user_id":   transaction.UserID,
			"reference": transaction.Reference,
		})
		return false, nil
	}

	return true, nil
}

// GetByReference retrieves a user's transaction by its reference
func (r *TransactionRepository) GetByReference(ctx context.Context, userID, reference string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND reference = ?", userID, reference).
		First(&transactionModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.handleDatabaseError("getting transaction", result.Error, map[string]any{
			"user_id":   userID,
			"reference": reference,
		})
	}

	return r.modelToEntity(&transactionModel), nil
}

// Exists checks if a transaction with the given reference exists for the user
func (r *TransactionRepository) Exists(ctx context.Context, userID, reference string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ? AND reference = ?", userID, reference).
		Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking transaction existence", result.Error, map[string]any{
			"user_id":   userID,
			"reference": reference,
		})
	}

	return count > 0, nil
}

// ListByUser returns up to limit transactions of a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing transactions", result.Error, map[string]any{
			"user_id": userID,
			"limit":   limit,
		})
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
