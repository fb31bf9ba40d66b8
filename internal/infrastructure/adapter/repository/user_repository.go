package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *UserRepository) modelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Email:              m.Email,
		WalletBalance:      entity.MinorUnitsToAmount(m.Balance),
		DedicatedAccountID: m.DedicatedAccountID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling. The driver error stays in the
// chain so the unit of work can decide whether to retry.
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id":    userID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})

	switch {
	case r.errorClassifier.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", errs.ErrConstraintViolation, err)
	case r.errorClassifier.IsCheckError(err):
		return fmt.Errorf("%w: %w", errs.ErrNegativeBalance, err)
	}
	return fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// FindByDedicatedAccountID retrieves the single user bound to a dedicated account
func (r *UserRepository) FindByDedicatedAccountID(ctx context.Context, dedicatedAccountID string) (*entity.User, error) {
	return r.findOne(ctx, "finding user by dedicated account", "dedicated_account_id = ?", dedicatedAccountID)
}

// FindByEmail retrieves the single user with the given email, compared case-insensitively
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "finding user by email", "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

// findOne loads at most two rows so an ambiguous match is detected without scanning the table
func (r *UserRepository) findOne(ctx context.Context, operation, query string, arg string) (*entity.User, error) {
	var models []model.User
	result := r.db.WithContext(ctx).Where(query, arg).Order("id").Limit(2).Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError(operation, result.Error, "")
	}

	switch len(models) {
	case 0:
		return nil, errs.ErrUserNotFound
	case 1:
		return r.modelToEntity(&models[0]), nil
	default:
		r.logger.Warn("Lookup matched more than one user", map[string]any{
			"query":    query,
			"user_ids": []string{models[0].ID, models[1].ID},
		})
		return nil, errs.ErrAmbiguousUser
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:                 user.ID,
		Email:              user.Email,
		Balance:            entity.AmountToMinorUnits(user.WalletBalance),
		DedicatedAccountID: user.DedicatedAccountID,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return nil
}

// BindDedicatedAccount sets the dedicated account of a user that has none or already has the same one
func (r *UserRepository) BindDedicatedAccount(ctx context.Context, userID, dedicatedAccountID string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND (dedicated_account_id IS NULL OR dedicated_account_id = ?)", userID, dedicatedAccountID).
		Updates(map[string]any{
			"dedicated_account_id": dedicatedAccountID,
			"updated_at":           r.timeProvider.Now(),
		})

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Dedicated account is bound to another user", map[string]any{
				"user_id":              userID,
				"dedicated_account_id": dedicatedAccountID,
				"constraint":           r.errorClassifier.ConstraintName(result.Error),
			})
			return errs.ErrAccountAlreadyBound
		}
		return r.handleDatabaseError("binding dedicated account", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, userID); err != nil {
			return err
		}
		return errs.ErrAccountAlreadyBound
	}

	r.logger.Info("Dedicated account bound", map[string]any{
		"user_id":              userID,
		"dedicated_account_id": dedicatedAccountID,
	})
	return nil
}

// IncrementBalance adds amount to the stored balance in a single UPDATE so concurrent
// credits never lose each other's writes
func (r *UserRepository) IncrementBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	delta := entity.AmountToMinorUnits(amount)

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("incrementing balance", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during balance increment", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Debug("Balance incremented", map[string]any{
		"user_id": userID,
		"amount":  entity.FormatAmount(amount),
	})
	return nil
}
