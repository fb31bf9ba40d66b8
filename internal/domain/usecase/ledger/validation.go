package ledger

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// maxReferenceLength matches the width of the reference column
const maxReferenceLength = 100

// CreditValidator validates credit requests before any storage access
type CreditValidator struct{}

// NewCreditValidator creates a new CreditValidator
func NewCreditValidator() *CreditValidator {
	return &CreditValidator{}
}

// ValidateCredit validates all credit fields
func (v *CreditValidator) ValidateCredit(req usecase.CreditRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return errs.ErrInvalidUserID
	}

	if err := v.validateReference(req.Reference); err != nil {
		return err
	}

	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if req.Amount.Exponent() < -entity.MaxDecimalPlaces && !req.Amount.Equal(req.Amount.Truncate(entity.MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, entity.MaxDecimalPlaces)
	}
	if err := entity.CheckAmountRange(req.Amount); err != nil {
		return err
	}

	return nil
}

func (v *CreditValidator) validateReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.ErrInvalidReference
	}
	if len(reference) > maxReferenceLength {
		return fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidReference, maxReferenceLength)
	}
	return nil
}
