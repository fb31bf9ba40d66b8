package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// minorUnitExponent is the power of ten between major and minor currency units
const minorUnitExponent = 2

// MaxAmount is the largest major-unit amount whose minor-unit value fits in an int64
var MaxAmount = MinorUnitsToAmount(math.MaxInt64)

// MinorUnitsToAmount converts an integer amount in minor units (kobo) into a major-unit decimal.
// 850000 becomes 8500.00. The conversion is exact.
func MinorUnitsToAmount(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Shift(-minorUnitExponent)
}

// ParseMinorUnits parses a provider-reported minor-unit amount. Only whole, non-negative
// integers are accepted: fractional kobo would mean the payload is not what we expect.
func ParseMinorUnits(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if !d.Equal(d.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("%w: minor units must be whole", errs.ErrInvalidAmount)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return decimal.Zero, fmt.Errorf("%w: amount exceeds %d minor units", errs.ErrInvalidAmount, int64(math.MaxInt64))
	}

	return d.Shift(-minorUnitExponent), nil
}

// AmountToMinorUnits converts a major-unit amount to minor units, rounding half away from zero.
// Callers bound the amount with CheckAmountRange first; out-of-range values do not convert exactly.
func AmountToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(minorUnitExponent).Round(0).IntPart()
}

// CheckAmountRange rejects amounts whose rounded minor-unit value does not fit in an int64
func CheckAmountRange(amount decimal.Decimal) error {
	minor := amount.Shift(minorUnitExponent).Round(0)
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || minor.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return fmt.Errorf("%w: amount exceeds %s", errs.ErrInvalidAmount, FormatAmount(MaxAmount))
	}
	return nil
}

// ParseAmount validates a major-unit amount with at most two decimal places
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if d.Exponent() < -MaxDecimalPlaces && !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return d, nil
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
