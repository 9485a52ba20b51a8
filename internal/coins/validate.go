package coins

import (
	"errors"
	"fmt"

	"numlab/internal/domain"
)

var (
	// ErrNegativeAmount is returned when the amount to change is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrInvalidDenomination is returned when a denomination is zero or negative.
	ErrInvalidDenomination = errors.New("denominations must be positive")
	// ErrAmountTooLarge is returned when a table would exceed MaxTableAmount.
	ErrAmountTooLarge = errors.New("amount exceeds limit")
)

// MaxTableAmount is the largest amount MinCoins and Canonical build a table
// for.
const MaxTableAmount = 1 << 30

func validate(amount int, denoms domain.Denominations) error {
	if amount < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeAmount, amount)
	}
	return validateDenominations(denoms)
}

func validateTable(amount int) error {
	if amount > MaxTableAmount {
		return fmt.Errorf("%w: %d > %d", ErrAmountTooLarge, amount, MaxTableAmount)
	}
	return nil
}

func validateDenominations(denoms domain.Denominations) error {
	for i, d := range denoms {
		if d <= 0 {
			return fmt.Errorf("%w: denominations[%d] = %d", ErrInvalidDenomination, i, d)
		}
	}
	return nil
}
