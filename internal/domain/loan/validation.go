package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stateless predicates gating every mutation. Each returns nil when the
// mutation is legal, or the single reason code for the rejection.

// CanPay reports whether the installment at index may transition to
// PAID. Payments proceed strictly in sequence order: index i is payable
// only once index i-1 is already paid.
func CanPay(index int, sequence []Installment) error {
	if index < 0 || index >= len(sequence) {
		return ErrIndexOutOfRange
	}
	if index == 0 {
		return nil
	}
	if !sequence[index-1].IsPaid() {
		return ErrPriorInstallmentUnpaid
	}
	return nil
}

// CanEdit reports whether the installment's fields may be overwritten.
func CanEdit(installment *Installment) error {
	if installment.IsPaid() {
		return ErrInstallmentAlreadyPaid
	}
	return nil
}

// CanDelete reports whether the installment may be removed from a
// sequence of the given length.
func CanDelete(installment *Installment, sequenceLength int) error {
	if sequenceLength == 1 {
		return ErrSoleInstallment
	}
	if installment.IsPaid() {
		return ErrPaidInstallmentDelete
	}
	return nil
}

// HasAvailablePercentage reports whether the sequence leaves any share
// of the plan unallocated.
func HasAvailablePercentage(sequence []Installment) bool {
	return TotalPercentage(sequence).LessThan(hundred.Sub(SumTolerance))
}

// ValidateDateSequential rejects a missing candidate date or one that
// precedes the minimum date. A zero minimum disables the lower bound.
func ValidateDateSequential(candidate, minDate time.Time) error {
	if candidate.IsZero() {
		return ErrDateRequired
	}
	if !minDate.IsZero() && NormalizeDate(candidate).Before(NormalizeDate(minDate)) {
		return ErrDateBeforeMinimum
	}
	return nil
}

// ValidateAmount rejects a non-positive amount or one exceeding the
// available pool.
func ValidateAmount(amount, availableAmount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}
	if amount.GreaterThan(availableAmount) {
		return ErrAmountExceedsAvailable
	}
	return nil
}

// ValidatePercentage rejects a percentage outside (0, 100] or one
// exceeding the available pool.
func ValidatePercentage(percentage, availablePercentage decimal.Decimal) error {
	if percentage.LessThanOrEqual(decimal.Zero) || percentage.GreaterThan(hundred) {
		return ErrPercentageOutOfRange
	}
	if percentage.GreaterThan(availablePercentage) {
		return ErrPercentageExceedsAvail
	}
	return nil
}

// ValidateFullPayment composes the gate checks for a complete
// installment payload, short-circuiting on the first failure so a
// single reason is surfaced: date required, date sequential, amount,
// then percentage.
func ValidateFullPayment(amount, percentage decimal.Decimal, date, minDate time.Time, availableAmount, availablePercentage decimal.Decimal) error {
	if err := ValidateDateSequential(date, minDate); err != nil {
		return err
	}
	if err := ValidateAmount(amount, availableAmount); err != nil {
		return err
	}
	return ValidatePercentage(percentage, availablePercentage)
}

// ValidatePercentageSumIsComplete verifies the explicit allocation
// invariant: percentages sum to 100 within the fixed tolerance.
func ValidatePercentageSumIsComplete(sequence []Installment) error {
	if TotalPercentage(sequence).Sub(hundred).Abs().GreaterThan(SumTolerance) {
		return ErrPercentageSumInvalid
	}
	return nil
}
