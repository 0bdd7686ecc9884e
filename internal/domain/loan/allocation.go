package loan

import "github.com/shopspring/decimal"

// Pure conversion and aggregation functions over an installment
// sequence. All results are rounded to the internal precision.

// PercentageOf converts an amount into its percentage of the loan total.
// Returns zero when the total is zero.
func PercentageOf(amount, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return RoundInternal(amount.Div(total).Mul(hundred))
}

// AmountOf converts a percentage of the loan total into an amount.
func AmountOf(percentage, total decimal.Decimal) decimal.Decimal {
	return RoundInternal(percentage.Div(hundred).Mul(total))
}

// TotalAmount sums the amounts of the sequence.
func TotalAmount(sequence []Installment) decimal.Decimal {
	sum := decimal.Zero
	for i := range sequence {
		sum = sum.Add(sequence[i].Amount)
	}
	return RoundInternal(sum)
}

// TotalPercentage sums the percentages of the sequence.
func TotalPercentage(sequence []Installment) decimal.Decimal {
	sum := decimal.Zero
	for i := range sequence {
		sum = sum.Add(sequence[i].Percentage)
	}
	return RoundInternal(sum)
}

// RemainingAmount returns the part of the loan total not yet covered by
// the sequence's amounts.
func RemainingAmount(sequence []Installment, loanTotal decimal.Decimal) decimal.Decimal {
	return RoundInternal(loanTotal.Sub(TotalAmount(sequence)))
}

// RemainingPercentage returns the part of 100% not yet covered by the
// sequence's percentages.
func RemainingPercentage(sequence []Installment) decimal.Decimal {
	return RoundInternal(hundred.Sub(TotalPercentage(sequence)))
}
