package loan

import "github.com/shopspring/decimal"

// Decimal precisions used throughout the plan arithmetic.
// PrecisionInternal applies to every stored amount/percentage;
// PrecisionDisplay is only for values handed to presentation and is
// never consulted by consistency checks.
const (
	PrecisionInternal int32 = 10
	PrecisionDisplay  int32 = 1
)

var (
	hundred = decimal.NewFromInt(100)

	// SumTolerance is the margin used when comparing allocation sums
	// against their exact target (100% or the loan total).
	SumTolerance = decimal.RequireFromString("0.01")

	// residueThreshold is the smallest rounding residue the rebalancer
	// bothers to absorb into the last installment.
	residueThreshold = decimal.RequireFromString("0.001")
)

// Round rounds half away from zero at the given number of decimal places.
func Round(value decimal.Decimal, places int32) decimal.Decimal {
	return value.Round(places)
}

// RoundInternal rounds to the internal storage precision.
func RoundInternal(value decimal.Decimal) decimal.Decimal {
	return Round(value, PrecisionInternal)
}

// RoundDisplay rounds to the display precision used by presentation
// collaborators.
func RoundDisplay(value decimal.Decimal) decimal.Decimal {
	return Round(value, PrecisionDisplay)
}
