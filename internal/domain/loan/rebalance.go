package loan

import "github.com/shopspring/decimal"

// The rebalancer restores mutual amount/percentage consistency after a
// structural mutation. Converting N values through a lossy round-trip
// can never sum exactly without a designated absorber; the residue is
// concentrated on the last installment so earlier, already-reviewed
// entries stay stable.

// RebalanceFromAmounts recomputes every percentage from its amount and
// absorbs any residual deviation from 100% into the last installment.
// An empty sequence is a no-op.
func RebalanceFromAmounts(sequence []Installment, loanTotal decimal.Decimal) {
	if len(sequence) == 0 {
		return
	}
	for i := range sequence {
		sequence[i].Percentage = PercentageOf(sequence[i].Amount, loanTotal)
	}
	diff := hundred.Sub(TotalPercentage(sequence))
	if diff.Abs().GreaterThan(residueThreshold) {
		last := &sequence[len(sequence)-1]
		last.Percentage = RoundInternal(last.Percentage.Add(diff))
	}
}

// RebalanceFromPercentages recomputes every amount from its percentage
// and absorbs any residual deviation from the loan total into the last
// installment. An empty sequence is a no-op.
func RebalanceFromPercentages(sequence []Installment, loanTotal decimal.Decimal) {
	if len(sequence) == 0 {
		return
	}
	for i := range sequence {
		sequence[i].Amount = AmountOf(sequence[i].Percentage, loanTotal)
	}
	diff := loanTotal.Sub(TotalAmount(sequence))
	if diff.Abs().GreaterThan(residueThreshold) {
		last := &sequence[len(sequence)-1]
		last.Amount = RoundInternal(last.Amount.Add(diff))
	}
}
