// Package loan implements the allocation integrity engine for a loan's
// installment plan: a fixed total split across an ordered sequence of
// installments, each carrying an amount and a percentage of the total.
//
// The package guarantees, after every completed mutation:
//   - percentages sum to exactly 100% and amounts to exactly the total
//   - amount and percentage of every installment stay mutually consistent
//   - due dates are non-decreasing in sequence order
//   - PENDING -> PAID transitions happen in order and are terminal
//
// Key parts:
//   - Allocation calculator: pure amount/percentage conversions and sums
//   - Rebalancer: two dual passes restoring both sum invariants, with
//     rounding residue concentrated on the last installment
//   - Validation gate: stateless predicates returning stable reason codes
//   - Loan aggregate: the only stateful coordinator, applying gate,
//     structural change and rebalance as one observable step
//
// All arithmetic uses fixed-point decimals, so the sum invariants hold
// exactly rather than within a floating-point tolerance.
package loan
