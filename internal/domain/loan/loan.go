package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/loanbook/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Loan is the aggregate root owning one installment plan. All sequence
// mutations go through its methods: the validation gate runs first, the
// structural change second, the rebalance last, so no partially-applied
// mutation is ever observable.
type Loan struct {
	shared.BaseAggregateRoot
	Name         string          `json:"name"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Installments []Installment   `json:"installments"`
}

// InstallmentPayload carries the caller-supplied fields for an insert
// or edit. Amount and Percentage are the two entry axes: when only one
// is set the other is derived from the loan total.
type InstallmentPayload struct {
	Title      string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	DueDate    time.Time
}

// NewLoan creates a new loan with an empty installment sequence
func NewLoan(name string, totalAmount decimal.Decimal) (*Loan, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Loan name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Loan name cannot exceed 100 characters")
	}
	if totalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}

	l := &Loan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		TotalAmount:       RoundInternal(totalAmount),
		Installments:      make([]Installment, 0),
	}

	l.AddDomainEvent(NewLoanCreatedEvent(l))

	return l, nil
}

// CreateInitialInstallment creates the advance installment covering the
// full loan total. Only valid while the sequence is empty; no gate
// applies because there is nothing to conflict with.
func (l *Loan) CreateInitialInstallment(title string, today time.Time) (*Installment, error) {
	if len(l.Installments) != 0 {
		return nil, ErrSequenceNotEmpty
	}

	inst := NewInstallment(title, l.TotalAmount, hundred, today)
	l.Installments = append(l.Installments, *inst)

	l.AddDomainEvent(NewInstallmentAddedEvent(l, inst))
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return inst, nil
}

// InsertInstallment inserts a new pending installment at the given
// index. A valid sequence is always fully allocated, so the new
// allocation is funded by deducting it from the nearest pending
// installment (searching backward from the insertion point first, then
// forward), after which the whole sequence is rebalanced on both axes.
func (l *Loan) InsertInstallment(index int, payload InstallmentPayload) (*Installment, error) {
	if index < 0 || index > len(l.Installments) {
		return nil, ErrIndexOutOfRange
	}

	amount, percentage := l.completeAllocation(payload.Amount, payload.Percentage)

	donor := l.nearestPendingBackward(index-1, -1)
	if donor < 0 {
		donor = l.nearestPendingForward(index, len(l.Installments))
	}
	if donor < 0 {
		return nil, ErrNoRedistributionTarget
	}

	minDate := l.predecessorDueDate(index)
	d := &l.Installments[donor]
	if err := ValidateFullPayment(amount, percentage, payload.DueDate, minDate, d.Amount, d.Percentage); err != nil {
		return nil, err
	}

	d.Amount = RoundInternal(d.Amount.Sub(amount))
	d.Percentage = RoundInternal(d.Percentage.Sub(percentage))

	inst := NewInstallment(payload.Title, amount, percentage, payload.DueDate)
	l.Installments = append(l.Installments, Installment{})
	copy(l.Installments[index+1:], l.Installments[index:])
	l.Installments[index] = *inst

	l.rebalance()

	l.AddDomainEvent(NewInstallmentAddedEvent(l, inst))
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return &l.Installments[index], nil
}

// EditInstallment overwrites a pending installment's title, allocation
// and due date, then rebalances both axes. Status is untouched.
func (l *Loan) EditInstallment(id uuid.UUID, payload InstallmentPayload) (*Installment, error) {
	index := l.indexOf(id)
	if index < 0 {
		return nil, ErrInstallmentNotFound
	}
	inst := &l.Installments[index]
	if err := CanEdit(inst); err != nil {
		return nil, err
	}

	amount, percentage := l.completeAllocation(payload.Amount, payload.Percentage)

	// The editable ceiling excludes every other installment's
	// allocation but includes this installment's own, so an entry can
	// always keep its current value.
	others := make([]Installment, 0, len(l.Installments)-1)
	others = append(others, l.Installments[:index]...)
	others = append(others, l.Installments[index+1:]...)
	availableAmount := RemainingAmount(others, l.TotalAmount)
	availablePercentage := RemainingPercentage(others)

	minDate := l.predecessorDueDate(index)
	if err := ValidateFullPayment(amount, percentage, payload.DueDate, minDate, availableAmount, availablePercentage); err != nil {
		return nil, err
	}

	inst.Title = payload.Title
	inst.Amount = amount
	inst.Percentage = percentage
	inst.DueDate = NormalizeDate(payload.DueDate)

	l.rebalance()

	l.AddDomainEvent(NewInstallmentEditedEvent(l, inst))
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return inst, nil
}

// MarkInstallmentPaid transitions an installment to PAID. Payments are
// accepted strictly in sequence order; amounts and percentages are
// untouched so no rebalance is needed.
func (l *Loan) MarkInstallmentPaid(id uuid.UUID, now time.Time) (*Installment, error) {
	index := l.indexOf(id)
	if index < 0 {
		return nil, ErrInstallmentNotFound
	}
	if err := CanPay(index, l.Installments); err != nil {
		return nil, err
	}
	inst := &l.Installments[index]
	if inst.IsPaid() {
		return nil, ErrInstallmentAlreadyPaid
	}

	inst.MarkPaid(now)

	l.AddDomainEvent(NewInstallmentPaidEvent(l, inst))
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return inst, nil
}

// UpdateInstallmentDueDate corrects an installment's due date
// regardless of status. Dates carry no allocation weight, so no
// rebalance runs; sequential-date ordering is not enforced here.
func (l *Loan) UpdateInstallmentDueDate(id uuid.UUID, date time.Time) (*Installment, error) {
	index := l.indexOf(id)
	if index < 0 {
		return nil, ErrInstallmentNotFound
	}
	if date.IsZero() {
		return nil, ErrDateRequired
	}

	inst := &l.Installments[index]
	inst.DueDate = NormalizeDate(date)

	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return inst, nil
}

// DeleteInstallment removes a pending installment and transfers its
// entire allocation onto the nearest pending installment, searching
// forward first, then backward. With no eligible transfer target the
// deletion fails hard rather than silently dropping allocation.
func (l *Loan) DeleteInstallment(id uuid.UUID) error {
	index := l.indexOf(id)
	if index < 0 {
		return ErrInstallmentNotFound
	}
	inst := &l.Installments[index]
	if err := CanDelete(inst, len(l.Installments)); err != nil {
		return err
	}

	target := l.nearestPendingForward(index+1, len(l.Installments))
	if target < 0 {
		target = l.nearestPendingBackward(index-1, -1)
	}
	if target < 0 {
		return ErrNoRedistributionTarget
	}

	deleted := *inst
	t := &l.Installments[target]
	t.Amount = RoundInternal(t.Amount.Add(deleted.Amount))
	t.Percentage = RoundInternal(t.Percentage.Add(deleted.Percentage))

	l.Installments = append(l.Installments[:index], l.Installments[index+1:]...)

	// Amounts already sum correctly by construction of the additive
	// transfer; one pass re-syncs the percentages.
	RebalanceFromAmounts(l.Installments, l.TotalAmount)

	l.AddDomainEvent(NewInstallmentDeletedEvent(l, &deleted, l.Installments[l.clampIndex(target, index)].ID))
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// CheckAllocation runs the explicit percentage-sum invariant check.
func (l *Loan) CheckAllocation() error {
	return ValidatePercentageSumIsComplete(l.Installments)
}

// rebalance runs the two-pass consistency restore: the first pass
// synchronizes percentages to the just-entered amounts, the second
// re-syncs amounts to the corrected percentages, so both sum invariants
// hold simultaneously afterwards.
func (l *Loan) rebalance() {
	RebalanceFromAmounts(l.Installments, l.TotalAmount)
	RebalanceFromPercentages(l.Installments, l.TotalAmount)
}

// completeAllocation derives the missing allocation axis from the one
// the caller supplied.
func (l *Loan) completeAllocation(amount, percentage decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch {
	case amount.IsZero() && !percentage.IsZero():
		return AmountOf(percentage, l.TotalAmount), RoundInternal(percentage)
	case percentage.IsZero() && !amount.IsZero():
		return RoundInternal(amount), PercentageOf(amount, l.TotalAmount)
	default:
		return RoundInternal(amount), RoundInternal(percentage)
	}
}

func (l *Loan) indexOf(id uuid.UUID) int {
	for i := range l.Installments {
		if l.Installments[i].ID == id {
			return i
		}
	}
	return -1
}

// nearestPendingForward scans [from, to) ascending for a pending installment.
func (l *Loan) nearestPendingForward(from, to int) int {
	for i := from; i < to; i++ {
		if l.Installments[i].IsPending() {
			return i
		}
	}
	return -1
}

// nearestPendingBackward scans (to, from] descending for a pending installment.
func (l *Loan) nearestPendingBackward(from, to int) int {
	for i := from; i > to; i-- {
		if l.Installments[i].IsPending() {
			return i
		}
	}
	return -1
}

func (l *Loan) predecessorDueDate(index int) time.Time {
	if index == 0 {
		return time.Time{}
	}
	return l.Installments[index-1].DueDate
}

// clampIndex maps a pre-removal index to its post-removal position.
func (l *Loan) clampIndex(target, removed int) int {
	if target > removed {
		return target - 1
	}
	return target
}
