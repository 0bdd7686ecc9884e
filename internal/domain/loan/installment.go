package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InstallmentStatus represents the status of an installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "PENDING" // Awaiting payment, still editable
	InstallmentStatusPaid    InstallmentStatus = "PAID"    // Paid, terminal, immutable
)

// IsValid checks if the status is a valid InstallmentStatus
func (s InstallmentStatus) IsValid() bool {
	switch s {
	case InstallmentStatusPending, InstallmentStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// IsTerminal returns true if the status admits no further transition
func (s InstallmentStatus) IsTerminal() bool {
	return s == InstallmentStatusPaid
}

// Installment is one scheduled payment entry within a loan's plan.
// Amount and Percentage together form the installment's allocation of
// the loan total and are kept mutually consistent by the rebalancer.
type Installment struct {
	ID         uuid.UUID         `json:"id"`
	Title      string            `json:"title"`
	Amount     decimal.Decimal   `json:"amount"`
	Percentage decimal.Decimal   `json:"percentage"`
	Status     InstallmentStatus `json:"status"`
	DueDate    time.Time         `json:"due_date"`
	CreatedAt  time.Time         `json:"created_at"`
	PaidAt     *time.Time        `json:"paid_at,omitempty"`
}

// NewInstallment creates a new pending installment
func NewInstallment(title string, amount, percentage decimal.Decimal, dueDate time.Time) *Installment {
	return &Installment{
		ID:         uuid.New(),
		Title:      title,
		Amount:     RoundInternal(amount),
		Percentage: RoundInternal(percentage),
		Status:     InstallmentStatusPending,
		DueDate:    NormalizeDate(dueDate),
		CreatedAt:  time.Now(),
	}
}

// IsPending returns true if the installment is still awaiting payment
func (i *Installment) IsPending() bool {
	return i.Status == InstallmentStatusPending
}

// IsPaid returns true if the installment has been paid
func (i *Installment) IsPaid() bool {
	return i.Status == InstallmentStatusPaid
}

// MarkPaid transitions the installment to PAID and stamps the payment time.
// The transition is terminal; PaidAt is set exactly once.
func (i *Installment) MarkPaid(now time.Time) {
	i.Status = InstallmentStatusPaid
	i.PaidAt = &now
}

// NormalizeDate strips the time-of-day component; due dates are calendar
// dates and compare as such.
func NormalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
