package loan

import (
	"time"

	"github.com/google/uuid"
	"github.com/loanbook/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LoanCreatedEvent is raised when a new loan is created
type LoanCreatedEvent struct {
	shared.BaseDomainEvent
	LoanID      uuid.UUID       `json:"loan_id"`
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// EventType returns the event type name
func (e *LoanCreatedEvent) EventType() string {
	return "LoanCreated"
}

// NewLoanCreatedEvent creates a new LoanCreatedEvent
func NewLoanCreatedEvent(l *Loan) *LoanCreatedEvent {
	return &LoanCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("LoanCreated", "Loan", l.ID),
		LoanID:          l.ID,
		Name:            l.Name,
		TotalAmount:     l.TotalAmount,
	}
}

// InstallmentAddedEvent is raised when an installment enters the plan,
// either as the initial advance or via insertion
type InstallmentAddedEvent struct {
	shared.BaseDomainEvent
	LoanID        uuid.UUID       `json:"loan_id"`
	InstallmentID uuid.UUID       `json:"installment_id"`
	Title         string          `json:"title"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    decimal.Decimal `json:"percentage"`
	DueDate       time.Time       `json:"due_date"`
}

// EventType returns the event type name
func (e *InstallmentAddedEvent) EventType() string {
	return "InstallmentAdded"
}

// NewInstallmentAddedEvent creates a new InstallmentAddedEvent
func NewInstallmentAddedEvent(l *Loan, inst *Installment) *InstallmentAddedEvent {
	return &InstallmentAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentAdded", "Loan", l.ID),
		LoanID:          l.ID,
		InstallmentID:   inst.ID,
		Title:           inst.Title,
		Amount:          inst.Amount,
		Percentage:      inst.Percentage,
		DueDate:         inst.DueDate,
	}
}

// InstallmentEditedEvent is raised when a pending installment's fields
// are overwritten
type InstallmentEditedEvent struct {
	shared.BaseDomainEvent
	LoanID        uuid.UUID       `json:"loan_id"`
	InstallmentID uuid.UUID       `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    decimal.Decimal `json:"percentage"`
}

// EventType returns the event type name
func (e *InstallmentEditedEvent) EventType() string {
	return "InstallmentEdited"
}

// NewInstallmentEditedEvent creates a new InstallmentEditedEvent
func NewInstallmentEditedEvent(l *Loan, inst *Installment) *InstallmentEditedEvent {
	return &InstallmentEditedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentEdited", "Loan", l.ID),
		LoanID:          l.ID,
		InstallmentID:   inst.ID,
		Amount:          inst.Amount,
		Percentage:      inst.Percentage,
	}
}

// InstallmentPaidEvent is raised when an installment is marked paid
type InstallmentPaidEvent struct {
	shared.BaseDomainEvent
	LoanID        uuid.UUID       `json:"loan_id"`
	InstallmentID uuid.UUID       `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
}

// EventType returns the event type name
func (e *InstallmentPaidEvent) EventType() string {
	return "InstallmentPaid"
}

// NewInstallmentPaidEvent creates a new InstallmentPaidEvent
func NewInstallmentPaidEvent(l *Loan, inst *Installment) *InstallmentPaidEvent {
	paidAt := time.Now()
	if inst.PaidAt != nil {
		paidAt = *inst.PaidAt
	}
	return &InstallmentPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentPaid", "Loan", l.ID),
		LoanID:          l.ID,
		InstallmentID:   inst.ID,
		Amount:          inst.Amount,
		PaidAt:          paidAt,
	}
}

// InstallmentDeletedEvent is raised when an installment is removed and
// its allocation redistributed onto another pending installment
type InstallmentDeletedEvent struct {
	shared.BaseDomainEvent
	LoanID        uuid.UUID       `json:"loan_id"`
	InstallmentID uuid.UUID       `json:"installment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Percentage    decimal.Decimal `json:"percentage"`
	TransferredTo uuid.UUID       `json:"transferred_to"`
}

// EventType returns the event type name
func (e *InstallmentDeletedEvent) EventType() string {
	return "InstallmentDeleted"
}

// NewInstallmentDeletedEvent creates a new InstallmentDeletedEvent
func NewInstallmentDeletedEvent(l *Loan, deleted *Installment, transferredTo uuid.UUID) *InstallmentDeletedEvent {
	return &InstallmentDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("InstallmentDeleted", "Loan", l.ID),
		LoanID:          l.ID,
		InstallmentID:   deleted.ID,
		Amount:          deleted.Amount,
		Percentage:      deleted.Percentage,
		TransferredTo:   transferredTo,
	}
}
