package loan

import "github.com/loanbook/backend/internal/domain/shared"

// Validation gate reason codes. Every rejected mutation surfaces exactly
// one of these; callers derive display messages from the code, never
// from the message text.
var (
	ErrDateRequired           = shared.NewDomainError("DATE_REQUIRED", "Due date is required")
	ErrDateBeforeMinimum      = shared.NewDomainError("DATE_BEFORE_MINIMUM", "Due date precedes the previous installment's due date")
	ErrAmountNotPositive      = shared.NewDomainError("AMOUNT_NOT_POSITIVE", "Amount must be greater than zero")
	ErrAmountExceedsAvailable = shared.NewDomainError("AMOUNT_EXCEEDS_AVAILABLE", "Amount exceeds the available amount")
	ErrPercentageOutOfRange   = shared.NewDomainError("PERCENTAGE_OUT_OF_RANGE", "Percentage must be within (0, 100]")
	ErrPercentageExceedsAvail = shared.NewDomainError("PERCENTAGE_EXCEEDS_AVAILABLE", "Percentage exceeds the available percentage")
	ErrPriorInstallmentUnpaid = shared.NewDomainError("PRIOR_INSTALLMENT_UNPAID", "The preceding installment has not been paid")
	ErrInstallmentAlreadyPaid = shared.NewDomainError("INSTALLMENT_ALREADY_PAID_UNEDITABLE", "A paid installment cannot be edited")
	ErrSoleInstallment        = shared.NewDomainError("SOLE_INSTALLMENT_UNDELETABLE", "The only installment of a plan cannot be deleted")
	ErrPaidInstallmentDelete  = shared.NewDomainError("PAID_INSTALLMENT_UNDELETABLE", "A paid installment cannot be deleted")
	ErrNoRedistributionTarget = shared.NewDomainError("NO_REDISTRIBUTION_TARGET", "No pending installment can receive the allocation")
	ErrPercentageSumInvalid   = shared.NewDomainError("PERCENTAGE_SUM_INVALID", "Installment percentages do not sum to 100")
	ErrInstallmentNotFound    = shared.NewDomainError("INSTALLMENT_NOT_FOUND", "Installment not found in the plan")
	ErrSequenceNotEmpty       = shared.NewDomainError("SEQUENCE_NOT_EMPTY", "The plan already has installments")
	ErrIndexOutOfRange        = shared.NewDomainError("INDEX_OUT_OF_RANGE", "Installment index is out of range")
)
