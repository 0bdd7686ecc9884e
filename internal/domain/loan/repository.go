package loan

import (
	"context"

	"github.com/google/uuid"
)

// LoanRepository persists loans as whole serialized records. Writes
// replace the entire record; there are no partial updates. The selected
// loan ID is a session-continuity pointer stored alongside the records.
type LoanRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Loan, error)
	FindAll(ctx context.Context) ([]*Loan, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SelectedLoanID returns uuid.Nil when no loan is selected.
	SelectedLoanID(ctx context.Context) (uuid.UUID, error)
	SetSelectedLoanID(ctx context.Context, id uuid.UUID) error
}
