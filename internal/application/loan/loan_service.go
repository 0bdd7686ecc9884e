package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/loanbook/backend/internal/domain/loan"
	"github.com/loanbook/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LoanService provides application-level operations over installment
// plans. It loads the aggregate, applies exactly one mutation through
// the orchestrator, and persists the whole record best-effort: a failed
// write is logged and the in-memory result is still returned, since the
// aggregate snapshot remains the source of truth for the session.
type LoanService struct {
	repo   loan.LoanRepository
	logger *zap.Logger
	now    func() time.Time
}

// LoanServiceOption is a functional option for configuring LoanService
type LoanServiceOption func(*LoanService)

// WithClock overrides the service clock, used for payment timestamps
// and default due dates.
func WithClock(now func() time.Time) LoanServiceOption {
	return func(s *LoanService) {
		s.now = now
	}
}

// NewLoanService creates a new LoanService
func NewLoanService(repo loan.LoanRepository, logger *zap.Logger, opts ...LoanServiceOption) *LoanService {
	s := &LoanService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ===================== Requests =====================

// CreateLoanRequest creates a new, empty loan
type CreateLoanRequest struct {
	Name        string
	TotalAmount decimal.Decimal
}

// CreateInitialRequest creates the advance installment of an empty plan
type CreateInitialRequest struct {
	LoanID uuid.UUID
	Title  string
}

// InsertInstallmentRequest inserts a new installment at an index
type InsertInstallmentRequest struct {
	LoanID     uuid.UUID
	Index      int
	Title      string
	Amount     decimal.Decimal
	Percentage decimal.Decimal
	DueDate    time.Time
}

// EditInstallmentRequest overwrites a pending installment's fields
type EditInstallmentRequest struct {
	LoanID        uuid.UUID
	InstallmentID uuid.UUID
	Title         string
	Amount        decimal.Decimal
	Percentage    decimal.Decimal
	DueDate       time.Time
}

// MarkPaidRequest transitions an installment to PAID
type MarkPaidRequest struct {
	LoanID        uuid.UUID
	InstallmentID uuid.UUID
}

// UpdateDueDateRequest corrects an installment's due date
type UpdateDueDateRequest struct {
	LoanID        uuid.UUID
	InstallmentID uuid.UUID
	DueDate       time.Time
}

// DeleteInstallmentRequest removes an installment and redistributes its
// allocation
type DeleteInstallmentRequest struct {
	LoanID        uuid.UUID
	InstallmentID uuid.UUID
}

// ===================== Responses =====================

// InstallmentResponse represents an installment in API responses.
// Display fields are rounded for presentation and must never feed back
// into consistency checks.
type InstallmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	Amount            decimal.Decimal `json:"amount"`
	Percentage        decimal.Decimal `json:"percentage"`
	DisplayAmount     string          `json:"display_amount"`
	DisplayPercentage string          `json:"display_percentage"`
	Status            string          `json:"status"`
	DueDate           string          `json:"due_date"`
	CreatedAt         time.Time       `json:"created_at"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
}

// LoanResponse represents a loan and its plan in API responses
type LoanResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	Installments []InstallmentResponse `json:"installments"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Version      int                   `json:"version"`
}

func toInstallmentResponse(inst *loan.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                inst.ID,
		Title:             inst.Title,
		Amount:            inst.Amount,
		Percentage:        inst.Percentage,
		DisplayAmount:     loan.RoundDisplay(inst.Amount).String(),
		DisplayPercentage: loan.RoundDisplay(inst.Percentage).String(),
		Status:            inst.Status.String(),
		DueDate:           inst.DueDate.Format("2006-01-02"),
		CreatedAt:         inst.CreatedAt,
		PaidAt:            inst.PaidAt,
	}
}

func toLoanResponse(l *loan.Loan) *LoanResponse {
	installments := make([]InstallmentResponse, 0, len(l.Installments))
	for i := range l.Installments {
		installments = append(installments, toInstallmentResponse(&l.Installments[i]))
	}
	return &LoanResponse{
		ID:           l.ID,
		Name:         l.Name,
		TotalAmount:  l.TotalAmount,
		Installments: installments,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		Version:      l.Version,
	}
}

// ===================== Loan operations =====================

// CreateLoan creates a new loan with an empty installment plan
func (s *LoanService) CreateLoan(ctx context.Context, req CreateLoanRequest) (*LoanResponse, error) {
	l, err := loan.NewLoan(req.Name, req.TotalAmount)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, l)

	return toLoanResponse(l), nil
}

// GetLoan returns a loan by ID
func (s *LoanService) GetLoan(ctx context.Context, id uuid.UUID) (*LoanResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLoanResponse(l), nil
}

// ListLoans returns all stored loans
func (s *LoanService) ListLoans(ctx context.Context) ([]*LoanResponse, error) {
	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, toLoanResponse(l))
	}
	return responses, nil
}

// DeleteLoan removes a loan record entirely. Clearing the selection
// pointer when it referenced the deleted loan keeps the session
// consistent.
func (s *LoanService) DeleteLoan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	selected, err := s.repo.SelectedLoanID(ctx)
	if err == nil && selected == id {
		if err := s.repo.SetSelectedLoanID(ctx, uuid.Nil); err != nil {
			s.logger.Warn("failed to clear loan selection",
				zap.String("loan_id", id.String()),
				zap.Error(err))
		}
	}
	return nil
}

// SelectLoan stores the loan ID as the current session selection
func (s *LoanService) SelectLoan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetSelectedLoanID(ctx, id)
}

// SelectedLoan returns the currently selected loan, or NOT_FOUND when
// no selection exists
func (s *LoanService) SelectedLoan(ctx context.Context) (*LoanResponse, error) {
	id, err := s.repo.SelectedLoanID(ctx)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, shared.ErrNotFound
	}
	return s.GetLoan(ctx, id)
}

// ===================== Installment mutations =====================

// CreateInitialInstallment creates the 100% advance installment due today
func (s *LoanService) CreateInitialInstallment(ctx context.Context, req CreateInitialRequest) (*LoanResponse, error) {
	return s.mutate(ctx, req.LoanID, func(l *loan.Loan) error {
		_, err := l.CreateInitialInstallment(req.Title, s.now())
		return err
	})
}

// InsertInstallment inserts a new installment at the requested index
func (s *LoanService) InsertInstallment(ctx context.Context, req InsertInstallmentRequest) (*LoanResponse, error) {
	return s.mutate(ctx, req.LoanID, func(l *loan.Loan) error {
		_, err := l.InsertInstallment(req.Index, loan.InstallmentPayload{
			Title:      req.Title,
			Amount:     req.Amount,
			Percentage: req.Percentage,
			DueDate:    req.DueDate,
		})
		return err
	})
}

// EditInstallment overwrites a pending installment's fields
func (s *LoanService) EditInstallment(ctx context.Context, req EditInstallmentRequest) (*LoanResponse, error) {
	return s.mutate(ctx, req.LoanID, func(l *loan.Loan) error {
		_, err := l.EditInstallment(req.InstallmentID, loan.InstallmentPayload{
			Title:      req.Title,
			Amount:     req.Amount,
			Percentage: req.Percentage,
			DueDate:    req.DueDate,
		})
		return err
	})
}

// MarkInstallmentPaid transitions an installment to PAID
func (s *LoanService) MarkInstallmentPaid(ctx context.Context, req MarkPaidRequest) (*LoanResponse, error) {
	return s.mutate(ctx, req.LoanID, func(l *loan.Loan) error {
		_, err := l.MarkInstallmentPaid(req.InstallmentID, s.now())
		return err
	})
}

// UpdateInstallmentDueDate corrects an installment's due date
func (s *LoanService) UpdateInstallmentDueDate(ctx context.Context, req UpdateDueDateRequest) (*LoanResponse, error) {
	return s.mutate(ctx, req.LoanID, func(l *loan.Loan) error {
		_, err := l.UpdateInstallmentDueDate(req.InstallmentID, req.DueDate)
		return err
	})
}

// DeleteInstallment removes an installment, redistributing its allocation
func (s *LoanService) DeleteInstallment(ctx context.Context, req DeleteInstallmentRequest) (*LoanResponse, error) {
	return s.mutate(ctx, req.LoanID, func(l *loan.Loan) error {
		return l.DeleteInstallment(req.InstallmentID)
	})
}

// mutate loads the aggregate, applies one mutation, and persists the
// result best-effort. A gate rejection is returned untouched and leaves
// no trace in the store.
func (s *LoanService) mutate(ctx context.Context, loanID uuid.UUID, fn func(l *loan.Loan) error) (*LoanResponse, error) {
	l, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := fn(l); err != nil {
		return nil, err
	}

	s.persist(ctx, l)

	return toLoanResponse(l), nil
}

// persist writes the whole record; a save failure is logged and the
// in-memory result still flows back to the caller.
func (s *LoanService) persist(ctx context.Context, l *loan.Loan) {
	if err := s.repo.Save(ctx, l); err != nil {
		s.logger.Warn("failed to persist loan, returning in-memory result",
			zap.String("loan_id", l.ID.String()),
			zap.Error(err))
	}
	l.ClearDomainEvents()
}
